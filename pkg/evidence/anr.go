package evidence

import (
	"fmt"
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// collectANREvidence fills ctx with the primary blocked thread's full stack,
// one rendered block per link of its blocking chain, a capped list of other
// blocked/native threads, and corroborating logcat evidence.
func collectANREvidence(insight model.InsightCard, res *model.AnalysisResult, ctx *model.InsightContext) {
	if anr := findANR(insight, res.ANRs); anr != nil {
		if primary := primaryThread(anr); primary != nil {
			ctx.FullStackTrace = strings.Join(primary.Thread.Frames, "\n")
			ctx.BlockingChainStacks = chainStacks(primary, anr.Threads)
			ctx.RelevantThreads = relevantThreads(primary, anr.Threads)
		}
	}
	// ANRs are almost always corroborated by logcat, so merge that in too.
	ctx.AnomalyLogs = append(ctx.AnomalyLogs, collectLogEvidence(insight, res.Anomalies)...)
}

// findANR locates the trace whose process name or "pid N" appears in the
// insight title. With no match it falls back to the first trace, which may
// attach the wrong process when several ANRs are present and the title names
// none of them.
func findANR(insight model.InsightCard, anrs []model.ANRTraceAnalysis) *model.ANRTraceAnalysis {
	if len(anrs) == 0 {
		return nil
	}
	title := strings.ToLower(insight.Title)
	for i := range anrs {
		if anrs[i].ProcessName != "" && strings.Contains(title, strings.ToLower(anrs[i].ProcessName)) {
			return &anrs[i]
		}
		if strings.Contains(title, fmt.Sprintf("pid %d", anrs[i].PID)) {
			return &anrs[i]
		}
	}
	return &anrs[0]
}

// primaryThread is the designated blocked thread when the analyzer found
// one, otherwise the main thread. May be nil.
func primaryThread(anr *model.ANRTraceAnalysis) *model.BlockedThread {
	if anr.BlockedThread != nil {
		return anr.BlockedThread
	}
	return anr.MainThread
}

// chainStacks renders one block per blocking-chain link, in chain order,
// resolving each link to its full thread record by tid. Links whose tid is
// missing from the thread list are skipped.
func chainStacks(primary *model.BlockedThread, threads []model.ThreadInfo) []string {
	var blocks []string
	for _, link := range primary.Chain {
		thread := findThread(threads, link.TID)
		if thread == nil {
			continue
		}
		blocks = append(blocks, formatThreadBlock(thread))
	}
	return blocks
}

func findThread(threads []model.ThreadInfo, tid int) *model.ThreadInfo {
	for i := range threads {
		if threads[i].TID == tid {
			return &threads[i]
		}
	}
	return nil
}

func formatThreadBlock(t *model.ThreadInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thread %q (tid=%d, state=%s)\n", t.Name, t.TID, t.State)
	if t.WaitingOn != nil {
		fmt.Fprintf(&b, "  waiting on lock %s (%s)", t.WaitingOn.Address, t.WaitingOn.ClassName)
		if t.WaitingOn.HolderKnown {
			fmt.Fprintf(&b, " held by tid=%d", t.WaitingOn.HolderTID)
		}
		b.WriteByte('\n')
	}
	if len(t.HeldLocks) > 0 {
		locks := make([]string, len(t.HeldLocks))
		for i, l := range t.HeldLocks {
			locks[i] = fmt.Sprintf("%s (%s)", l.Address, l.ClassName)
		}
		fmt.Fprintf(&b, "  holds locks: %s\n", strings.Join(locks, ", "))
	}
	for _, frame := range t.Frames {
		b.WriteString("  ")
		b.WriteString(frame)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// relevantThreads lists other blocked or native threads in thread-list
// order, excluding the primary thread, each shortened to its top frames.
func relevantThreads(primary *model.BlockedThread, threads []model.ThreadInfo) []string {
	var out []string
	for i := range threads {
		t := &threads[i]
		if t.TID == primary.Thread.TID {
			continue
		}
		if t.State != "Blocked" && t.State != "Native" {
			continue
		}
		frames := t.Frames
		if len(frames) > relevantThreadFrames {
			frames = frames[:relevantThreadFrames]
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Thread %q (tid=%d, state=%s)", t.Name, t.TID, t.State)
		for _, frame := range frames {
			b.WriteString("\n  ")
			b.WriteString(frame)
		}
		out = append(out, b.String())
		if len(out) == maxRelevantThreads {
			break
		}
	}
	return out
}
