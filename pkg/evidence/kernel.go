package evidence

import (
	"math"
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// collectKernelEvidence gathers the raw lines of up to maxKernelEvents
// matching kernel events plus surrounding dmesg context, with exact
// duplicate lines removed (first occurrence wins).
func collectKernelEvidence(insight model.InsightCard, events []model.KernelEvent, entries []model.KernelEntry) []string {
	matched := matchKernelEvents(insight, events)
	if len(matched) == 0 {
		matched = kernelSeverityFallback(insight.Severity, events)
	}
	if len(matched) > maxKernelEvents {
		matched = matched[:maxKernelEvents]
	}

	var logs []string
	for _, ev := range matched {
		logs = append(logs, ev.Entries...)
		logs = append(logs, surroundingEntries(ev.Timestamp, entries)...)
	}
	return dedupe(logs)
}

// matchKernelEvents matches by type tag (underscores as spaces, substring of
// the title) or by summary overlap with the leading characters of the title.
func matchKernelEvents(insight model.InsightCard, events []model.KernelEvent) []model.KernelEvent {
	title := strings.ToLower(insight.Title)
	prefix := strings.ToLower(titlePrefix(insight.Title))

	var matched []model.KernelEvent
	for _, ev := range events {
		typeWords := strings.ToLower(strings.ReplaceAll(ev.Type, "_", " "))
		if (typeWords != "" && strings.Contains(title, typeWords)) ||
			(prefix != "" && strings.Contains(strings.ToLower(ev.Summary), prefix)) {
			matched = append(matched, ev)
		}
	}
	return matched
}

func kernelSeverityFallback(severity string, events []model.KernelEvent) []model.KernelEvent {
	var matched []model.KernelEvent
	for _, ev := range events {
		if ev.Severity == severity {
			matched = append(matched, ev)
			if len(matched) == maxKernelEvents {
				break
			}
		}
	}
	return matched
}

// surroundingEntries returns up to maxSurroundingEntries kernel log lines
// within kernelWindowSeconds of the event timestamp, in log order.
func surroundingEntries(ts float64, entries []model.KernelEntry) []string {
	var out []string
	for _, e := range entries {
		if math.Abs(e.Timestamp-ts) > kernelWindowSeconds {
			continue
		}
		out = append(out, e.Raw)
		if len(out) == maxSurroundingEntries {
			break
		}
	}
	return out
}

func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
