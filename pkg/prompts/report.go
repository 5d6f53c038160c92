package prompts

import (
	"fmt"
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// BuildReportPrompt interpolates the analyzer's insights, the assembled
// evidence bundles and the HAL cross-reference into one instruction prompt.
// Contexts are assumed to be budget-trimmed already.
func BuildReportPrompt(res *model.AnalysisResult, contexts []model.InsightContext, halLines []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Device health score: %d/100\n\n", res.HealthScore)

	b.WriteString("Detected issues:\n")
	for _, insight := range res.Insights {
		fmt.Fprintf(&b, "- [%s/%s] %s: %s\n", insight.Severity, insight.Category, insight.ID, insight.Title)
	}

	for _, ctx := range contexts {
		fmt.Fprintf(&b, "\n=== Evidence for %s ===\n", ctx.InsightID)
		if len(ctx.AnomalyLogs) > 0 {
			b.WriteString("Matching log lines:\n")
			b.WriteString(strings.Join(ctx.AnomalyLogs, "\n"))
			b.WriteByte('\n')
		}
		if ctx.FullStackTrace != "" {
			b.WriteString("Blocked thread stack:\n")
			b.WriteString(ctx.FullStackTrace)
			b.WriteByte('\n')
		}
		if len(ctx.BlockingChainStacks) > 0 {
			b.WriteString("Blocking chain:\n")
			b.WriteString(strings.Join(ctx.BlockingChainStacks, "\n"))
			b.WriteByte('\n')
		}
		if len(ctx.RelevantThreads) > 0 {
			b.WriteString("Other blocked/native threads:\n")
			b.WriteString(strings.Join(ctx.RelevantThreads, "\n"))
			b.WriteByte('\n')
		}
		if len(ctx.TemporalContext) > 0 {
			b.WriteString("Log activity around the event:\n")
			b.WriteString(strings.Join(ctx.TemporalContext, "\n"))
			b.WriteByte('\n')
		}
	}

	if len(halLines) > 0 {
		b.WriteString("\nHAL status for blocked binder calls:\n")
		b.WriteString(strings.Join(halLines, "\n"))
		b.WriteByte('\n')
	}

	return fmt.Sprintf(`You are an Android platform engineer analyzing a device bugreport.

Bugreport analysis:
%s

Please analyze this evidence and provide:
1. A short summary of the device's state
2. The most likely root cause of the highest-severity issues
3. Specific findings tied to the issue ids above
4. Actionable suggestions, highest priority first

Respond in JSON format with this structure:
{
  "summary": "one paragraph device state summary",
  "root_cause": "brief explanation of the root cause",
  "severity": "info|warning|critical",
  "findings": [
    {
      "insight_id": "issue id if applicable",
      "component": "process or subsystem",
      "severity": "info|warning|critical",
      "description": "what's wrong",
      "evidence": "specific log line or stack frame"
    }
  ],
  "suggestions": [
    {
      "priority": "high|medium|low",
      "action": "what to do",
      "explanation": "why this helps"
    }
  ],
  "full_analysis": "detailed explanation of the problem and solution"
}

Ground every finding in the evidence shown. Be concise but thorough.`, b.String())
}
