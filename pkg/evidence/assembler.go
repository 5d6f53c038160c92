// Package evidence assembles the raw supporting text for bugreport insights:
// matching logcat anomalies, reconstructed ANR blocking chains, surrounding
// kernel log lines and temporally correlated entries, trimmed to a global
// size budget before prompt construction.
package evidence

import (
	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// Per-insight collection caps.
const (
	maxAnomaliesPerInsight = 3
	maxEntriesPerAnomaly   = 15
	maxKernelEvents        = 3
	kernelWindowSeconds    = 5.0
	maxSurroundingEntries  = 20
	maxRelevantThreads     = 10
	relevantThreadFrames   = 5
	temporalWindowSeconds  = 2.0
	maxTemporalEntries     = 20
)

// TargetInsights returns the insights that qualify for deep evidence
// collection: critical and warning severities, original order preserved.
// Info-level insights never get a context bundle.
func TargetInsights(insights []model.InsightCard) []model.InsightCard {
	targets := make([]model.InsightCard, 0, len(insights))
	for _, insight := range insights {
		if insight.Severity == model.SeverityCritical || insight.Severity == model.SeverityWarning {
			targets = append(targets, insight)
		}
	}
	return targets
}

// AssembleContexts builds one evidence bundle per targeted insight,
// dispatching on the insight's source. An unknown source yields an empty
// bundle rather than an error. Critical insights with a timestamp
// additionally get temporally correlated logcat lines.
func AssembleContexts(res *model.AnalysisResult) []model.InsightContext {
	targets := TargetInsights(res.Insights)
	contexts := make([]model.InsightContext, 0, len(targets))

	for _, insight := range targets {
		ctx := model.InsightContext{InsightID: insight.ID}

		switch insight.Source {
		case model.SourceLogcat:
			ctx.AnomalyLogs = collectLogEvidence(insight, res.Anomalies)
		case model.SourceKernel:
			ctx.AnomalyLogs = collectKernelEvidence(insight, res.KernelEvents, res.KernelEntries)
		case model.SourceANR:
			collectANREvidence(insight, res, &ctx)
		case model.SourceCross:
			ctx.AnomalyLogs = append(
				collectLogEvidence(insight, res.Anomalies),
				collectKernelEvidence(insight, res.KernelEvents, res.KernelEntries)...)
		default:
			// Unrecognized source: the bundle stays empty.
		}

		if insight.Severity == model.SeverityCritical && insight.Timestamp != "" {
			ctx.TemporalContext = correlateEntries(insight.Timestamp, res.LogcatEntries)
		}

		contexts = append(contexts, ctx)
	}
	return contexts
}

// BuildContexts runs the full two-phase pipeline: assemble evidence for every
// targeted insight, then trim the whole set down to the global budget.
func BuildContexts(res *model.AnalysisResult) []model.InsightContext {
	return EnforceBudget(AssembleContexts(res))
}
