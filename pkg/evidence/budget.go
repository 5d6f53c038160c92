package evidence

import (
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// Global budget: a fixed token allowance times an assumed characters-per-token
// ratio. Exact tokenization is deliberately out of scope.
const (
	contextTokenBudget = 8000
	charsPerToken      = 4
	maxContextChars    = contextTokenBudget * charsPerToken
)

// Trim caps applied, in order, when the assembled contexts exceed the budget.
// Temporal corroboration is the cheapest to lose; the reconstructed blocking
// chain is dropped last. Full stack traces are never shortened.
const (
	trimTemporalCap = 10
	trimRelevantCap = 5
	trimAnomalyCap  = 10
	trimChainCap    = 3
)

// EnforceBudget returns a new context list trimmed until the estimated total
// size fits maxContextChars. Each pass walks every context, re-checking the
// total after each one and returning as soon as the budget is met. Passes
// only drop trailing excess; a list already within a pass's cap is untouched.
func EnforceBudget(contexts []model.InsightContext) []model.InsightContext {
	trimmed := make([]model.InsightContext, len(contexts))
	copy(trimmed, contexts)

	if totalSize(trimmed) <= maxContextChars {
		return trimmed
	}

	passes := []func(*model.InsightContext){
		func(c *model.InsightContext) { c.TemporalContext = capLines(c.TemporalContext, trimTemporalCap) },
		func(c *model.InsightContext) { c.RelevantThreads = capLines(c.RelevantThreads, trimRelevantCap) },
		func(c *model.InsightContext) { c.AnomalyLogs = capLines(c.AnomalyLogs, trimAnomalyCap) },
		func(c *model.InsightContext) { c.BlockingChainStacks = capLines(c.BlockingChainStacks, trimChainCap) },
	}

	for _, pass := range passes {
		for i := range trimmed {
			pass(&trimmed[i])
			if totalSize(trimmed) <= maxContextChars {
				return trimmed
			}
		}
	}
	return trimmed
}

// capLines reslices without mutating the input, so the untrimmed phase-one
// bundles stay intact.
func capLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

// estimateSize is the character-count proxy for one bundle's token cost.
func estimateSize(c *model.InsightContext) int {
	size := len(strings.Join(c.AnomalyLogs, "\n"))
	size += len(c.FullStackTrace)
	size += len(strings.Join(c.BlockingChainStacks, "\n"))
	size += len(strings.Join(c.RelevantThreads, "\n"))
	size += len(strings.Join(c.TemporalContext, "\n"))
	return size
}

func totalSize(contexts []model.InsightContext) int {
	total := 0
	for i := range contexts {
		total += estimateSize(&contexts[i])
	}
	return total
}
