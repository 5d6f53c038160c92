package evidence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

func lines(prefix string, n, width int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d %s", prefix, i, strings.Repeat("x", width))
	}
	return out
}

func TestEnforceBudgetUnderBudgetPassThrough(t *testing.T) {
	contexts := []model.InsightContext{
		{
			InsightID:       "i1",
			AnomalyLogs:     lines("log", 15, 10),
			TemporalContext: lines("temporal", 15, 10),
		},
	}

	got := EnforceBudget(contexts)

	require.Len(t, got, 1)
	assert.Len(t, got[0].AnomalyLogs, 15, "no trimming under budget")
	assert.Len(t, got[0].TemporalContext, 15, "no trimming under budget")
}

func TestEnforceBudgetAllCapsWhenFarOverBudget(t *testing.T) {
	stack := strings.Repeat("at frame\n", 400)
	var contexts []model.InsightContext
	for i := 0; i < 25; i++ {
		contexts = append(contexts, model.InsightContext{
			InsightID:           fmt.Sprintf("i%d", i),
			AnomalyLogs:         lines("log", 20, 100),
			FullStackTrace:      stack,
			BlockingChainStacks: lines("chain", 8, 100),
			RelevantThreads:     lines("thread", 10, 100),
			TemporalContext:     lines("temporal", 20, 100),
		})
	}

	got := EnforceBudget(contexts)

	require.Len(t, got, 25)
	for _, ctx := range got {
		assert.LessOrEqual(t, len(ctx.TemporalContext), trimTemporalCap)
		assert.LessOrEqual(t, len(ctx.RelevantThreads), trimRelevantCap)
		assert.LessOrEqual(t, len(ctx.AnomalyLogs), trimAnomalyCap)
		assert.LessOrEqual(t, len(ctx.BlockingChainStacks), trimChainCap)
		assert.Equal(t, stack, ctx.FullStackTrace, "full stack is never trimmed")
	}
	// Every pass exhausted, so staying over budget is allowed here.
}

func TestEnforceBudgetTrimOrder(t *testing.T) {
	// One context whose temporal list alone pushes it over budget: trimming
	// temporal lines must suffice and the later passes must not run.
	big := maxContextChars / 12
	contexts := []model.InsightContext{
		{
			InsightID:           "i1",
			AnomalyLogs:         lines("log", 12, 4),
			BlockingChainStacks: lines("chain", 6, 4),
			RelevantThreads:     lines("thread", 8, 4),
			TemporalContext:     lines("temporal", 14, big),
		},
	}

	got := EnforceBudget(contexts)

	require.Len(t, got, 1)
	assert.Len(t, got[0].TemporalContext, trimTemporalCap, "temporal trimmed first")
	assert.Len(t, got[0].RelevantThreads, 8, "later passes untouched")
	assert.Len(t, got[0].AnomalyLogs, 12, "later passes untouched")
	assert.Len(t, got[0].BlockingChainStacks, 6, "later passes untouched")
}

func TestEnforceBudgetStopsMidPass(t *testing.T) {
	// Two over-budget contexts where trimming the first context's temporal
	// list already lands under budget: the second must stay untouched.
	big := 3000 // 11 lines overshoot the 32000-char ceiling, 10 lines fit
	overfull := func(id string) model.InsightContext {
		return model.InsightContext{
			InsightID:       id,
			TemporalContext: lines("temporal", 11, big),
		}
	}
	contexts := []model.InsightContext{overfull("first"), overfull("second")}
	// Shrink the second so the total is driven by the first.
	contexts[1].TemporalContext = lines("temporal", 11, 4)

	got := EnforceBudget(contexts)

	assert.Len(t, got[0].TemporalContext, trimTemporalCap)
	assert.Len(t, got[1].TemporalContext, 11, "enforcement stopped once under budget")
}

func TestEnforceBudgetDoesNotMutateInput(t *testing.T) {
	contexts := []model.InsightContext{
		{
			InsightID:       "i1",
			TemporalContext: lines("temporal", 15, maxContextChars/10),
		},
	}

	EnforceBudget(contexts)

	assert.Len(t, contexts[0].TemporalContext, 15, "phase-one bundles stay intact")
}

func TestEstimateSize(t *testing.T) {
	ctx := model.InsightContext{
		AnomalyLogs:     []string{"ab", "cd"}, // joined: 5
		FullStackTrace:  "stack",              // 5
		TemporalContext: []string{"xyz"},      // 3
	}
	assert.Equal(t, 13, estimateSize(&ctx))
}
