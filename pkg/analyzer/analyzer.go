package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/droidcheck/bugreport-ai/pkg/cache"
	"github.com/droidcheck/bugreport-ai/pkg/evidence"
	"github.com/droidcheck/bugreport-ai/pkg/llm"
	"github.com/droidcheck/bugreport-ai/pkg/model"
	"github.com/droidcheck/bugreport-ai/pkg/parser"
	"github.com/droidcheck/bugreport-ai/pkg/prompts"
)

const defaultCacheTTL = 15 * time.Minute

type Analyzer struct {
	llm   llm.LLM
	cache *cache.Cache
}

func NewFromEnv(provider, modelName string) (*Analyzer, error) {
	llmInstance, err := llm.CreateFromEnv(provider, modelName)
	if err != nil {
		return nil, err
	}
	return NewWithLLM(llmInstance), nil
}

func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l, cache: cache.New(defaultCacheTTL)}
}

// DisableCache turns off report caching; every Analyze call hits the LLM.
func (a *Analyzer) DisableCache() {
	a.cache = nil
}

// Analyze assembles the budgeted evidence bundles for the snapshot, builds
// the prompt, sends it to the configured LLM, and parses the response into
// a report. Identical snapshots within the cache TTL reuse the prior report.
func (a *Analyzer) Analyze(res *model.AnalysisResult) (*model.Report, error) {
	contexts := evidence.BuildContexts(res)
	halLines := evidence.CrossReferenceHAL(res)
	prompt := prompts.BuildReportPrompt(res, contexts, halLines)

	key := cacheKey(a.llm.Name(), prompt)
	if a.cache != nil {
		if report := a.cache.Get(key); report != nil {
			return report, nil
		}
	}

	raw, err := a.llm.Chat(prompt)
	if err != nil {
		return nil, fmt.Errorf("LLM chat: %w", err)
	}
	report := parser.ParseReportResponse(raw)

	if a.cache != nil {
		a.cache.Put(key, report)
	}
	return report, nil
}

func cacheKey(llmName, prompt string) string {
	sum := sha256.Sum256([]byte(llmName + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}
