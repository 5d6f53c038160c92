package evidence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

func TestCollectKernelEvidenceSurroundingWindow(t *testing.T) {
	events := []model.KernelEvent{
		{Type: "oom_kill", Severity: model.SeverityCritical, Timestamp: 100, Summary: "oom", Entries: []string{"oom killer invoked"}},
	}
	entries := []model.KernelEntry{
		{Timestamp: 98, Raw: "[98.000] nearby before"},
		{Timestamp: 107, Raw: "[107.000] too far after"},
	}
	insight := model.InsightCard{Title: "OOM kill of com.app", Severity: model.SeverityCritical}

	logs := collectKernelEvidence(insight, events, entries)

	assert.Equal(t, []string{"oom killer invoked", "[98.000] nearby before"}, logs)
}

func TestCollectKernelEvidenceSummaryMatch(t *testing.T) {
	events := []model.KernelEvent{
		{Type: "unrelated_tag", Summary: "lowmemorykiller reaped com.big.app to free pages", Entries: []string{"lmk line"}},
	}
	insight := model.InsightCard{Title: "lowmemorykiller reaped com.big.app repeatedly"}

	logs := collectKernelEvidence(insight, events, nil)

	assert.Equal(t, []string{"lmk line"}, logs)
}

func TestCollectKernelEvidenceSeverityFallback(t *testing.T) {
	events := []model.KernelEvent{
		{Type: "usb_reset", Severity: model.SeverityWarning, Entries: []string{"w1"}},
		{Type: "kernel_panic", Severity: model.SeverityCritical, Entries: []string{"c1"}},
		{Type: "wifi_firmware", Severity: model.SeverityWarning, Entries: []string{"w2"}},
		{Type: "gpu_fault", Severity: model.SeverityWarning, Entries: []string{"w3"}},
		{Type: "audio_underrun", Severity: model.SeverityWarning, Entries: []string{"w4"}},
	}
	insight := model.InsightCard{Title: "no direct match here", Severity: model.SeverityWarning}

	logs := collectKernelEvidence(insight, events, nil)

	// Fallback picks same-severity events, capped to 3.
	assert.Equal(t, []string{"w1", "w2", "w3"}, logs)
}

func TestCollectKernelEvidenceDeduplicates(t *testing.T) {
	events := []model.KernelEvent{
		{Type: "oom_kill", Timestamp: 10, Entries: []string{"shared line", "first only"}},
		{Type: "oom_kill", Timestamp: 11, Entries: []string{"shared line", "second only"}},
	}
	insight := model.InsightCard{Title: "oom kill spree"}

	first := collectKernelEvidence(insight, events, nil)
	second := collectKernelEvidence(insight, events, nil)

	assert.Equal(t, []string{"shared line", "first only", "second only"}, first)
	assert.Equal(t, first, second, "collector is idempotent")
}

func TestCollectKernelEvidenceSurroundingCap(t *testing.T) {
	events := []model.KernelEvent{
		{Type: "oom_kill", Timestamp: 100, Entries: []string{"event line"}},
	}
	var entries []model.KernelEntry
	for i := 0; i < 30; i++ {
		entries = append(entries, model.KernelEntry{Timestamp: 100, Raw: fmt.Sprintf("[100.000] line %d", i)})
	}
	insight := model.InsightCard{Title: "oom kill"}

	logs := collectKernelEvidence(insight, events, entries)

	require.Len(t, logs, 21, "event entry plus at most 20 surrounding lines")
	assert.Equal(t, "event line", logs[0])
	assert.Equal(t, "[100.000] line 19", logs[20])
}
