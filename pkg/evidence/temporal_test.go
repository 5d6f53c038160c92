package evidence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

func TestCorrelateEntriesWindowAndLevels(t *testing.T) {
	entries := []model.LogcatEntry{
		{Timestamp: "03-15 10:00:01.500", Level: "E", Raw: "in window, error"},
		{Timestamp: "03-15 10:00:01.500", Level: "I", Raw: "in window, but info"},
		{Timestamp: "03-15 10:00:02.000", Level: "W", Raw: "exactly on the edge"},
		{Timestamp: "03-15 10:00:02.001", Level: "F", Raw: "just outside"},
		{Timestamp: "03-15 09:59:58.500", Level: "E", Raw: "before, in window"},
		{Timestamp: "garbage", Level: "E", Raw: "unparseable"},
	}

	got := correlateEntries("03-15 10:00:00.000", entries)

	assert.Equal(t, []string{"in window, error", "exactly on the edge", "before, in window"}, got)
}

func TestCorrelateEntriesUnparseableInsightTimestamp(t *testing.T) {
	entries := []model.LogcatEntry{
		{Timestamp: "03-15 10:00:00.000", Level: "E", Raw: "x"},
	}
	assert.Empty(t, correlateEntries("not a timestamp", entries))
}

func TestCorrelateEntriesCap(t *testing.T) {
	var entries []model.LogcatEntry
	for i := 0; i < 30; i++ {
		entries = append(entries, model.LogcatEntry{
			Timestamp: "03-15 10:00:00.100",
			Level:     "W",
			Raw:       fmt.Sprintf("line %d", i),
		})
	}

	got := correlateEntries("03-15 10:00:00.000", entries)

	require.Len(t, got, 20)
	assert.Equal(t, "line 0", got[0])
	assert.Equal(t, "line 19", got[19])
}

func TestPseudoSeconds(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want float64
		ok   bool
	}{
		{"valid", "01-01 00:00:01.500", float64(1*30*86400+1*86400+1) + 0.5, true},
		{"another month", "02-01 00:00:00.000", float64(2*30*86400 + 1*86400), true},
		{"missing millis", "01-01 00:00:01", 0, false},
		{"empty", "", 0, false},
		{"junk", "yesterday", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pseudoSeconds(tt.ts)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
