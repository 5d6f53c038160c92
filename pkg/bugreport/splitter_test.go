package bugreport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

const sampleBugreport = `== dumpstate: 2024-03-15 10:02:11
preamble line, no section yet
------ SYSTEM LOG (logcat -v threadtime -d *:v) ------
03-15 10:00:00.123  1234  1234 E AndroidRuntime: FATAL EXCEPTION: main
03-15 10:00:00.200  1234  1234 W ActivityManager: Slow operation
	at com.app.Main.onCreate(Main.java:10)
------ 0.231s was the duration of 'SYSTEM LOG' ------
------ KERNEL LOG (dmesg) ------
[   98.000123] lowmemorykiller: Killing 'com.big.app'
<6>[  100.500000] binder: release 1234
not a kernel line
------ HAL DUMP ------
vendor.gnss::IGnss up
`

func TestSplit(t *testing.T) {
	sections, err := Split(strings.NewReader(sampleBugreport))
	require.NoError(t, err)

	require.Len(t, sections, 3)
	assert.Equal(t, "SYSTEM LOG (logcat -v threadtime -d *:v)", sections[0].Name)
	assert.Equal(t, "KERNEL LOG (dmesg)", sections[1].Name)
	assert.Equal(t, "HAL DUMP", sections[2].Name)
	assert.Len(t, sections[0].Lines, 3)
	assert.Equal(t, []string{"vendor.gnss::IGnss up"}, sections[2].Lines)
}

func TestLogcatEntries(t *testing.T) {
	sections, err := Split(strings.NewReader(sampleBugreport))
	require.NoError(t, err)

	entries := LogcatEntries(sections[0])

	require.Len(t, entries, 2, "stack continuation lines are skipped")
	assert.Equal(t, "03-15 10:00:00.123", entries[0].Timestamp)
	assert.Equal(t, "E", entries[0].Level)
	assert.Equal(t, "W", entries[1].Level)
	assert.Contains(t, entries[0].Raw, "FATAL EXCEPTION")
}

func TestKernelEntries(t *testing.T) {
	sections, err := Split(strings.NewReader(sampleBugreport))
	require.NoError(t, err)

	entries := KernelEntries(sections[1])

	require.Len(t, entries, 2)
	assert.InDelta(t, 98.000123, entries[0].Timestamp, 1e-9)
	assert.InDelta(t, 100.5, entries[1].Timestamp, 1e-9)
}

func TestBackfill(t *testing.T) {
	sections, err := Split(strings.NewReader(sampleBugreport))
	require.NoError(t, err)

	res := &model.AnalysisResult{}
	Backfill(res, sections)
	assert.Len(t, res.LogcatEntries, 2)
	assert.Len(t, res.KernelEntries, 2)

	// Populated lists are not overwritten.
	res2 := &model.AnalysisResult{
		LogcatEntries: []model.LogcatEntry{{Raw: "already there"}},
	}
	Backfill(res2, sections)
	require.Len(t, res2.LogcatEntries, 1)
	assert.Equal(t, "already there", res2.LogcatEntries[0].Raw)
}
