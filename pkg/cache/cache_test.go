package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

func TestCachePutGet(t *testing.T) {
	c := New(time.Minute)
	report := &model.Report{Summary: "all good"}

	assert.Nil(t, c.Get("k"))
	c.Put("k", report)
	got := c.Get("k")
	require.NotNil(t, got)
	assert.Equal(t, "all good", got.Summary)
}

func TestCacheExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Put("k", &model.Report{Summary: "stale soon"})

	require.NotNil(t, c.Get("k"))
	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, c.Get("k"))
}

func TestCacheOverwrite(t *testing.T) {
	c := New(time.Minute)
	c.Put("k", &model.Report{Summary: "first"})
	c.Put("k", &model.Report{Summary: "second"})

	got := c.Get("k")
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Summary)
}
