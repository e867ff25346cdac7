package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyFormat(t *testing.T) {
	require.Equal(t, "plan-table:p1:deliverables", Key("p1", "deliverables"))
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(16, time.Minute)

	_, hit := c.Get("p1", "deliverables")
	require.False(t, hit)

	rows := []map[string]any{{"id": uint(1), "work_product": "Project Plan"}}
	c.Set("p1", "deliverables", rows)

	got, hit := c.Get("p1", "deliverables")
	require.True(t, hit)
	require.Equal(t, rows, got)
}

func TestMemoryCacheKeysAreScoped(t *testing.T) {
	c := NewMemoryCache(16, time.Minute)
	c.Set("p1", "deliverables", []map[string]any{{"id": uint(1)}})
	c.Set("p1", "assumptions", []map[string]any{{"id": uint(2)}})
	c.Set("p2", "deliverables", []map[string]any{{"id": uint(3)}})

	c.Delete("p1", "deliverables")

	_, hit := c.Get("p1", "deliverables")
	require.False(t, hit)
	_, hit = c.Get("p1", "assumptions")
	require.True(t, hit)
	_, hit = c.Get("p2", "deliverables")
	require.True(t, hit)
}

func TestMemoryCacheExpires(t *testing.T) {
	c := NewMemoryCache(16, 20*time.Millisecond)
	c.Set("p1", "deliverables", []map[string]any{{"id": uint(1)}})

	_, hit := c.Get("p1", "deliverables")
	require.True(t, hit)

	time.Sleep(60 * time.Millisecond)

	_, hit = c.Get("p1", "deliverables")
	require.False(t, hit)
}
