// Package cache provides the row cache behind the section read path. The
// cache is keyed strictly by the (project, table) pair; losing every entry is
// always safe and equivalent to a permanent miss.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RowCache is the store for materialized "current rows of (project, table)".
// Implementations must be safe for concurrent use.
type RowCache interface {
	Get(projectID, tableKey string) ([]map[string]any, bool)
	Set(projectID, tableKey string, rows []map[string]any)
	Delete(projectID, tableKey string)
}

// Key builds the cache identity for a (project, table) pair.
func Key(projectID, tableKey string) string {
	return "plan-table:" + projectID + ":" + tableKey
}

// MemoryCache is an in-process LRU with per-entry TTL.
type MemoryCache struct {
	lru *expirable.LRU[string, []map[string]any]
}

// NewMemoryCache creates an LRU holding at most maxSize entries, each expiring
// ttl after it was stored.
func NewMemoryCache(maxSize int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{lru: expirable.NewLRU[string, []map[string]any](maxSize, nil, ttl)}
}

func (c *MemoryCache) Get(projectID, tableKey string) ([]map[string]any, bool) {
	return c.lru.Get(Key(projectID, tableKey))
}

func (c *MemoryCache) Set(projectID, tableKey string, rows []map[string]any) {
	c.lru.Add(Key(projectID, tableKey), rows)
}

func (c *MemoryCache) Delete(projectID, tableKey string) {
	c.lru.Remove(Key(projectID, tableKey))
}
