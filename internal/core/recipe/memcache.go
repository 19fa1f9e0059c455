package recipe

import (
	"context"
	"sync"
	"time"

	"nutrition-estimator/internal/infrastructure/config"
	"nutrition-estimator/internal/pkg/common"

	"go.uber.org/zap"
)

// MemoryCache is an in-process TTL cache with LRU eviction when full.
type MemoryCache struct {
	config *config.CacheConfig
	mu     sync.RWMutex
	store  map[string]memCacheEntry
	stats  memCacheStats
	done   chan struct{}
	once   sync.Once
}

type memCacheEntry struct {
	lines       []common.IngredientLine
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type memCacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewMemoryCache creates the cache and starts its cleanup goroutine.
func NewMemoryCache(cfg *config.CacheConfig) *MemoryCache {
	c := &MemoryCache{
		config: cfg,
		store:  make(map[string]memCacheEntry),
		done:   make(chan struct{}),
	}

	go c.startCleanup()

	common.LogInfo("memory cache initialized",
		zap.Int("max_size", cfg.MaxSize),
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cfg.CleanupInterval),
	)

	return c
}

// Get returns the cached ingredient list for a dish, if present and fresh.
func (c *MemoryCache) Get(_ context.Context, dishName string) ([]common.IngredientLine, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[dishName]
	if !exists {
		c.stats.misses++
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.store, dishName)
		c.stats.evictions++
		c.stats.misses++
		return nil, false
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	c.store[dishName] = entry
	c.stats.hits++

	// Callers must not mutate the shared slice.
	lines := make([]common.IngredientLine, len(entry.lines))
	copy(lines, entry.lines)
	return lines, true
}

// Set stores the ingredient list for a dish. When the cache is full, expired
// entries are cleaned and then the least-used entry is evicted.
func (c *MemoryCache) Set(_ context.Context, dishName string, lines []common.IngredientLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.config.MaxSize {
		evicted := c.cleanupLocked()
		if evicted > 0 {
			common.LogInfo("cache cleanup executed", zap.Int("evicted", evicted))
		}
		if len(c.store) >= c.config.MaxSize {
			c.evictLRULocked()
		}
		if len(c.store) >= c.config.MaxSize {
			common.LogWarn("cache full, dropping entry",
				zap.Int("size", len(c.store)),
				zap.String("dish", dishName),
			)
			return
		}
	}

	stored := make([]common.IngredientLine, len(lines))
	copy(stored, lines)
	now := time.Now()
	c.store[dishName] = memCacheEntry{
		lines:      stored,
		expiresAt:  now.Add(c.config.TTL),
		createdAt:  now,
		lastAccess: now,
	}
}

// Close stops the cleanup goroutine.
func (c *MemoryCache) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *MemoryCache) startCleanup() {
	ticker := time.NewTicker(c.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			evicted := c.cleanupLocked()
			remaining := len(c.store)
			c.mu.Unlock()
			if evicted > 0 {
				common.LogInfo("cleaned up expired cache entries",
					zap.Int("count", evicted),
					zap.Int("remaining", remaining),
				)
			}
		case <-c.done:
			return
		}
	}
}

func (c *MemoryCache) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
			count++
			c.stats.evictions++
		}
	}
	return count
}

func (c *MemoryCache) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestCount int

	for key, entry := range c.store {
		if oldestKey == "" ||
			entry.accessCount < lowestCount ||
			(entry.accessCount == lowestCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(c.store, oldestKey)
		c.stats.evictions++
		common.LogInfo("evicted least-used cache entry", zap.String("dish", oldestKey))
	}
}
