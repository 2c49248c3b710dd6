package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/models"
)

// FileCache keeps the inspection of each source file for as long as the
// file's content stays the same.
type FileCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*models.CacheEntry
	metrics CacheMetrics
}

func NewFileCache(ttl time.Duration) *FileCache {
	logger.Debug("Created inspection cache, TTL=%v", ttl)
	return &FileCache{
		ttl:     ttl,
		entries: make(map[string]*models.CacheEntry),
	}
}

// ValidateAndGet returns the cached inspection of filePath. Stale, expired or
// unreadable entries are dropped and count as a miss.
func (fc *FileCache) ValidateAndGet(filePath string) (*models.InspectionResult, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	entry, ok := fc.entries[filePath]
	if !ok {
		fc.metrics.Misses++
		logger.Debug("Cache miss for %s", filePath)
		return nil, false
	}

	valid, err := entry.IsValid()
	switch {
	case err != nil:
		logger.Debug("Cache validation error for %s: %v", filePath, err)
	case !valid:
		logger.Debug("Cache miss for %s - file modified", filePath)
	case time.Since(entry.CreatedAt) > fc.ttl:
		logger.Debug("Cache miss for %s - entry expired", filePath)
	default:
		fc.metrics.Hits++
		logger.Debug("Cache hit for %s", filePath)
		return entry.Result, true
	}

	fc.drop(filePath)
	fc.metrics.Misses++
	return nil, false
}

func (fc *FileCache) Set(filePath string, result *models.InspectionResult) error {
	entry, err := models.NewCacheEntry(filePath, result)
	if err != nil {
		return fmt.Errorf("failed to create cache entry: %w", err)
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.entries[filePath] = entry
	return nil
}

func (fc *FileCache) InvalidateFile(filePath string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.drop(filePath)
}

func (fc *FileCache) drop(filePath string) {
	if _, ok := fc.entries[filePath]; ok {
		delete(fc.entries, filePath)
		fc.metrics.Invalidations++
		logger.Debug("Invalidated cache entry for %s", filePath)
	}
}

func (fc *FileCache) GetMetrics() CacheMetrics {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	metrics := fc.metrics
	metrics.TotalEntries = len(fc.entries)
	metrics.CalculateHitRate()
	return metrics
}

func (fc *FileCache) LogStats() {
	m := fc.GetMetrics()
	logger.Debug("Cache stats: Hits=%d, Misses=%d, Hit Rate=%.1f%%, Entries=%d, Invalidations=%d",
		m.Hits, m.Misses, m.HitRate, m.TotalEntries, m.Invalidations)
}
