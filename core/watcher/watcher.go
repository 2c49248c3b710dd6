package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tristendillon/stubgen/core/cache"
	"github.com/tristendillon/stubgen/core/logger"
	"github.com/tristendillon/stubgen/core/models"
)

type FileWatcher interface {
	Watch(ctx context.Context) error
	Close() error
}

type FileWatcherImpl struct {
	FileWatcher *models.FileWatcher
	cache       *cache.FileCache
}

func NewFileWatcher(filePath string) (*FileWatcherImpl, error) {
	fw, err := models.NewFileWatcher(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &FileWatcherImpl{
		FileWatcher: fw,
	}, nil
}

// WithCache drops the cached inspection of the watched file when it is removed
// or renamed away. Writes are left to the entry's own content check.
func (fw *FileWatcherImpl) WithCache(fc *cache.FileCache) *FileWatcherImpl {
	fw.cache = fc
	return fw
}

// WithDebounce overrides models.DefaultDebounce.
func (fw *FileWatcherImpl) WithDebounce(d time.Duration) *FileWatcherImpl {
	fw.FileWatcher.Debounce = d
	return fw
}

// Watch blocks until ctx is done or the underlying watcher fails. OnStart runs
// once before the first event is read.
func (fw *FileWatcherImpl) Watch(ctx context.Context) error {
	dir := fw.FileWatcher.Dir()
	if err := fw.FileWatcher.Watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add watcher for %s: %w", dir, err)
	}
	logger.Debug("Watching %s", fw.FileWatcher.FilePath)

	if err := fw.FileWatcher.OnStart(); err != nil {
		logger.Error("Watcher.OnStart failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.FileWatcher.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if filepath.Clean(event.Name) != fw.FileWatcher.FilePath {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if fw.cache != nil && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				fw.cache.InvalidateFile(fw.FileWatcher.FilePath)
				logger.Debug("Invalidated cache for %s", event.Name)
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fw.debounceGenerate()
			}

		case err, ok := <-fw.FileWatcher.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcherImpl) debounceGenerate() {
	fw.FileWatcher.Mutex.Lock()
	defer fw.FileWatcher.Mutex.Unlock()

	if fw.FileWatcher.DebounceTimer != nil {
		fw.FileWatcher.DebounceTimer.Stop()
	}

	fw.FileWatcher.DebounceTimer = time.AfterFunc(fw.FileWatcher.Debounce, func() {
		logger.Debug("File changes detected, regenerating...")
		if err := fw.FileWatcher.OnChange(); err != nil {
			logger.Error("Watcher.OnChange failed: %v", err)
		}
	})
}

func (fw *FileWatcherImpl) Close() error {
	fw.FileWatcher.Mutex.Lock()
	defer fw.FileWatcher.Mutex.Unlock()

	if fw.FileWatcher.DebounceTimer != nil {
		fw.FileWatcher.DebounceTimer.Stop()
	}

	if err := fw.FileWatcher.OnClose(); err != nil {
		logger.Error("Watcher.OnClose failed: %v", err)
	}

	return fw.FileWatcher.Watcher.Close()
}
