package models

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 500 * time.Millisecond

// FileWatcher watches a single source file. The parent directory is watched
// so that editors replacing the file through a rename are still observed.
type FileWatcher struct {
	Watcher       *fsnotify.Watcher
	FilePath      string
	Debounce      time.Duration
	DebounceTimer *time.Timer
	Mutex         sync.Mutex
	OnStart       func() error
	OnChange      func() error
	OnClose       func() error
}

func NewFileWatcher(filePath string) (*FileWatcher, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", filePath, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcher{
		Watcher:  watcher,
		FilePath: absPath,
		Debounce: DefaultDebounce,
		OnStart:  func() error { return nil },
		OnChange: func() error { return fmt.Errorf("OnChange not set") },
		OnClose:  func() error { return nil },
	}, nil
}

func (fw *FileWatcher) Dir() string {
	return filepath.Dir(fw.FilePath)
}

func (fw *FileWatcher) AddOnStartFunc(onStart func() error) {
	fw.OnStart = onStart
}

func (fw *FileWatcher) AddOnChangeFunc(generateFunc func() error) {
	fw.OnChange = generateFunc
}

func (fw *FileWatcher) AddOnCloseFunc(onClose func() error) {
	fw.OnClose = onClose
}
