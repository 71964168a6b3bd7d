package io

import (
	"context"
	"os"
	"sync"

	"vantage/pkg/loader"

	"golang.org/x/sync/singleflight"
)

// IOTableFileLoader loads dataset files from the local filesystem with
// caching, so two commands reading the same table within one process
// share a single read.
type IOTableFileLoader struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewIOTableFileLoader creates a new filesystem-based file loader.
func NewIOTableFileLoader() *IOTableFileLoader {
	return &IOTableFileLoader{
		cache: make(map[string][]byte),
	}
}

// GetFileText reads the file content from the filesystem. Results are cached.
func (l *IOTableFileLoader) GetFileText(ctx context.Context, file loader.TableFile) ([]byte, error) {
	key := loader.CacheKey(file)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		result, err := os.ReadFile(file.FilePath)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = result
		l.cacheMu.Unlock()

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// Stat returns the size of the file without reading it.
func (l *IOTableFileLoader) Stat(ctx context.Context, file loader.TableFile) (loader.FileInfo, error) {
	info, err := os.Stat(file.FilePath)
	if err != nil {
		return loader.FileInfo{}, err
	}
	return loader.FileInfo{Size: info.Size()}, nil
}
