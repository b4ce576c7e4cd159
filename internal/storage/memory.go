package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
)

// MemoryStore keeps blobs in a map. Used by tests and local development
// where no object store is reachable.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	types map[string]string
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
		types: make(map[string]string),
	}
}

func (m *MemoryStore) Driver() Driver { return DriverMemory }

func (m *MemoryStore) Put(_ context.Context, key string, r io.Reader, contentType string) (Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	m.types[key] = contentType
	return Info{
		Key:         key,
		URL:         "memory://blobs/" + key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	delete(m.blobs, key)
	delete(m.types, key)
	return ok, nil
}

func (m *MemoryStore) KeyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid blob url %q: %w", rawURL, err)
	}
	if u.Scheme != "memory" {
		return "", fmt.Errorf("blob url %q is not a memory reference", rawURL)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

// Get returns a stored blob; test helper.
func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	return data, ok
}

// Len reports the number of stored blobs; test helper.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}
