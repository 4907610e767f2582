// Package storage defines the opaque key-value blob store the application
// persists through, plus its Redis and in-memory implementations. Callers
// treat blobs as byte slices; all serialization happens above this layer.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNoBlob is returned by Load when no value has ever been saved under the
// key. First-run startup handles this by beginning with default state.
var ErrNoBlob = errors.New("storage: no blob for key")

// Store is the persistence collaborator. Save overwrites the full blob for
// a key; Load returns the last saved blob or ErrNoBlob.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// Memory is an in-process Store used by tests and as a zero-dependency
// fallback when no Redis address is configured. Contents do not survive
// a restart.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Load returns the blob saved under key, or ErrNoBlob.
func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, ErrNoBlob
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Save stores a copy of blob under key.
func (m *Memory) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := make([]byte, len(blob))
	copy(b, blob)
	m.blobs[key] = b
	return nil
}
