package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ismael0303/SOUP-Market-sub001/internal/collection"
)

// ErrUnsupported is returned by New for an unknown storage kind.
var ErrUnsupported = errors.New("unsupported storage kind")

const (
	KindMemory  = "memory"
	KindFile    = "file"
	KindKeyring = "keyring"
)

// Storage is a pluggable persistence layer for session values.
// The in-memory default is fine for tests and servers; swap with file or keyring for CLI tools.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// New creates a storage of the given kind. Location is a file URL for KindFile
// and a keyring service name for KindKeyring; it is ignored for KindMemory.
func New(kind, location string) (Storage, error) {
	switch kind {
	case "", KindMemory:
		return NewMemory(), nil
	case KindFile:
		if location == "" {
			return nil, fmt.Errorf("file storage: location was empty")
		}
		return NewFile(location), nil
	case KindKeyring:
		return NewKeyring(location), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupported, kind)
}

type memory struct {
	values *collection.SyncMap[string, string]
}

func (m *memory) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.values.Get(key)
	return value, ok, nil
}

func (m *memory) Set(_ context.Context, key, value string) error {
	m.values.Put(key, value)
	return nil
}

func (m *memory) Remove(_ context.Context, key string) error {
	m.values.Delete(key)
	return nil
}

// NewMemory creates a concurrency-safe in-memory storage.
func NewMemory() Storage {
	return &memory{values: collection.NewSyncMap[string, string]()}
}
