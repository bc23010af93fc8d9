package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
)

// File persists values as a JSON object at an afs URL. Every write replaces
// the whole snapshot; every read reloads it, so changes made by another
// process are observed (last writer wins).
type File struct {
	mu  sync.RWMutex
	URL string
	fs  afs.Service
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	values, err := f.load(ctx)
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load(ctx)
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(ctx, values)
}

func (f *File) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(ctx, values)
}

func (f *File) load(ctx context.Context) (map[string]string, error) {
	values := map[string]string{}
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check %v: %w", f.URL, err)
	}
	if !ok {
		return values, nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return values, nil
	}
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", f.URL, err)
	}
	return values, nil
}

func (f *File) save(ctx context.Context, values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %v: %w", f.URL, err)
	}
	return nil
}

// NewFile creates a storage persisted at the given afs URL.
func NewFile(URL string) *File {
	return &File{URL: URL, fs: afs.New()}
}
