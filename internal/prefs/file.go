package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// File is a Store backed by a flat TOML document of string values.
type File struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// OpenFile loads the TOML document at path. A missing, unreadable or
// corrupt file yields an empty store; only path resolution can fail.
func OpenFile(path string) (*File, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	f := &File{path: resolved, values: make(map[string]string)}

	file, err := os.Open(resolved)
	if err != nil {
		return f, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return f, nil // Graceful degradation
	}

	var raw map[string]string
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return f, nil // Graceful degradation
	}
	for k, v := range raw {
		f.values[k] = v
	}
	return f, nil
}

// Path returns the resolved file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// Set records value and rewrites the file, creating directories as needed.
// The in-memory value is kept even when the write fails.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	bytes, err := toml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(f.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (f *File) Close() error {
	return nil
}
