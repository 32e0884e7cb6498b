// Package prefs persists fuelcalc's last-entered values and theme selection.
//
// Values live in a Store as plain text keyed by field name. Cell wraps a
// single key with a typed, in-memory value that stays authoritative for the
// session even when the store cannot be written.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is a key-value slot store. Get never touches disk after open.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	defaultFilePath   = "~/.local/share/fuelcalc/state.toml"
	defaultSQLitePath = "~/.local/share/fuelcalc/state.db"
)

// DefaultPath returns the default location for the given backend.
func DefaultPath(backend string) string {
	if backend == BackendSQLite {
		return defaultSQLitePath
	}
	return defaultFilePath
}

// Open returns the store for backend. An empty path uses DefaultPath.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		if strings.TrimSpace(path) == "" {
			path = defaultFilePath
		}
		return OpenFile(path)
	case BackendSQLite:
		if strings.TrimSpace(path) == "" {
			path = defaultSQLitePath
		}
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Memory is a Store that keeps values for the life of the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
