// Package prefs persists the dashboard's display preferences.
package prefs

import (
	"context"
	"maps"
	"sync"
)

// Preference keys.
const (
	KeyLanguage = "language"
	KeyCurrency = "currency"
)

// Keys returns every preference key the dashboard uses.
func Keys() []string {
	return []string{KeyLanguage, KeyCurrency}
}

// Store is a persistent string key/value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ResettableStore can also forget keys.
type ResettableStore interface {
	Store
	Delete(ctx context.Context, key string) error
}

// Memory keeps preferences for the life of the process.
type Memory struct {
	values map[string]string
	mu     sync.RWMutex
}

// NewMemory returns a memory store seeded with initial.
func NewMemory(initial map[string]string) *Memory {
	values := make(map[string]string, len(initial))
	maps.Copy(values, initial)
	return &Memory{values: values}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete implements ResettableStore.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
