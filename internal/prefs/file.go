package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// File keeps preferences in a YAML file managed by viper.
type File struct {
	v    *viper.Viper
	path string
	mu   sync.Mutex
}

// NewFile opens the preference file at path. A missing file is created on the
// first Set.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("preference file path is empty")
	}

	f := &File{path: path}
	v, err := f.read()
	if err != nil {
		return nil, err
	}
	f.v = v
	return f, nil
}

func (f *File) read() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(f.path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read preferences %s: %w", f.path, err)
	}
	return v, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get implements Store.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.v.IsSet(key) {
		return "", false, nil
	}
	return f.v.GetString(key), true, nil
}

// Set implements Store and rewrites the file.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v.Set(key, value)
	return f.write(f.v)
}

// Delete implements ResettableStore. Viper cannot unset a key, so the
// remaining settings are copied into a fresh instance.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := viper.New()
	next.SetConfigFile(f.path)
	next.SetConfigType("yaml")
	for k, val := range f.v.AllSettings() {
		if k != key {
			next.Set(k, val)
		}
	}
	if err := f.write(next); err != nil {
		return err
	}
	f.v = next
	return nil
}

func (f *File) write(v *viper.Viper) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0750); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op; every Set is written through.
func (f *File) Close() error { return nil }
