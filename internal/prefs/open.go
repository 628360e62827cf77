package prefs

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/config"
	"github.com/Veraticus/logistics-pro/internal/storage"
)

// Backend is an opened preference store that owns resources.
type Backend interface {
	ResettableStore
	io.Closer
}

// Open creates the backend selected by cfg.
func Open(ctx context.Context, cfg config.Preferences) (Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(nil), nil
	case config.BackendFile:
		f, err := NewFile(cfg.File)
		if err != nil {
			return nil, err
		}
		return f, nil
	case config.BackendSQLite:
		s, err := storage.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to migrate preferences database: %w", err)
		}
		return s, nil
	case config.BackendRedis:
		r, err := NewRedis(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Hash:     cfg.Redis.Hash,
		})
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.Backend)
	}
}

// Reset deletes every dashboard preference from s.
func Reset(ctx context.Context, s ResettableStore) error {
	for _, k := range Keys() {
		if err := s.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
