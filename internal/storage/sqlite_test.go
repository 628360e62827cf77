package storage

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "prefs", "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestSQLiteStorage_GetSet(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "language")
	require.NoError(t, err)
	assert.False(t, ok, "fresh database has no preferences")

	require.NoError(t, store.Set(ctx, "language", "zh"))
	require.NoError(t, store.Set(ctx, "currency", "USD"))
	require.NoError(t, store.Set(ctx, "language", "en"))

	got, ok, err := store.Get(ctx, "language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", got)

	got, ok, err = store.Get(ctx, "currency")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "USD", got)
}

func TestSQLiteStorage_Delete(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "currency", "CNY"))
	require.NoError(t, store.Delete(ctx, "currency"))
	require.NoError(t, store.Delete(ctx, "currency"), "deleting twice is a no-op")

	_, ok, err := store.Get(ctx, "currency")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStorage_History(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for _, v := range []string{"ru", "en", "zh"} {
		require.NoError(t, store.Set(ctx, "language", v))
	}
	require.NoError(t, store.Set(ctx, "currency", "USD"))

	entries, err := store.History(ctx, "language", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "zh", entries[0].Value)
	assert.Equal(t, "en", entries[1].Value)
	assert.False(t, entries[0].ChangedAt.IsZero())

	entries, err = store.History(ctx, "language", 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSQLiteStorage_Validation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, _, err := store.Get(ctx, " ")
	assert.ErrorIs(t, err, ErrEmptyString)

	//nolint:staticcheck // nil context is the case under test
	err = store.Set(nil, "language", "en")
	assert.ErrorIs(t, err, ErrNilContext)

	_, err = NewSQLiteStorage("")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"plain key", "language", nil},
		{"empty", "", ErrEmptyString},
		{"blank", "  ", ErrEmptyString},
		{"inner space", "lang uage", ErrInvalidKey},
		{"newline", "currency\n", ErrInvalidKey},
		{"too long", strings.Repeat("k", maxKeyLen+1), ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKey(tt.key)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSQLiteStorage_RejectsLongValues(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.Set(context.Background(), "language", strings.Repeat("x", maxValueLen+1))
	assert.ErrorIs(t, err, ErrValueTooBig)
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	first, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Migrate(ctx))
	require.NoError(t, first.Set(ctx, "language", "zh"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()
	require.NoError(t, second.Migrate(ctx), "migrating an up to date database succeeds")

	got, ok, err := second.Get(ctx, "language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "zh", got)
	assert.Equal(t, dbPath, second.Path())
}

func TestMigrate_SchemaVersion(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	var indexCount int
	err = store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='index' AND name='idx_preference_history_key'
	`).Scan(&indexCount)
	require.NoError(t, err)
	assert.Equal(t, 1, indexCount)
}

func TestMigrate_RefusesNewerSchema(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx, "PRAGMA user_version = 99")
	require.NoError(t, err)

	err = store.Migrate(ctx)
	assert.ErrorIs(t, err, ErrSchemaTooNew)
}
