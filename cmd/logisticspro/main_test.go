package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against an isolated home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "logisticspro dev\n", out)
}

func TestRender_JSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "render", "finance", "--format", "json", "--locale", "en", "--currency", "USD", "--prefs-backend", "memory")
	require.NoError(t, err)

	var page viewmodel.Page
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, viewmodel.SectionFinance, page.Section)
	assert.Equal(t, "en", page.Locale)
	assert.Equal(t, "USD", page.Currency)
	assert.NotNil(t, page.Finance)
	assert.Equal(t, 1, page.PayloadCount())
}

func TestRender_Text(t *testing.T) {
	isolate(t)

	out, err := execute(t, "render", "--locale", "en", "--currency", "usd", "--prefs-backend", "memory")
	require.NoError(t, err)
	assert.Contains(t, out, "LogisticsPro")
	assert.Contains(t, out, "$5,940")
	assert.Contains(t, out, "Recent orders")
	assert.NotContains(t, out, "toggle help")
}

func TestRender_DoesNotPersistOverrides(t *testing.T) {
	isolate(t)

	_, err := execute(t, "render", "clients", "--locale", "zh", "--currency", "CNY")
	require.NoError(t, err)

	out, err := execute(t, "prefs", "get")
	require.NoError(t, err)
	assert.Equal(t, "language=(unset)\ncurrency=(unset)\n", out)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown section", []string{"render", "warehouse"}, "unknown section"},
		{"bad locale", []string{"render", "--locale", "de"}, "unsupported language"},
		{"bad currency", []string{"render", "--currency", "EUR"}, "unsupported currency"},
		{"bad format", []string{"render", "--format", "xml"}, "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := execute(t, append(tt.args, "--prefs-backend", "memory")...)
			require.Error(t, err)

			var userErr *common.UserError
			assert.True(t, errors.As(err, &userErr))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPrefs_RoundTrip(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			isolate(t)
			flag := "--prefs-backend=" + backend

			out, err := execute(t, "prefs", "set", "language", "EN", flag)
			require.NoError(t, err)
			assert.Equal(t, "language=en\n", out)

			_, err = execute(t, "prefs", "set", "currency", "cny", flag)
			require.NoError(t, err)

			out, err = execute(t, "prefs", "get", flag)
			require.NoError(t, err)
			assert.Equal(t, "language=en\ncurrency=CNY\n", out)

			out, err = execute(t, "render", "--format", "json", flag)
			require.NoError(t, err)
			var page viewmodel.Page
			require.NoError(t, json.Unmarshal([]byte(out), &page))
			assert.Equal(t, "en", page.Locale)
			assert.Equal(t, "CNY", page.Currency)

			_, err = execute(t, "prefs", "reset", flag)
			require.NoError(t, err)

			out, err = execute(t, "prefs", "get", "currency", flag)
			require.NoError(t, err)
			assert.Equal(t, "currency=(unset)\n", out)
		})
	}
}

func TestPrefs_Redis(t *testing.T) {
	isolate(t)
	mr := miniredis.RunT(t)
	t.Setenv("LOGISTICSPRO_PREFERENCES_REDIS_ADDR", mr.Addr())

	_, err := execute(t, "prefs", "set", "currency", "USD", "--prefs-backend", "redis")
	require.NoError(t, err)

	out, err := execute(t, "prefs", "get", "currency", "--prefs-backend", "redis")
	require.NoError(t, err)
	assert.Equal(t, "currency=USD\n", out)
}

func TestPrefs_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		notFind bool
	}{
		{"unknown key on set", []string{"prefs", "set", "theme", "dark"}, "unknown preference", true},
		{"unknown key on get", []string{"prefs", "get", "theme"}, "unknown preference", true},
		{"bad language", []string{"prefs", "set", "language", "fr"}, "unsupported language", false},
		{"bad currency", []string{"prefs", "set", "currency", "GBP"}, "unsupported currency", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.notFind, errors.Is(err, common.ErrNotFound))
		})
	}
}

func TestPrefs_History(t *testing.T) {
	isolate(t)

	for _, cur := range []string{"USD", "CNY"} {
		_, err := execute(t, "prefs", "set", "currency", cur, "--prefs-backend", "sqlite")
		require.NoError(t, err)
	}

	out, err := execute(t, "prefs", "history", "currency", "--prefs-backend", "sqlite")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "USD")
	assert.Contains(t, out, "CNY")

	_, err = execute(t, "prefs", "history", "--prefs-backend", "file")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keeps no history")
}

func TestFixtures(t *testing.T) {
	isolate(t)

	out, err := execute(t, "fixtures")
	require.NoError(t, err)
	for _, name := range []string{"clients", "suppliers", "products", "orders", "payments", "months", "service shares"} {
		assert.Contains(t, out, name)
	}
}

func TestInvalidBackend(t *testing.T) {
	isolate(t)

	_, err := execute(t, "prefs", "get", "--prefs-backend", "etcd")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownBackend)
}
