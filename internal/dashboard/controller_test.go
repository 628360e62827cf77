package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/currency"
	"github.com/Veraticus/logistics-pro/internal/i18n"
	"github.com/Veraticus/logistics-pro/internal/prefs"
	"github.com/Veraticus/logistics-pro/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPrefs struct {
	mock.Mock
}

func (m *mockPrefs) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockPrefs) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func loadStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Load()
	require.NoError(t, err)
	return st
}

func TestNew_RestoresPreferences(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		stored       map[string]string
		wantLocale   i18n.Locale
		wantCurrency currency.Currency
	}{
		{
			name:         "stored values",
			stored:       map[string]string{prefs.KeyLanguage: "zh", prefs.KeyCurrency: "USD"},
			wantLocale:   i18n.LocaleZH,
			wantCurrency: currency.USD,
		},
		{
			name:         "empty store",
			stored:       nil,
			wantLocale:   i18n.LocaleRU,
			wantCurrency: currency.RUB,
		},
		{
			name:         "unrecognized values fall back",
			stored:       map[string]string{prefs.KeyLanguage: "fr", prefs.KeyCurrency: "EUR"},
			wantLocale:   i18n.LocaleRU,
			wantCurrency: currency.RUB,
		},
		{
			name:         "codes in other case",
			stored:       map[string]string{prefs.KeyLanguage: "EN", prefs.KeyCurrency: "usd"},
			wantLocale:   i18n.LocaleEN,
			wantCurrency: currency.USD,
		},
		{
			name:         "one valid value",
			stored:       map[string]string{prefs.KeyLanguage: "klingon", prefs.KeyCurrency: "CNY"},
			wantLocale:   i18n.LocaleRU,
			wantCurrency: currency.CNY,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(ctx, loadStore(t), prefs.NewMemory(tt.stored))
			assert.Equal(t, tt.wantLocale, c.State().Locale)
			assert.Equal(t, tt.wantCurrency, c.State().Currency)
			assert.Equal(t, SectionDashboard, c.State().Section)
			assert.NotEmpty(t, c.SessionID())
		})
	}
}

func TestNew_ReadFailureFallsBack(t *testing.T) {
	m := &mockPrefs{}
	m.On("Get", mock.Anything, prefs.KeyLanguage).Return("", false, errors.New("disk on fire"))
	m.On("Get", mock.Anything, prefs.KeyCurrency).Return("USD", true, nil)

	c := New(context.Background(), loadStore(t), m, WithSessionID("test-session"))
	assert.Equal(t, i18n.LocaleRU, c.State().Locale)
	assert.Equal(t, currency.USD, c.State().Currency)
	assert.Equal(t, "test-session", c.SessionID())
	m.AssertExpectations(t)
}

func TestController_SetThenRead(t *testing.T) {
	ctx := context.Background()
	p := prefs.NewMemory(nil)
	c := New(ctx, loadStore(t), p)

	require.NoError(t, c.SetLocale(ctx, i18n.LocaleEN))
	require.NoError(t, c.SetCurrency(ctx, currency.CNY))

	lang, ok, err := p.Get(ctx, prefs.KeyLanguage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", lang)

	cur, ok, err := p.Get(ctx, prefs.KeyCurrency)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CNY", cur)

	restored := New(ctx, loadStore(t), p)
	assert.Equal(t, i18n.LocaleEN, restored.State().Locale)
	assert.Equal(t, currency.CNY, restored.State().Currency)
}

func TestController_PersistFailureStillChangesState(t *testing.T) {
	ctx := context.Background()
	m := &mockPrefs{}
	m.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	m.On("Set", mock.Anything, prefs.KeyLanguage, "zh").Return(errors.New("read-only"))
	m.On("Set", mock.Anything, prefs.KeyCurrency, "USD").Return(errors.New("read-only"))

	c := New(ctx, loadStore(t), m)

	err := c.SetLocale(ctx, i18n.LocaleZH)
	assert.ErrorIs(t, err, common.ErrPreferenceStore)
	assert.Equal(t, i18n.LocaleZH, c.State().Locale)

	err = c.SetCurrency(ctx, currency.USD)
	assert.ErrorIs(t, err, common.ErrPreferenceStore)
	assert.Equal(t, currency.USD, c.State().Currency)
	m.AssertExpectations(t)
}

func TestController_RejectsUnknownValues(t *testing.T) {
	ctx := context.Background()
	m := &mockPrefs{}
	m.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	c := New(ctx, loadStore(t), m)
	before := c.State()

	assert.ErrorIs(t, c.SetLocale(ctx, i18n.Locale("xx")), common.ErrUnknownLocale)
	assert.ErrorIs(t, c.SetCurrency(ctx, currency.Currency("EUR")), common.ErrUnknownCurrency)
	assert.ErrorIs(t, c.SelectSection(Section("reports")), common.ErrUnknownSection)
	assert.ErrorIs(t, c.OpenDialog(DialogKind("invoice")), common.ErrUnknownDialog)
	assert.Equal(t, before, c.State())
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_Navigation(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, loadStore(t), prefs.NewMemory(nil), WithSection(SectionOrders))
	assert.Equal(t, SectionOrders, c.State().Section)

	require.NoError(t, c.SelectSection(SectionLogistics))
	assert.Equal(t, SectionLogistics, c.State().Section)

	c.NextSection()
	assert.Equal(t, SectionFinance, c.State().Section)
	c.PrevSection()
	c.PrevSection()
	assert.Equal(t, SectionProducts, c.State().Section)

	require.NoError(t, c.OpenDialog(DialogSupplier))
	require.NoError(t, c.OpenDialog(DialogOrder))
	require.NoError(t, c.CloseDialog(DialogSupplier))
	assert.Equal(t, Dialogs{Order: true}, c.State().Dialogs)

	require.NoError(t, c.CycleLocale(ctx))
	require.NoError(t, c.CycleCurrency(ctx))
	assert.Equal(t, i18n.LocaleEN, c.State().Locale)
	assert.Equal(t, currency.USD, c.State().Currency)
}

func TestController_NilPreferences(t *testing.T) {
	ctx := context.Background()
	c := New(ctx, loadStore(t), nil)
	assert.Equal(t, InitialState(), c.State())
	assert.NoError(t, c.SetLocale(ctx, i18n.LocaleEN))
}

func TestController_TransitionsDoNotTouchEntities(t *testing.T) {
	ctx := context.Background()
	st := loadStore(t)
	before := st.Snapshot()

	c := New(ctx, st, prefs.NewMemory(nil))
	for _, s := range Sections() {
		require.NoError(t, c.SelectSection(s))
		_ = c.View()
	}
	require.NoError(t, c.SetCurrency(ctx, currency.USD))
	require.NoError(t, c.OpenDialog(DialogOrder))
	_ = c.View()

	assert.Equal(t, before, st.Snapshot())
}

func TestController_DialogKindCase(t *testing.T) {
	c := New(context.Background(), loadStore(t), prefs.NewMemory(nil))

	require.NoError(t, c.OpenDialog(DialogKind("Client")))
	assert.Equal(t, []DialogKind{DialogClient}, c.State().Dialogs.Open())

	require.NoError(t, c.CloseDialog(DialogKind(" CLIENT ")))
	assert.Empty(t, c.State().Dialogs.Open())

	assert.ErrorIs(t, c.OpenDialog(DialogKind("invoice")), common.ErrUnknownDialog)
}
