package dashboard

import (
	"context"
	"fmt"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/currency"
	"github.com/Veraticus/logistics-pro/internal/i18n"
	"github.com/Veraticus/logistics-pro/internal/prefs"
	"github.com/Veraticus/logistics-pro/internal/store"
	"github.com/google/uuid"
)

// Config holds controller settings.
type Config struct {
	SessionID    string
	Section      Section
	RecentLimit  int
	RankingLimit int
}

// Option is a functional option for configuring the controller.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Section:      SectionDashboard,
		RecentLimit:  5,
		RankingLimit: 5,
	}
}

// WithSessionID fixes the session id attached to log records.
func WithSessionID(id string) Option {
	return func(c *Config) {
		c.SessionID = id
	}
}

// WithSection sets the section shown first.
func WithSection(s Section) Option {
	return func(c *Config) {
		c.Section = s
	}
}

// WithLimits sets how many rows recent lists and rankings show.
func WithLimits(recent, ranking int) Option {
	return func(c *Config) {
		c.RecentLimit = recent
		c.RankingLimit = ranking
	}
}

// Controller owns the UI state, applies user actions and persists the
// display preferences. It is driven by a single event loop.
type Controller struct {
	store *store.Store
	prefs prefs.Store
	cfg   Config
	state State
}

// New creates a controller and restores the stored language and currency.
// Missing or unrecognized values fall back to the defaults.
func New(ctx context.Context, st *store.Store, p prefs.Store, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	c := &Controller{store: st, prefs: p, cfg: cfg}
	state := InitialState().WithSection(cfg.Section)

	if raw, ok := c.readPreference(ctx, prefs.KeyLanguage); ok {
		if l, err := i18n.ParseLocale(raw); err == nil {
			state = state.WithLocale(l)
		} else {
			common.LogDebug("Ignoring stored language", common.Fields{"session": cfg.SessionID, "value": raw, "fallback": state.Locale})
		}
	}
	if raw, ok := c.readPreference(ctx, prefs.KeyCurrency); ok {
		if cur, err := currency.Parse(raw); err == nil {
			state = state.WithCurrency(cur)
		} else {
			common.LogDebug("Ignoring stored currency", common.Fields{"session": cfg.SessionID, "value": raw, "fallback": state.Currency})
		}
	}

	c.state = state
	common.LogDebug("Dashboard session started", common.Fields{
		"session":  cfg.SessionID,
		"locale":   state.Locale,
		"currency": state.Currency,
	})
	return c
}

func (c *Controller) readPreference(ctx context.Context, key string) (string, bool) {
	if c.prefs == nil {
		return "", false
	}
	raw, ok, err := c.prefs.Get(ctx, key)
	if err != nil {
		common.LogError(err, "Failed to read preference", common.Fields{"session": c.cfg.SessionID, "key": key})
		return "", false
	}
	if !ok {
		common.LogDebug("Preference not set", common.Fields{"session": c.cfg.SessionID, "key": key})
	}
	return raw, ok
}

func (c *Controller) persist(ctx context.Context, key, value string) error {
	if c.prefs == nil {
		return nil
	}
	if err := c.prefs.Set(ctx, key, value); err != nil {
		common.LogError(err, "Failed to save preference", common.Fields{"session": c.cfg.SessionID, "key": key, "value": value})
		return fmt.Errorf("%w: %s: %w", common.ErrPreferenceStore, key, err)
	}
	return nil
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// SessionID returns the id attached to this controller's log records.
func (c *Controller) SessionID() string {
	return c.cfg.SessionID
}

// Store returns the entity store the controller renders.
func (c *Controller) Store() *store.Store {
	return c.store
}

// SelectSection switches the visible section.
func (c *Controller) SelectSection(s Section) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownSection, s)
	}
	c.state = c.state.WithSection(s)
	return nil
}

// NextSection moves to the following section.
func (c *Controller) NextSection() { c.state = c.state.NextSection() }

// PrevSection moves to the preceding section.
func (c *Controller) PrevSection() { c.state = c.state.PrevSection() }

// SetLocale switches the display language and stores it. The state changes
// even when storing fails; the failure is logged and returned.
func (c *Controller) SetLocale(ctx context.Context, l i18n.Locale) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownLocale, l)
	}
	c.state = c.state.WithLocale(l)
	return c.persist(ctx, prefs.KeyLanguage, string(l))
}

// SetCurrency switches the display currency and stores it, with the same
// failure semantics as SetLocale.
func (c *Controller) SetCurrency(ctx context.Context, cur currency.Currency) error {
	if !cur.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownCurrency, cur)
	}
	c.state = c.state.WithCurrency(cur)
	return c.persist(ctx, prefs.KeyCurrency, string(cur))
}

// CycleLocale selects the next language.
func (c *Controller) CycleLocale(ctx context.Context) error {
	return c.SetLocale(ctx, c.state.NextLocale())
}

// CycleCurrency selects the next currency.
func (c *Controller) CycleCurrency(ctx context.Context) error {
	return c.SetCurrency(ctx, c.state.NextCurrency())
}

// OpenDialog opens dialog k. Other dialogs are unaffected.
func (c *Controller) OpenDialog(k DialogKind) error {
	return c.setDialog(k, true)
}

// CloseDialog closes dialog k.
func (c *Controller) CloseDialog(k DialogKind) error {
	return c.setDialog(k, false)
}

func (c *Controller) setDialog(k DialogKind, open bool) error {
	kind, err := ParseDialogKind(string(k))
	if err != nil {
		return err
	}
	c.state = c.state.WithDialog(kind, open)
	return nil
}
