package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/dashboard"
	"github.com/Veraticus/logistics-pro/internal/prefs"
	"github.com/Veraticus/logistics-pro/internal/store"
)

// openPrefs opens the configured preference backend.
func (c *cli) openPrefs(ctx context.Context) (prefs.Backend, func(), error) {
	backend, err := prefs.Open(ctx, c.cfg.Preferences)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s preference store: %w", c.cfg.Preferences.Backend, err)
	}

	cleanup := func() {
		if closeErr := backend.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close preference store", common.Fields{"backend": c.cfg.Preferences.Backend})
		}
	}
	return backend, cleanup, nil
}

// openController loads the fixtures and restores the stored preferences.
func (c *cli) openController(ctx context.Context, opts ...dashboard.Option) (*dashboard.Controller, func(), error) {
	st, err := store.Load()
	if err != nil {
		return nil, nil, common.NewUserError("fixture data is invalid", err)
	}

	backend, cleanup, err := c.openPrefs(ctx)
	if err != nil {
		return nil, nil, err
	}

	return dashboard.New(ctx, st, backend, opts...), cleanup, nil
}

// section resolves a section argument, falling back to the configured one.
func (c *cli) section(arg string) (dashboard.Section, error) {
	if arg == "" {
		arg = c.cfg.Section
	}
	s, err := dashboard.ParseSection(arg)
	if err != nil {
		return s, common.NewUserError("unknown section (want one of "+sectionList()+")", err)
	}
	return s, nil
}

func sectionList() string {
	names := make([]string, 0, len(dashboard.Sections()))
	for _, s := range dashboard.Sections() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
