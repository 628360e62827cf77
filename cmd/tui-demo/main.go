// Package main runs the dashboard against the embedded fixtures with
// preferences kept in memory, so nothing on disk is touched.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/logistics-pro/internal/dashboard"
	"github.com/Veraticus/logistics-pro/internal/prefs"
	"github.com/Veraticus/logistics-pro/internal/store"
	"github.com/Veraticus/logistics-pro/internal/tui"
	"github.com/Veraticus/logistics-pro/internal/tui/themes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	st, err := store.Load()
	if err != nil {
		return err
	}

	mem := prefs.NewMemory(map[string]string{
		prefs.KeyLanguage: "en",
		prefs.KeyCurrency: "USD",
	})
	ctrl := dashboard.New(ctx, st, mem)

	return tui.Run(ctx, ctrl, tui.WithTheme(themes.CatppuccinMocha))
}
