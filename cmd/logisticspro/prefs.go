package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/currency"
	"github.com/Veraticus/logistics-pro/internal/i18n"
	"github.com/Veraticus/logistics-pro/internal/prefs"
	"github.com/Veraticus/logistics-pro/internal/storage"
	"github.com/spf13/cobra"
)

// historian is implemented by backends that record preference changes.
type historian interface {
	History(ctx context.Context, key string, limit int) ([]storage.HistoryEntry, error)
}

func prefsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect or change the stored language and currency",
	}

	cmd.AddCommand(prefsGetCmd(c))
	cmd.AddCommand(prefsSetCmd(c))
	cmd.AddCommand(prefsResetCmd(c))
	cmd.AddCommand(prefsHistoryCmd(c))
	return cmd
}

func prefsGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print stored preferences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			keys := prefs.Keys()
			if len(args) == 1 {
				if err := checkKey(args[0]); err != nil {
					return err
				}
				keys = []string{args[0]}
			}

			backend, cleanup, err := c.openPrefs(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, k := range keys {
				value, ok, err := backend.Get(ctx, k)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", k, err)
				}
				if !ok {
					value = "(unset)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, value)
			}
			return nil
		},
	}
}

func prefsSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a preference",
		Long: `Set stores a validated preference.

  language  ru, en or zh
  currency  RUB, USD or CNY`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			value, err := normalize(args[0], args[1])
			if err != nil {
				return err
			}

			backend, cleanup, err := c.openPrefs(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := backend.Set(ctx, args[0], value); err != nil {
				return fmt.Errorf("%w: %s: %w", common.ErrPreferenceStore, args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], value)
			return nil
		},
	}
}

func prefsResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete stored preferences so the defaults apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			backend, cleanup, err := c.openPrefs(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := prefs.Reset(ctx, backend); err != nil {
				return fmt.Errorf("%w: %w", common.ErrPreferenceStore, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences reset")
			return nil
		},
	}
}

func prefsHistoryCmd(c *cli) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [key]",
		Short: "List recorded preference changes (sqlite backend)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			keys := prefs.Keys()
			if len(args) == 1 {
				if err := checkKey(args[0]); err != nil {
					return err
				}
				keys = []string{args[0]}
			}

			backend, cleanup, err := c.openPrefs(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, ok := backend.(historian)
			if !ok {
				return common.NewUserError(fmt.Sprintf("the %s backend keeps no history; use --prefs-backend sqlite", c.cfg.Preferences.Backend), nil)
			}

			for _, k := range keys {
				entries, err := h.History(ctx, k, limit)
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s  %s\n", e.ChangedAt.Format(time.RFC3339), e.Key, e.Value)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries per key")
	return cmd
}

func checkKey(key string) error {
	for _, k := range prefs.Keys() {
		if k == key {
			return nil
		}
	}
	return common.NewUserError(fmt.Sprintf("unknown preference %q (want language or currency)", key), common.ErrNotFound)
}

// normalize validates value for key and returns its canonical spelling.
func normalize(key, value string) (string, error) {
	switch key {
	case prefs.KeyLanguage:
		l, err := i18n.ParseLocale(value)
		if err != nil {
			return "", common.NewUserError("unsupported language", err)
		}
		return string(l), nil
	case prefs.KeyCurrency:
		cur, err := currency.Parse(value)
		if err != nil {
			return "", common.NewUserError("unsupported currency", err)
		}
		return string(cur), nil
	default:
		return "", checkKey(key)
	}
}
