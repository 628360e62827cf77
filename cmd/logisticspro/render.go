package main

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/currency"
	"github.com/Veraticus/logistics-pro/internal/i18n"
	"github.com/Veraticus/logistics-pro/internal/tui"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func renderCmd(c *cli) *cobra.Command {
	var (
		locale string
		cur    string
		format string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "render [section]",
		Short: "Print one dashboard section",
		Long: `Render prints a section the way the dashboard shows it, or its view model as JSON.

Language and currency default to the stored preferences; flags override them
for this run only and are not saved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			sec, err := c.section(arg)
			if err != nil {
				return err
			}

			if format != formatText && format != formatJSON {
				return common.NewUserError(fmt.Sprintf("unknown format %q (want text or json)", format), nil)
			}

			ctrl, cleanup, err := c.openController(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := ctrl.State().WithSection(sec)
			if locale != "" {
				l, err := i18n.ParseLocale(locale)
				if err != nil {
					return common.NewUserError("unsupported language", err)
				}
				state = state.WithLocale(l)
			}
			if cur != "" {
				code, err := currency.Parse(cur)
				if err != nil {
					return common.NewUserError("unsupported currency", err)
				}
				state = state.WithCurrency(code)
			}

			page := ctrl.Preview(state)
			out := cmd.OutOrStdout()

			if format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(page); err != nil {
					return fmt.Errorf("failed to encode view model: %w", err)
				}
				return nil
			}

			_, err = fmt.Fprintln(out, tui.Frame(page, tui.WithSize(width, 40)))
			return err
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "display language (ru, en, zh)")
	cmd.Flags().StringVar(&cur, "currency", "", "display currency (RUB, USD, CNY)")
	cmd.Flags().StringVar(&format, "format", formatText, "output format (text, json)")
	cmd.Flags().IntVar(&width, "width", 120, "layout width for text output")
	return cmd
}
