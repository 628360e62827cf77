package main

import (
	"strings"

	"github.com/Veraticus/logistics-pro/internal/dashboard"
	"github.com/Veraticus/logistics-pro/internal/tui"
	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/spf13/cobra"
)

func dashboardCmd(c *cli) *cobra.Command {
	var (
		section string
		theme   string
	)

	cmd := &cobra.Command{
		Use:         "dashboard",
		Short:       "Open the interactive dashboard",
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sec, err := c.section(section)
			if err != nil {
				return err
			}

			ctrl, cleanup, err := c.openController(ctx, dashboard.WithSection(sec))
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(ctx, ctrl, tui.WithTheme(themes.GetTheme(theme)))
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "section shown first (default from config)")
	cmd.Flags().StringVar(&theme, "theme", "default", "color theme ("+strings.Join(themes.Names(), ", ")+")")
	return cmd
}
