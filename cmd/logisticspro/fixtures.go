package main

import (
	"fmt"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/store"
	"github.com/spf13/cobra"
)

func fixturesCmd(_ *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Validate the embedded data set and print collection sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Load()
			if err != nil {
				return common.NewUserError("fixture data is invalid", err)
			}

			out := cmd.OutOrStdout()
			for _, row := range []struct {
				name  string
				count int
			}{
				{"clients", len(st.Clients())},
				{"suppliers", len(st.Suppliers())},
				{"products", len(st.Products())},
				{"orders", len(st.Orders())},
				{"payments", len(st.Payments())},
				{"months", len(st.MonthlyMetrics())},
				{"service shares", len(st.ServiceShares())},
			} {
				fmt.Fprintf(out, "%-15s %d\n", row.name, row.count)
			}
			return nil
		},
	}
}
