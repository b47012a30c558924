package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alovak/paystack-gateway/gateway"
	"github.com/alovak/paystack-gateway/internal/amount"
	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Print the effective price list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gateway.LoadConfig(configPath, os.Getenv)
			if err != nil {
				return err
			}
			catalog, err := gateway.NewCatalog(cfg.Products)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tAMOUNT\tMINOR UNITS")
			for _, p := range catalog.Products() {
				minor, err := amount.ToMinorUnits(p.Amount, 1)
				if err != nil {
					return fmt.Errorf("product %d: %w", p.ID, err)
				}
				fmt.Fprintf(tw, "%d\t%d\t%s\n", p.ID, p.Amount, minor)
			}
			return tw.Flush()
		},
	}
}
