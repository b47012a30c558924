package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := serveCmd()

	rootCmd := &cobra.Command{
		Use:   "paystack-gateway",
		Short: "HTTP gateway in front of the Paystack API",
		Long: `paystack-gateway initializes and verifies Paystack transactions and
manages customers on behalf of a browser client, keeping the secret key
on the server.

Configuration is read from the optional --config YAML file and then from
the environment (PAYSTACK_SECRET_KEY, PORT, ...).`,
		Version:       Version,
		RunE:          serve.RunE, // serving is the default action
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().AddFlagSet(serve.Flags())

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(productsCmd())
	return rootCmd
}
