package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/paystack-gateway/gateway"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var serveAddr string

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		Long: `Start the HTTP gateway.

Examples:
  PAYSTACK_SECRET_KEY=sk_test_xxx paystack-gateway serve --addr :3000
  paystack-gateway serve --config gateway.yaml`,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides PORT and http_addr")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := gateway.LoadConfig(configPath, os.Getenv)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app := gateway.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		return fmt.Errorf("starting app: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	app.Shutdown()
	return nil
}
