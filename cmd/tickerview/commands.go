package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/tickerview/internal/app"
	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/server"
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tickerview",
		Short: "tickerview - bullish and bearish commentary for stock tickers",
		Long: `tickerview generates a synthetic 30-day price series for a ticker and asks
Gemini for three bullish and three bearish views on it. Without an API key
the service still answers with fallback commentary.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path (default: $TICKERVIEW_CONFIG or config/tickerview.toml)")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newAnalyzeCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newServeCmd creates the serve command
func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

// newAnalyzeCmd creates the analyze command
func newAnalyzeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [SYMBOL]",
		Short: "Analyze a single symbol and print the JSON result",
		Long: `Run one analysis without starting the server.
Example: tickerview analyze AAPL`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.NewApp(*configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			// Same normalization and validation as GET /api/analyze/{symbol}
			result, err := a.StockService.AnalyzeSymbol(ctx, args[0])
			if err != nil {
				return fmt.Errorf("analysis of %q failed: %w", args[0], err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tickerview %s\n", common.GetFullVersion())
		},
	}
}

// runServe starts the HTTP server and blocks until SIGINT or SIGTERM.
func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.NewApp(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	common.PrintBanner(a.Config, a.Logger)

	srv := server.NewServer(a)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			a.Logger.Error().Err(err).Msg("HTTP server failed")
			return err
		}
		return nil
	case <-sigCtx.Done():
		a.Logger.Info().Msg("Shutdown signal received")
	}

	common.PrintShutdownBanner(a.Logger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
		return err
	}

	a.Logger.Info().Msg("Server stopped")
	return nil
}
