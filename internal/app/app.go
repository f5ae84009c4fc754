// Package app wires configuration, clients and services into a runnable application
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/tickerview/internal/clients/gemini"
	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/interfaces"
	"github.com/bobmcallan/tickerview/internal/services/analysis"
	"github.com/bobmcallan/tickerview/internal/services/stock"
	"github.com/bobmcallan/tickerview/internal/services/synthetic"
)

// App holds all initialized services and clients.
// It is the shared core used by both the serve and analyze commands.
type App struct {
	Config          *common.Config
	Logger          *common.Logger
	TextGenerator   interfaces.TextGenerator
	SeriesGenerator interfaces.SeriesGenerator
	Analyzer        interfaces.Analyzer
	StockService    interfaces.StockService
	StartupTime     time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath picks the config file: explicit path, TICKERVIEW_CONFIG,
// tickerview.toml next to the binary, then config/tickerview.toml.
func ResolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("TICKERVIEW_CONFIG"); env != "" {
		return env
	}
	candidate := filepath.Join(getBinaryDir(), "tickerview.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return "config/tickerview.toml"
}

// NewApp loads configuration and initializes all services.
// configPath may be empty, in which case ResolveConfigPath decides.
func NewApp(configPath string) (*App, error) {
	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	return New(context.Background(), config, logger), nil
}

// New builds an App from an already-loaded config. A missing or unusable
// Gemini configuration is logged and leaves the analyzer on fallback output.
func New(ctx context.Context, config *common.Config, logger *common.Logger) *App {
	startupStart := time.Now()

	var generator interfaces.TextGenerator
	gc := config.Clients.Gemini
	if gc.HasAPIKey() {
		client, err := gemini.NewClient(ctx, gc.APIKey,
			gemini.WithLogger(logger),
			gemini.WithModel(gc.Model),
			gemini.WithBaseURL(gc.BaseURL),
			gemini.WithAPIVersion(gc.APIVersion),
			gemini.WithTimeout(gc.GetTimeout()),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - AI analysis will use fallback views")
		} else {
			generator = client
		}
	} else {
		logger.Warn().Msg("Gemini API key not configured - AI analysis will use fallback views")
	}

	seriesGenerator := synthetic.NewService(logger)
	analyzer := analysis.NewService(generator, logger)

	a := &App{
		Config:          config,
		Logger:          logger,
		TextGenerator:   generator,
		SeriesGenerator: seriesGenerator,
		Analyzer:        analyzer,
		StockService:    stock.NewService(seriesGenerator, analyzer, logger),
		StartupTime:     startupStart,
	}

	logger.Debug().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a
}
