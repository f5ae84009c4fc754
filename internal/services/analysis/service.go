// Package analysis turns a price series into bullish/bearish commentary via a text-generation model
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/interfaces"
	"github.com/bobmcallan/tickerview/internal/models"
)

// DefaultGenerationConfig is the sampling configuration used for every analysis call
var DefaultGenerationConfig = interfaces.GenerationConfig{
	Temperature:     0.7,
	TopP:            0.8,
	TopK:            10,
	MaxOutputTokens: 800,
}

// Service implements Analyzer
type Service struct {
	generator interfaces.TextGenerator
	config    interfaces.GenerationConfig
	logger    *common.Logger
}

// NewService creates a new analysis service.
// generator may be nil when no upstream is configured; every analysis then
// resolves to the unavailable fallback.
func NewService(generator interfaces.TextGenerator, logger *common.Logger) *Service {
	return &Service{
		generator: generator,
		config:    DefaultGenerationConfig,
		logger:    logger,
	}
}

// Analyze produces commentary for series. It never returns an error: failures
// are logged and replaced with the fallback matching their kind.
func (s *Service) Analyze(ctx context.Context, symbol string, series models.Series) *models.Analysis {
	if len(series) < 2 {
		return s.fallback(symbol, fmt.Errorf("%w: series has %d bars, need at least 2", ErrInsufficientData, len(series)))
	}

	prompt := BuildPrompt(Summarize(symbol, series))

	result, err := s.requestViews(ctx, prompt)
	if err != nil {
		return s.fallback(symbol, err)
	}

	s.logger.Debug().Str("symbol", symbol).Msg("Live analysis generated")

	return &models.Analysis{
		Result: *result,
		Source: models.SourceLive,
	}
}

// requestViews performs the remote call and parse. The returned error always
// wraps one of the package failure kinds.
func (s *Service) requestViews(ctx context.Context, prompt string) (*models.AnalysisResult, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("%w: no text generator configured", ErrUpstreamUnavailable)
	}

	text, err := s.generator.GenerateText(ctx, prompt, s.config)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoContent) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return parseViews(text)
}

func (s *Service) fallback(symbol string, err error) *models.Analysis {
	s.logger.Warn().
		Err(err).
		Str("symbol", symbol).
		Str("failure", FailureKind(err)).
		Msg("Analysis fell back to static views")

	return &models.Analysis{
		Result:  fallbackFor(err),
		Source:  models.SourceFallback,
		Failure: err,
	}
}

// Ensure Service implements Analyzer
var _ interfaces.Analyzer = (*Service)(nil)
