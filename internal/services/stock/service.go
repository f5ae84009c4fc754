// Package stock assembles the analyze response: series generation, commentary and quote deltas
package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/interfaces"
	"github.com/bobmcallan/tickerview/internal/models"
)

// ErrNoData is returned when the generator yields fewer than two bars
var ErrNoData = errors.New("unable to fetch stock data")

// Service implements StockService
type Service struct {
	generator interfaces.SeriesGenerator
	analyzer  interfaces.Analyzer
	logger    *common.Logger
	now       func() time.Time // injectable clock for testing
}

// NewService creates a new stock service
func NewService(generator interfaces.SeriesGenerator, analyzer interfaces.Analyzer, logger *common.Logger) *Service {
	return &Service{
		generator: generator,
		analyzer:  analyzer,
		logger:    logger,
		now:       time.Now,
	}
}

// AnalyzeSymbol generates a series for symbol, requests commentary and merges
// the quote deltas into one response. Upstream failures never surface here;
// only a rejected symbol (ErrInvalidSymbol) or an empty series (ErrNoData) is reported.
func (s *Service) AnalyzeSymbol(ctx context.Context, symbol string) (*models.StockAnalysis, error) {
	symbol, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	series := s.generator.Generate(symbol)

	now := s.now()
	quote, ok := models.NewQuoteSummary(series, now)
	if !ok {
		return nil, fmt.Errorf("%w: %d bars for %s", ErrNoData, len(series), symbol)
	}

	analysis := s.analyzer.Analyze(ctx, symbol, series)

	s.logger.Info().
		Str("symbol", symbol).
		Float64("current_price", quote.CurrentPrice).
		Str("analysis_source", string(analysis.Source)).
		Msg("Symbol analyzed")

	return &models.StockAnalysis{
		Symbol:         symbol,
		CurrentPrice:   quote.CurrentPrice,
		PriceChange:    quote.PriceChange,
		PriceChangePct: quote.PriceChangePct,
		Analysis:       analysis.Result,
		AnalysisSource: analysis.Source,
		LastUpdated:    now.Format(time.RFC3339),
	}, nil
}

// Ensure Service implements StockService
var _ interfaces.StockService = (*Service)(nil)
