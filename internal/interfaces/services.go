package interfaces

import (
	"context"

	"github.com/bobmcallan/tickerview/internal/models"
)

// SeriesGenerator produces synthetic daily bars for a symbol
type SeriesGenerator interface {
	// Generate returns a newest-first series. It performs no I/O and cannot fail.
	Generate(symbol string) models.Series
}

// Analyzer turns a series into bullish/bearish commentary
type Analyzer interface {
	// Analyze never fails; every failure resolves to a fallback result
	// with Source set to models.SourceFallback.
	Analyze(ctx context.Context, symbol string, series models.Series) *models.Analysis
}

// StockService produces the full analyze response for a symbol
type StockService interface {
	AnalyzeSymbol(ctx context.Context, symbol string) (*models.StockAnalysis, error)
}
