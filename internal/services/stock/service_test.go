package stock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/models"
	"github.com/bobmcallan/tickerview/internal/services/analysis"
	testcommon "github.com/bobmcallan/tickerview/test/common"
)

type fixedGenerator struct {
	series models.Series
	calls  []string
}

func (g *fixedGenerator) Generate(symbol string) models.Series {
	g.calls = append(g.calls, symbol)
	return g.series
}

func twoBars() models.Series {
	return models.Series{
		{Date: "2026-03-02", Open: 151, High: 153, Low: 150, Close: 152.5, Volume: 2_000_000},
		{Date: "2026-03-01", Open: 149, High: 151, Low: 148, Close: 150.0, Volume: 3_000_000},
	}
}

func TestAnalyzeSymbol_MergesQuoteAndAnalysis(t *testing.T) {
	gen := &fixedGenerator{series: twoBars()}
	views := testcommon.SampleViews()
	analyzer := analysis.NewService(testcommon.NewMockTextGenerator(testcommon.ViewsJSON(views)), common.NewSilentLogger())

	svc := NewService(gen, analyzer, common.NewSilentLogger())
	fixed := time.Date(2026, time.March, 2, 15, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got, err := svc.AnalyzeSymbol(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", got.Symbol)
	assert.Equal(t, 152.5, got.CurrentPrice)
	assert.Equal(t, 152.5-150.0, got.PriceChange)
	assert.InDelta(t, 2.5/150.0*100, got.PriceChangePct, 1e-9)
	assert.Equal(t, views, got.Analysis)
	assert.Equal(t, models.SourceLive, got.AnalysisSource)
	assert.Equal(t, "2026-03-02T15:04:05Z", got.LastUpdated)
	assert.Equal(t, []string{"AAPL"}, gen.calls)
}

func TestAnalyzeSymbol_EmptySeriesIsNoData(t *testing.T) {
	gen := &fixedGenerator{}
	svc := NewService(gen, analysis.NewService(nil, common.NewSilentLogger()), common.NewSilentLogger())

	_, err := svc.AnalyzeSymbol(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAnalyzeSymbol_FallbackIsFlagged(t *testing.T) {
	gen := &fixedGenerator{series: twoBars()}
	svc := NewService(gen, analysis.NewService(nil, common.NewSilentLogger()), common.NewSilentLogger())

	got, err := svc.AnalyzeSymbol(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, got.AnalysisSource)
	assert.Len(t, got.Analysis.BullishViews, 3)
}

func TestAnalyzeSymbol_NormalizesSymbol(t *testing.T) {
	gen := &fixedGenerator{series: twoBars()}
	svc := NewService(gen, analysis.NewService(nil, common.NewSilentLogger()), common.NewSilentLogger())

	got, err := svc.AnalyzeSymbol(context.Background(), "  brk b ")
	require.NoError(t, err)
	assert.Equal(t, "BRK B", got.Symbol)
	assert.Equal(t, []string{"BRK B"}, gen.calls)
}

func TestAnalyzeSymbol_RejectsInvalidSymbol(t *testing.T) {
	gen := &fixedGenerator{series: twoBars()}
	svc := NewService(gen, analysis.NewService(nil, common.NewSilentLogger()), common.NewSilentLogger())

	for _, raw := range []string{"", "  ", "AA\x00PL"} {
		_, err := svc.AnalyzeSymbol(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidSymbol, "%q", raw)
	}
	assert.Empty(t, gen.calls, "generator must not run for a rejected symbol")
}
