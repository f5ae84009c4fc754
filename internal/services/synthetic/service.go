// Package synthetic generates plausible-looking daily price series for demo analysis
package synthetic

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/tickerview/internal/common"
	"github.com/bobmcallan/tickerview/internal/interfaces"
	"github.com/bobmcallan/tickerview/internal/models"
)

const (
	// SeriesLength is the number of daily bars produced per symbol
	SeriesLength = 30

	// DefaultBasePrice seeds symbols missing from the base price table
	DefaultBasePrice = 100.0

	maxDailyReturn = 0.05
	minVolume      = 1_000_000
	maxVolume      = 10_000_000
)

var basePrices = map[string]float64{
	"AAPL":  150.0,
	"MSFT":  300.0,
	"GOOGL": 2500.0,
	"TSLA":  200.0,
	"AMZN":  3000.0,
	"META":  300.0,
	"NVDA":  400.0,
	"NFLX":  400.0,
}

// BasePrice returns the seed price for symbol, case-insensitively.
func BasePrice(symbol string) float64 {
	if p, ok := basePrices[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return p
	}
	return DefaultBasePrice
}

// Service implements SeriesGenerator. Safe for concurrent use.
type Service struct {
	logger *common.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time // injectable clock for testing
}

// NewService creates a generator seeded from the runtime's random source.
func NewService(logger *common.Logger) *Service {
	return &Service{
		logger: logger,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:    time.Now,
	}
}

// Generate produces SeriesLength newest-first bars by compounding a uniform
// daily return of at most ±5% onto the symbol's base price.
func (s *Service) Generate(symbol string) models.Series {
	today := s.now()
	// Anchor at noon so calendar arithmetic is unaffected by DST transitions
	today = time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, today.Location())

	s.mu.Lock()
	defer s.mu.Unlock()

	price := BasePrice(symbol)
	series := make(models.Series, 0, SeriesLength)

	for i := 0; i < SeriesLength; i++ {
		price *= 1 + s.uniform(-maxDailyReturn, maxDailyReturn)

		closePrice := round2(price)
		high := round2(price * s.uniform(1.00, 1.03))
		low := round2(price * s.uniform(0.97, 1.00))
		openPrice := round2(price * s.uniform(0.98, 1.02))

		// Independent perturbation can invert the range; widen it to cover open and close
		high = max(high, openPrice, closePrice)
		low = min(low, openPrice, closePrice)

		series = append(series, models.Bar{
			Date:   today.AddDate(0, 0, -i).Format(models.DateLayout),
			Open:   openPrice,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: minVolume + s.rng.Int64N(maxVolume-minVolume+1),
		})
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Int("bars", len(series)).
		Float64("latest_close", series[0].Close).
		Msg("Generated synthetic series")

	return series
}

// uniform returns a value in [lo, hi). Caller must hold s.mu.
func (s *Service) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Ensure Service implements SeriesGenerator
var _ interfaces.SeriesGenerator = (*Service)(nil)
