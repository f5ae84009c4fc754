package analysis

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bobmcallan/tickerview/internal/models"
	"github.com/bobmcallan/tickerview/internal/signals"
)

// recentDays is how many of the newest bars are listed day by day in the prompt
const recentDays = 10

const systemInstruction = "You are a professional financial analyst with expertise in technical and fundamental analysis. Always respond with valid JSON format."

// Summary holds the statistics the prompt is built from
type Summary struct {
	Symbol    string
	Latest    float64
	Prior     float64
	Change    float64
	ChangePct float64
	SMA5      float64
	SMA20     float64
	AvgVolume float64
	Recent    models.Series
}

// Summarize derives prompt statistics from a newest-first series.
// The series must contain at least two bars.
func Summarize(symbol string, series models.Series) Summary {
	latest := series[0].Close
	prior := series[1].Close
	change := latest - prior

	var changePct float64
	if prior != 0 {
		changePct = change / prior * 100
	}

	recent := series
	if len(recent) > recentDays {
		recent = recent[:recentDays]
	}

	return Summary{
		Symbol:    symbol,
		Latest:    latest,
		Prior:     prior,
		Change:    change,
		ChangePct: changePct,
		SMA5:      signals.SMA(series, 5),
		SMA20:     signals.SMA(series, 20),
		AvgVolume: signals.AverageVolume(series),
		Recent:    recent,
	}
}

// dataBlock renders the summary as the plain-text block embedded in the prompt
func (s Summary) dataBlock() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stock Symbol: %s\n", s.Symbol)
	fmt.Fprintf(&sb, "Current Price: $%.2f\n", s.Latest)
	fmt.Fprintf(&sb, "Price Change: $%.2f (%.2f%%)\n", s.Change, s.ChangePct)
	fmt.Fprintf(&sb, "5-day SMA: $%.2f\n", s.SMA5)
	fmt.Fprintf(&sb, "20-day SMA: $%.2f\n", s.SMA20)
	fmt.Fprintf(&sb, "Average Volume: %s\n", humanize.Comma(int64(s.AvgVolume+0.5)))
	fmt.Fprintf(&sb, "\nRecent Price History (last %d days):\n", len(s.Recent))
	for i, b := range s.Recent {
		fmt.Fprintf(&sb, "Day %d: $%.2f (Vol: %s)\n", i+1, b.Close, humanize.Comma(b.Volume))
	}
	return sb.String()
}

// BuildPrompt renders the full instruction sent to the model
func BuildPrompt(s Summary) string {
	return fmt.Sprintf(`%s

As a professional financial analyst, analyze the following stock data and provide exactly %d bullish views and %d bearish views for %s.

%s
Provide your analysis as a single JSON object with exactly this shape and no other text:
{
  "bullish_views": [
    "Bullish view 1 with specific reasoning",
    "Bullish view 2 with specific reasoning",
    "Bullish view 3 with specific reasoning"
  ],
  "bearish_views": [
    "Bearish view 1 with specific reasoning",
    "Bearish view 2 with specific reasoning",
    "Bearish view 3 with specific reasoning"
  ]
}

Each array must contain exactly %d strings. Make each view specific, actionable, and based on the data provided. Include technical analysis, volume patterns, and price action insights.
`, systemInstruction, models.ViewsPerSide, models.ViewsPerSide, s.Symbol, s.dataBlock(), models.ViewsPerSide)
}
