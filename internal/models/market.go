// Package models defines data structures for tickerview
package models

import (
	"time"
)

// DateLayout is the calendar-date format used for Bar.Date
const DateLayout = "2006-01-02"

// Bar is one synthetic trading day. Monetary fields carry two decimal places.
type Bar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Series is an ordered run of daily bars for one symbol, index 0 = most recent.
type Series []Bar

// Closes returns the closing prices in series order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Time parses the bar date. Returns the zero time for a malformed date.
func (b Bar) Time() time.Time {
	t, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// QuoteSummary is the price delta of the most recent bar against the prior one.
type QuoteSummary struct {
	CurrentPrice   float64   `json:"current_price"`
	PriceChange    float64   `json:"price_change"`
	PriceChangePct float64   `json:"price_change_pct"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewQuoteSummary derives the quote from the two most recent bars.
// ok is false when the series has fewer than two bars.
func NewQuoteSummary(series Series, now time.Time) (summary QuoteSummary, ok bool) {
	if len(series) < 2 {
		return QuoteSummary{}, false
	}
	latest := series[0].Close
	prior := series[1].Close
	change := latest - prior

	summary = QuoteSummary{
		CurrentPrice: latest,
		PriceChange:  change,
		Timestamp:    now,
	}
	if prior != 0 {
		summary.PriceChangePct = change / prior * 100
	}
	return summary, true
}
