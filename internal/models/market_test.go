package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewQuoteSummary(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	series := Series{
		{Date: "2026-03-02", Close: 110},
		{Date: "2026-03-01", Close: 100},
		{Date: "2026-02-28", Close: 90},
	}

	q, ok := NewQuoteSummary(series, now)
	assert.True(t, ok)
	assert.Equal(t, 110.0, q.CurrentPrice)
	assert.Equal(t, 10.0, q.PriceChange)
	assert.InDelta(t, 10.0, q.PriceChangePct, 1e-9)
	assert.Equal(t, now, q.Timestamp)
}

func TestNewQuoteSummary_TooShort(t *testing.T) {
	_, ok := NewQuoteSummary(Series{{Close: 1}}, time.Now())
	assert.False(t, ok)

	_, ok = NewQuoteSummary(nil, time.Now())
	assert.False(t, ok)
}

func TestNewQuoteSummary_ZeroPriorClose(t *testing.T) {
	q, ok := NewQuoteSummary(Series{{Close: 5}, {Close: 0}}, time.Now())
	assert.True(t, ok)
	assert.Equal(t, 5.0, q.PriceChange)
	assert.Equal(t, 0.0, q.PriceChangePct)
}

func TestSeriesClosesAndBarTime(t *testing.T) {
	s := Series{{Date: "2026-01-31", Close: 3}, {Date: "bad", Close: 2}}
	assert.Equal(t, []float64{3, 2}, s.Closes())
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), s[0].Time())
	assert.True(t, s[1].Time().IsZero())
}
