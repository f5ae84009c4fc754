package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/tickerview/internal/models"
)

func TestSummarize(t *testing.T) {
	series := sampleSeries(30)
	s := Summarize("MSFT", series)

	assert.Equal(t, "MSFT", s.Symbol)
	assert.Equal(t, 100.0, s.Latest)
	assert.Equal(t, 101.0, s.Prior)
	assert.InDelta(t, -1.0, s.Change, 1e-9)
	assert.InDelta(t, -1.0/101.0*100, s.ChangePct, 1e-9)
	// closes are 100..129, newest first
	assert.InDelta(t, 102.0, s.SMA5, 1e-9)
	assert.InDelta(t, 109.5, s.SMA20, 1e-9)
	// volumes cycle 1..5 million, six full cycles
	assert.InDelta(t, 3_000_000.0, s.AvgVolume, 1e-6)
	assert.Len(t, s.Recent, 10)
}

func TestSummarize_ShortSeries(t *testing.T) {
	s := Summarize("X", sampleSeries(3))
	assert.Len(t, s.Recent, 3)
	assert.InDelta(t, 101.0, s.SMA5, 1e-9)
	assert.InDelta(t, 101.0, s.SMA20, 1e-9)
}

func TestSummarize_ZeroPrior(t *testing.T) {
	series := models.Series{{Close: 5, Volume: 1}, {Close: 0, Volume: 1}}
	s := Summarize("X", series)
	assert.Equal(t, 0.0, s.ChangePct)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Summarize("NVDA", sampleSeries(30)))

	for _, want := range []string{
		"professional financial analyst",
		"exactly 3 bullish views and 3 bearish views for NVDA",
		"Stock Symbol: NVDA",
		"Current Price: $100.00",
		"Price Change: $-1.00 (-0.99%)",
		"5-day SMA: $102.00",
		"20-day SMA: $109.50",
		"Average Volume: 3,000,000",
		"Recent Price History (last 10 days):",
		"Day 1: $100.00 (Vol: 1,000,000)",
		"Day 10: $109.00 (Vol: 5,000,000)",
		`"bullish_views"`,
		`"bearish_views"`,
		"technical analysis, volume patterns, and price action",
	} {
		assert.Contains(t, prompt, want)
	}
	assert.NotContains(t, prompt, "Day 11:")
}

func TestBuildPrompt_StartsWithSystemInstruction(t *testing.T) {
	prompt := BuildPrompt(Summarize("AAPL", sampleSeries(30)))
	require.True(t, strings.HasPrefix(prompt, systemInstruction))
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"bullish_views":[]}`,
			want:  `{"bullish_views":[]}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"bullish_views\":[]}\n```",
			want:  `{"bullish_views":[]}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"bullish_views\":[]}\n```",
			want:  `{"bullish_views":[]}`,
		},
		{
			name:  "drops surrounding prose",
			input: "Here you go: {\"bullish_views\":[]} Hope this helps",
			want:  `{"bullish_views":[]}`,
		},
		{
			name:  "no braces left alone",
			input: "  not json  ",
			want:  "not json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.input))
		})
	}
}
