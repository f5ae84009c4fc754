package analysis

import (
	"errors"

	"github.com/bobmcallan/tickerview/internal/models"
)

// Failure kinds. Every error produced by this package wraps exactly one of these.
var (
	// ErrUpstreamUnavailable covers transport failures, timeouts, non-success
	// statuses and a missing text generator.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse is a successful upstream call whose text is not the
	// expected 3+3 views object.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrInsufficientData is a series too short to summarise.
	ErrInsufficientData = errors.New("insufficient data")
)

const (
	insufficientDataView = "Insufficient data for analysis"
	unavailableView      = "AI analysis temporarily unavailable"
)

// FailureKind returns a short label for the failure wrapped by err
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "upstream_unavailable"
	}
}

// fallbackFor maps a classified failure to its static payload. Unclassified
// errors are treated as upstream unavailability.
func fallbackFor(err error) models.AnalysisResult {
	switch {
	case errors.Is(err, ErrInsufficientData):
		return models.AnalysisResult{
			BullishViews: []string{insufficientDataView},
			BearishViews: []string{insufficientDataView},
		}
	case errors.Is(err, ErrMalformedResponse):
		return models.AnalysisResult{
			BullishViews: []string{
				"Strong upward momentum based on recent price action",
				"Volume patterns suggest institutional interest",
				"Technical indicators show bullish divergence",
			},
			BearishViews: []string{
				"Potential resistance at current price levels",
				"Volume decline indicates weakening momentum",
				"Technical indicators show overbought conditions",
			},
		}
	default:
		return models.AnalysisResult{
			BullishViews: repeat(unavailableView, models.ViewsPerSide),
			BearishViews: repeat(unavailableView, models.ViewsPerSide),
		}
	}
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
