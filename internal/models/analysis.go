package models

// ViewsPerSide is the number of bullish and bearish views a live analysis must carry.
const ViewsPerSide = 3

// AnalysisResult is the commentary object returned to clients.
type AnalysisResult struct {
	BullishViews []string `json:"bullish_views"`
	BearishViews []string `json:"bearish_views"`
}

// AnalysisSource records whether commentary came from the model or a static fallback.
type AnalysisSource string

const (
	SourceLive     AnalysisSource = "live"
	SourceFallback AnalysisSource = "fallback"
)

// Analysis pairs a result with its provenance. Failure is nil for live results
// and holds the classified error otherwise.
type Analysis struct {
	Result  AnalysisResult
	Source  AnalysisSource
	Failure error
}

// StockAnalysis is the response body of the analyze endpoint.
type StockAnalysis struct {
	Symbol         string         `json:"symbol"`
	CurrentPrice   float64        `json:"current_price"`
	PriceChange    float64        `json:"price_change"`
	PriceChangePct float64        `json:"price_change_pct"`
	Analysis       AnalysisResult `json:"analysis"`
	AnalysisSource AnalysisSource `json:"analysis_source"`
	LastUpdated    string         `json:"last_updated"`
}
