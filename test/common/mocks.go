// Package common provides shared test infrastructure
package common

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/bobmcallan/tickerview/internal/interfaces"
	"github.com/bobmcallan/tickerview/internal/models"
)

// MockTextGenerator implements TextGenerator for testing
type MockTextGenerator struct {
	Text string
	Err  error

	mu         sync.Mutex
	Calls      int
	LastPrompt string
	LastConfig interfaces.GenerationConfig
}

// NewMockTextGenerator creates a mock that answers every call with text
func NewMockTextGenerator(text string) *MockTextGenerator {
	return &MockTextGenerator{Text: text}
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string, config interfaces.GenerationConfig) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastPrompt = prompt
	m.LastConfig = config
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// ViewsJSON renders an AnalysisResult the way a well-behaved model would
func ViewsJSON(result models.AnalysisResult) string {
	b, _ := json.Marshal(result)
	return string(b)
}

// SampleViews returns a valid 3+3 analysis result
func SampleViews() models.AnalysisResult {
	return models.AnalysisResult{
		BullishViews: []string{
			"Price holds above the 20-day SMA",
			"Volume expanded on up days",
			"Higher lows across the last week",
		},
		BearishViews: []string{
			"5-day SMA is flattening",
			"Latest session closed lower on heavy volume",
			"Price is near the top of the recent range",
		},
	}
}

// GeminiServer is a fake generateContent endpoint
type GeminiServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests int
}

// NewGeminiServer starts a fake Gemini endpoint. A 200 status answers with a
// single candidate carrying text; any other status answers with an API error body.
func NewGeminiServer(status int, text string) *GeminiServer {
	gs := &GeminiServer{}
	gs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gs.mu.Lock()
		gs.requests++
		gs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{
					"code":    status,
					"message": http.StatusText(status),
					"status":  "UNAVAILABLE",
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []interface{}{
				map[string]interface{}{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []interface{}{map[string]string{"text": text}},
					},
				},
			},
		})
	}))
	return gs
}

// BaseURL returns the root URL to configure a Gemini client with
func (gs *GeminiServer) BaseURL() string {
	return gs.URL + "/"
}

// Requests returns the number of requests received
func (gs *GeminiServer) Requests() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.requests
}
