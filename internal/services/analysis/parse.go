package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bobmcallan/tickerview/internal/models"
)

// parseViews decodes model text into an AnalysisResult and enforces the
// 3+3 non-blank shape. Any violation wraps ErrMalformedResponse.
func parseViews(text string) (*models.AnalysisResult, error) {
	content := cleanJSONResponse(text)

	var parsed struct {
		BullishViews []string `json:"bullish_views"`
		BearishViews []string `json:"bearish_views"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if err := validateViews("bullish_views", parsed.BullishViews); err != nil {
		return nil, err
	}
	if err := validateViews("bearish_views", parsed.BearishViews); err != nil {
		return nil, err
	}

	return &models.AnalysisResult{
		BullishViews: parsed.BullishViews,
		BearishViews: parsed.BearishViews,
	}, nil
}

func validateViews(field string, views []string) error {
	if len(views) != models.ViewsPerSide {
		return fmt.Errorf("%w: %s has %d entries, want %d", ErrMalformedResponse, field, len(views), models.ViewsPerSide)
	}
	for i, v := range views {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s[%d] is blank", ErrMalformedResponse, field, i)
		}
	}
	return nil
}

// cleanJSONResponse strips markdown code fences and any prose around the
// outermost JSON object.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
