// Package interfaces defines service contracts for tickerview
package interfaces

import (
	"context"
	"errors"
)

// ErrNoContent is returned by a TextGenerator when the upstream answered
// successfully but carried no candidate text.
var ErrNoContent = errors.New("no content generated")

// GenerationConfig holds sampling parameters for a single text generation call
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int
	MaxOutputTokens int
}

// TextGenerator produces free-form text from a prompt. Implementations wrap a
// specific model vendor; callers depend only on this contract.
type TextGenerator interface {
	// GenerateText sends prompt to the model and returns the concatenated text
	// of the first candidate. Transport failures and non-success statuses are
	// returned as errors; an empty candidate list yields ErrNoContent.
	GenerateText(ctx context.Context, prompt string, config GenerationConfig) (string, error)
}
