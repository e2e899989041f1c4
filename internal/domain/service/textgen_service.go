package service

import (
	"context"
)

// TextGenerator wraps the hosted LLM used by the assistant endpoints.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
