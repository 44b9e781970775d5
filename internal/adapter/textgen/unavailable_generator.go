package textgen

import (
	"context"
	"fmt"
)

// UnavailableGenerator stands in for the provider when no client could be
// constructed, typically because the API key is missing. Each call fails with
// the construction error, so the process starts and only the operations that
// need the model report the failure.
type UnavailableGenerator struct {
	reason error
}

// NewUnavailableGenerator creates a generator that fails every call with reason.
func NewUnavailableGenerator(reason error) *UnavailableGenerator {
	return &UnavailableGenerator{reason: reason}
}

func (g *UnavailableGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("text generator unavailable: %w", g.reason)
}
