package textgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableGenerator_FailsEveryCallWithReason(t *testing.T) {
	reason := errors.New("gemini API key cannot be empty")
	generator := NewUnavailableGenerator(reason)

	response, err := generator.Generate(context.Background(), "any prompt")

	assert.Empty(t, response)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, reason))
	assert.Contains(t, err.Error(), "text generator unavailable")
}
