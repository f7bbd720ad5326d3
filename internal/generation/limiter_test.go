package generation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docscan/internal/generation"
	"docscan/internal/port"
	"docscan/mocks"
)

func generationRequest() port.GenerationRequest {
	return port.GenerationRequest{Prompt: "p", MaxTokens: 600, Temperature: 0.1}
}

func TestRateLimited_FirstCallPassesImmediately(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, generationRequest()).Return("done", nil)

	rl := generation.NewRateLimited(gen, 60)
	out, err := rl.Generate(context.Background(), generationRequest())

	require.NoError(t, err)
	assert.Equal(t, "done", out)
	gen.AssertExpectations(t)
}

func TestRateLimited_CancelledContext(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("done", nil).Once()

	// One request per minute: the second call would have to wait.
	rl := generation.NewRateLimited(gen, 1)
	_, err := rl.Generate(context.Background(), generationRequest())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = rl.Generate(ctx, generationRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
	gen.AssertNumberOfCalls(t, "Generate", 1)
}
