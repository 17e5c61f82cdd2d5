package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_Clean_EmptyInputSkipsModel(t *testing.T) {
	t.Parallel()

	cleaner := gemini.NewCleaner(nil, "") // nil client ok, no call is made

	got, err := cleaner.Clean(context.Background(), "  \n")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, distill.CleanMarkdownPrompt, config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.3, *config.Temperature, 0.001)
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("# Title")

	assert.Equal(t, "Clean this markdown:\n\n# Title", prompt)
	assert.NotContains(t, prompt, "You are a helpful assistant")
}
