package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/distill"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Cleaner implements distill.Cleaner at compile time.
var _ distill.Cleaner = (*Cleaner)(nil)

// Cleaner implements distill.Cleaner using Google Gemini.
type Cleaner struct {
	client *genai.Client
	model  string
}

// NewCleaner creates a new Cleaner. An empty model selects DefaultModel.
func NewCleaner(client *genai.Client, model string) *Cleaner {
	if model == "" {
		model = DefaultModel
	}
	return &Cleaner{client: client, model: model}
}

// Clean asks the model to strip residual noise from markdown.
func (c *Cleaner) Clean(ctx context.Context, markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(markdown)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if result == nil {
		return "", distill.Errorf(distill.EINTERNAL, "gemini returned nil result")
	}

	cleaned := result.Text()
	if strings.TrimSpace(cleaned) == "" {
		return markdown, nil
	}
	return cleaned, nil
}

// BuildConfig returns the GenerateContentConfig for cleanup calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: distill.CleanMarkdownPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user message carrying the markdown.
func BuildUserPrompt(markdown string) string {
	return distill.CleanUserPrompt(markdown)
}
