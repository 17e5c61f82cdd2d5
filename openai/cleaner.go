// Package openai implements markdown cleanup with OpenAI chat models.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/distill"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4o

// Temperature keeps cleanup close to the input.
const Temperature = 0.3

// Ensure Cleaner implements distill.Cleaner at compile time.
var _ distill.Cleaner = (*Cleaner)(nil)

// ChatClient is the subset of *openai.Client used by Cleaner.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Cleaner implements distill.Cleaner using the chat completions API.
type Cleaner struct {
	client ChatClient
	model  string
}

// NewCleaner creates a new Cleaner. An empty model selects DefaultModel.
func NewCleaner(client ChatClient, model string) *Cleaner {
	if model == "" {
		model = DefaultModel
	}
	return &Cleaner{client: client, model: model}
}

// NewClient returns a chat client for apiKey.
func NewClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}

// Clean sends markdown to the model and returns its cleaned form.
func (c *Cleaner) Clean(ctx context.Context, markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, markdown))
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return markdown, nil
	}

	cleaned := resp.Choices[0].Message.Content
	if strings.TrimSpace(cleaned) == "" {
		return markdown, nil
	}
	return cleaned, nil
}

// BuildRequest returns the chat request for one cleanup call.
func BuildRequest(model, markdown string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       model,
		Temperature: Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: distill.CleanMarkdownPrompt},
			{Role: openai.ChatMessageRoleUser, Content: distill.CleanUserPrompt(markdown)},
		},
	}
}
