package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"ecotrip/internal/models/request_models"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIEcoClient implements EcoSuggestionClient with the OpenAI chat API.
type OpenAIEcoClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIEcoClient(apiKey, model string, opts ...EcoClientOption) (*OpenAIEcoClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai: missing API key")
	}
	return NewOpenAIEcoClientWithConfig(openai.DefaultConfig(apiKey), model, opts...), nil
}

// NewOpenAIEcoClientWithConfig allows pointing the client at a compatible endpoint.
func NewOpenAIEcoClientWithConfig(cfg openai.ClientConfig, model string, opts ...EcoClientOption) *OpenAIEcoClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIEcoClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: applyEcoOptions(opts).timeout,
	}
}

func (c *OpenAIEcoClient) SuggestAlternatives(ctx context.Context, destinationDescription string, activities []request_models.ActivityRequest) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildEcoPrompt(destinationDescription, activities)},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", classifyEcoError(ctxWithTimeout, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned by OpenAI", ErrEcoServiceFailed)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIEcoClient) Available() bool { return true }

func (c *OpenAIEcoClient) Close() error { return nil }
