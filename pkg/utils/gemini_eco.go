package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ecotrip/internal/models/request_models"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiEcoClient implements EcoSuggestionClient with Google's Gemini models.
type GeminiEcoClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiEcoClient(ctx context.Context, apiKey, model string, opts ...EcoClientOption) (*GeminiEcoClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: missing API key")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEcoClient{
		client:  client,
		model:   model,
		timeout: applyEcoOptions(opts).timeout,
	}, nil
}

func (c *GeminiEcoClient) SuggestAlternatives(ctx context.Context, destinationDescription string, activities []request_models.ActivityRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(BuildEcoPrompt(destinationDescription, activities)))
	if err != nil {
		return "", classifyEcoError(ctxWithTimeout, err)
	}

	return geminiText(resp)
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil ||
		resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated by Gemini", ErrEcoServiceFailed)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: Gemini returned no text parts", ErrEcoServiceFailed)
	}
	return text.String(), nil
}

func (c *GeminiEcoClient) Available() bool { return true }

func (c *GeminiEcoClient) Close() error {
	return c.client.Close()
}
