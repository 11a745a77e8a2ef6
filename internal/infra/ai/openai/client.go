package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/citizenconnect/internal/domain/analysis"
	"github.com/bryanwahyu/citizenconnect/internal/domain/projects"
	"github.com/bryanwahyu/citizenconnect/internal/infra/ai/prompt"
)

const maxTokens = 2048

// Client implements the analysis.Gateway port on top of the OpenAI API.
type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

// Vet runs a single-shot audit request. One attempt, no retry; any failure
// is wrapped so the application layer can collapse it into "no report".
func (c *Client) Vet(ctx context.Context, p *projects.Project) (*analysis.Result, error) {
	raw, err := c.complete(ctx, prompt.VetSystemPrompt(), prompt.VetUserPrompt(p))
	if err != nil {
		return nil, err
	}
	res, err := prompt.ParseVetResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrUnavailable, err)
	}
	return res, nil
}

// Crawl runs a single-shot lead-discovery request for a location.
func (c *Client) Crawl(ctx context.Context, location string) ([]projects.CrawledSummary, error) {
	raw, err := c.complete(ctx, prompt.CrawlSystemPrompt(), prompt.CrawlUserPrompt(location))
	if err != nil {
		return nil, err
	}
	summaries, err := prompt.ParseCrawlResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrUnavailable, err)
	}
	return summaries, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %v", analysis.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("%w: %v", analysis.ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", analysis.ErrUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
