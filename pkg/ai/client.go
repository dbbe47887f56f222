// Package ai wraps the external text-analysis service. The rest of the app
// treats it as an opaque, possibly-unavailable collaborator: a failed call
// leaves the entry unanalyzed and nothing downstream retries.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"tableflip.dev/noesis/pkg/entry"
)

// Analyzer is the collaborator contract the runners depend on.
type Analyzer interface {
	AnalyzeEntry(ctx context.Context, text string) (*entry.Analysis, error)
	AnalyzeDailyLog(ctx context.Context, texts []string) (*entry.DailyLogAnalysis, error)
}

// Client talks to an OpenAI-compatible endpoint in JSON mode.
type Client struct {
	model llms.Model
}

// New builds a client for the configured endpoint. The endpoint must speak
// the OpenAI chat API; Gemini's compatibility surface works.
func New(apiKey, endpoint, model string) (*Client, error) {
	m, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(endpoint),
		openai.WithModel(model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("ai: create client: %w", err)
	}
	return &Client{model: m}, nil
}

// AnalyzeEntry analyzes a single journal entry.
func (c *Client) AnalyzeEntry(ctx context.Context, text string) (*entry.Analysis, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, c.model, entryPrompt(text),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return nil, fmt.Errorf("ai: analyze entry: %w", err)
	}

	var payload entryPayload
	if err := json.Unmarshal([]byte(stripFence(resp)), &payload); err != nil {
		return nil, fmt.Errorf("ai: decode entry analysis: %w", err)
	}
	return coerceEntry(payload), nil
}

// AnalyzeDailyLog analyzes all of one day's entries together.
func (c *Client) AnalyzeDailyLog(ctx context.Context, texts []string) (*entry.DailyLogAnalysis, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	resp, err := llms.GenerateFromSinglePrompt(ctx, c.model, dailyLogPrompt(texts),
		llms.WithTemperature(0.65),
	)
	if err != nil {
		return nil, fmt.Errorf("ai: analyze daily log: %w", err)
	}

	var payload dailyPayload
	if err := json.Unmarshal([]byte(stripFence(resp)), &payload); err != nil {
		return nil, fmt.Errorf("ai: decode daily analysis: %w", err)
	}
	return coerceDaily(payload), nil
}
