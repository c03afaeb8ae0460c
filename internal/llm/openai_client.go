package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/noctura/circadian-api/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const defaultSystemPrompt = `You are a non-medical sleep and circadian-rhythm assistant.

You receive one user's computed circadian profile: chronotype markers (wake/sleep times, nadir, melatonin window), a personalized sleep-need figure with its derivation method, a weighted sleep-debt breakdown, and a summary of today's predicted energy curve. Base every conclusion only on the provided data.

Your goals:
- Describe the user's current sleep balance in clear, neutral language.
- Connect the sleep debt to the nights that caused it.
- Explain what the chronotype and melatonin window mean for tonight's bedtime.
- Use the energy summary to suggest when to schedule demanding work and when to rest.
- Give practical, behavioral suggestions to repay debt and hold a steady schedule.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, nap timing, light exposure).
- If a section of the data is missing or low-confidence, say that explicitly.
- Be concise and concrete. Use the user's own clock times when referring to their schedule.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences on the user's current sleep balance: debt level, whether their schedule fits their chronotype, and tonight's priority.",
  "observations": [
    "3-6 bullet points grounded in the numbers: debt trend, which nights drove it, chronotype fit, energy-curve highlights.",
    "At least one item about the melatonin window or circadian markers.",
    "If confidence anywhere is low, one item saying what more data would improve."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include a target bedtime derived from the melatonin window when it is available.",
    "Include one suggestion about debt repayment when total debt exceeds two hours."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's computed circadian state.

- "chronotype" holds their median wake/sleep clock times, circadian nadir, and melatonin window (absent when history is too short).
- "sleep_need" is their personalized nightly need in hours, with the method that produced it and its confidence.
- "sleep_debt" is the exponentially weighted 14-day debt: total hours, category, payback nights, and the per-day breakdown (imputed days met the need exactly).
- "energy" summarizes today's predicted energy curve: current level and zone, next peak and dip, and the debt penalty applied.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating circadian insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// An empty systemPrompt selects the built-in default. Returns nil if
// apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateInsights calls OpenAI to generate circadian insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
