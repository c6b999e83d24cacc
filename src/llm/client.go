package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finchat-server/src/config"
	"finchat-server/src/models"
)

const defaultModelID = "ibm/granite-3b-instruct"

// Fallback responses returned when no generation credential is configured.
// These are part of the API contract: clients get HTTP 200 with these exact
// strings, never an error, so the service runs without live credentials.
const (
	FallbackAdvice           = "Mock response: Consider setting aside 20% of your income for savings."
	FallbackBudgetSummary    = "Mock budget summary response"
	FallbackSpendingInsights = "Mock spending insights response"
)

// GenerateOptions are the decoding parameters sent with a generation call.
type GenerateOptions struct {
	DecodingMethod string  `json:"decoding_method"`
	MaxNewTokens   int     `json:"max_new_tokens"`
	MinNewTokens   int     `json:"min_new_tokens"`
	Temperature    float64 `json:"temperature"`
}

// DefaultOptions matches the parameters used for advice generation.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{
		DecodingMethod: "greedy",
		MaxNewTokens:   300,
		MinNewTokens:   50,
		Temperature:    0.7,
	}
}

// Client calls the watsonx.ai text-generation endpoint.
type Client struct {
	apiKey    string
	projectID string
	baseURL   string
	modelID   string
	enabled   bool
	client    *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		apiKey:    cfg.WatsonxAPIKey,
		projectID: cfg.WatsonxProjectID,
		baseURL:   cfg.WatsonxURL,
		modelID:   defaultModelID,
		enabled:   cfg.GenerationEnabled,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type generationRequest struct {
	ModelID    string          `json:"model_id"`
	Input      string          `json:"input"`
	ProjectID  string          `json:"project_id"`
	Parameters GenerateOptions `json:"parameters"`
}

type generationResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
}

func (c *Client) generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	body, err := json.Marshal(generationRequest{
		ModelID:    c.modelID,
		Input:      prompt,
		ProjectID:  c.projectID,
		Parameters: opts,
	})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/ml/v1/text/generation?version=2024-05-01"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("text generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("text generation returned status %d: %s", resp.StatusCode, respBody)
	}

	var genResp generationResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(genResp.Results) == 0 {
		return "", fmt.Errorf("no text generated")
	}
	return genResp.Results[0].GeneratedText, nil
}

// GenerateFinancialAdvice answers a persona-framed question. Without a
// configured credential it returns FallbackAdvice.
func (c *Client) GenerateFinancialAdvice(ctx context.Context, question, persona string) (string, error) {
	if !c.enabled {
		return FallbackAdvice, nil
	}
	return c.generate(ctx, buildAdvicePrompt(question, persona), DefaultOptions())
}

// GenerateBudgetSummary summarizes a budget profile. Without a configured
// credential it returns FallbackBudgetSummary.
func (c *Client) GenerateBudgetSummary(ctx context.Context, req models.BudgetSummaryRequest) (string, error) {
	if !c.enabled {
		return FallbackBudgetSummary, nil
	}
	return c.generate(ctx, buildBudgetSummaryPrompt(req), DefaultOptions())
}

// GenerateSpendingInsights analyzes spending against a goal list. Without a
// configured credential it returns FallbackSpendingInsights.
func (c *Client) GenerateSpendingInsights(ctx context.Context, req models.SpendingInsightsRequest) (string, error) {
	if !c.enabled {
		return FallbackSpendingInsights, nil
	}
	return c.generate(ctx, buildSpendingInsightsPrompt(req), DefaultOptions())
}
