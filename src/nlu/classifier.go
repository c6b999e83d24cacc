package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finchat-server/src/config"
	"finchat-server/src/models"
)

// Classification runs against FinBERT tone, which labels financial text
// positive/negative/neutral. The inference API is deterministic for a fixed
// model revision, so identical text yields identical label and score.
const defaultModelURL = "https://api-inference.huggingface.co/models/yiyanghkust/finbert-tone"

// Classifier calls a hosted text-classification model.
type Classifier struct {
	apiToken string
	modelURL string
	client   *http.Client
}

func NewClassifier(cfg config.Config) *Classifier {
	return &Classifier{
		apiToken: cfg.HFAPIToken,
		modelURL: defaultModelURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type classifierRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify returns the top label with its confidence plus extracted
// financial keywords. Labels are lowercased at this boundary.
func (c *Classifier) Classify(ctx context.Context, text string) (models.SentimentAnalysis, error) {
	body, err := json.Marshal(classifierRequest{Inputs: text})
	if err != nil {
		return models.SentimentAnalysis{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewBuffer(body))
	if err != nil {
		return models.SentimentAnalysis{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.SentimentAnalysis{}, fmt.Errorf("classification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return models.SentimentAnalysis{}, fmt.Errorf("classification returned status %d: %s", resp.StatusCode, respBody)
	}

	// The inference API wraps the scores in an outer single-element array.
	var results [][]labelScore
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.SentimentAnalysis{}, fmt.Errorf("failed to decode classification response: %w", err)
	}
	if len(results) == 0 || len(results[0]) == 0 {
		return models.SentimentAnalysis{}, fmt.Errorf("empty classification response")
	}

	top := results[0][0]
	for _, ls := range results[0][1:] {
		if ls.Score > top.Score {
			top = ls
		}
	}

	return models.SentimentAnalysis{
		Label:      strings.ToLower(top.Label),
		Confidence: clamp01(top.Score),
		Keywords:   ExtractFinancialTerms(text),
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
