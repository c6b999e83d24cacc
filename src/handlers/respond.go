package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"finchat-server/src/models"
)

// upstreamTimeout bounds every outbound model call; a timeout surfaces to the
// client as an upstream failure.
const upstreamTimeout = 30 * time.Second

// Classifier is the sentiment model boundary consumed by POST /nlu.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.SentimentAnalysis, error)
}

// AdviceGenerator is the text-generation boundary consumed by the generate,
// budget-summary and spending-insights endpoints.
type AdviceGenerator interface {
	GenerateFinancialAdvice(ctx context.Context, question, persona string) (string, error)
	GenerateBudgetSummary(ctx context.Context, req models.BudgetSummaryRequest) (string, error)
	GenerateSpendingInsights(ctx context.Context, req models.SpendingInsightsRequest) (string, error)
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// WriteError sends the uniform failure envelope. Every failure path, auth
// included, goes through here so clients never see a raw error.
func WriteError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"error":   message,
		"success": false,
	})
}

func upstreamContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), upstreamTimeout)
}
