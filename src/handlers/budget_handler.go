package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	db "finchat-server/src/db/sql"
	"finchat-server/src/models"
	"finchat-server/src/util"
)

func BudgetSummary(generator AdviceGenerator, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value("user_id").(string)

		var req models.BudgetSummaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode budget summary request body for user %s: %v", userID, err)
			WriteError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		if err := util.ValidateBudget(req); err != nil {
			WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		ctx, cancel := upstreamContext(r)
		defer cancel()

		summary, err := generator.GenerateBudgetSummary(ctx, req)
		if err != nil {
			log.Printf("ERROR: Failed to generate budget summary for user %s: %v", userID, err)
			WriteError(w, http.StatusBadGateway, "budget summary generation failed")
			return
		}

		if pool != nil && userID != "" {
			if err := saveProfile(ctx, pool, userID, req, nil); err != nil {
				log.Printf("ERROR: Failed to save profile for user %s: %v", userID, err)
				WriteError(w, http.StatusBadGateway, "failed to save financial profile")
				return
			}
			trackUsage(ctx, pool, userID, "budget_summary")
		}

		// The expense breakdown is echoed back so the client can chart it
		// without re-deriving percentages.
		RespondJSON(w, http.StatusOK, map[string]interface{}{
			"summary":   summary,
			"breakdown": util.CalculatePercentages(req.Expenses),
		})
	}
}

func SpendingInsights(generator AdviceGenerator, pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Auth is optional here: a valid token keys the persisted profile,
		// an absent one skips persistence.
		userID, _ := r.Context().Value("user_id").(string)

		var req models.SpendingInsightsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode spending insights request body for user %s: %v", userID, err)
			WriteError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		if err := util.ValidateBudget(req.BudgetSummaryRequest); err != nil {
			WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := util.ValidateGoals(req.Goals); err != nil {
			WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		ctx, cancel := upstreamContext(r)
		defer cancel()

		insights, err := generator.GenerateSpendingInsights(ctx, req)
		if err != nil {
			log.Printf("ERROR: Failed to generate spending insights for user %s: %v", userID, err)
			WriteError(w, http.StatusBadGateway, "spending insights generation failed")
			return
		}

		if pool != nil && userID != "" {
			if err := saveProfile(ctx, pool, userID, req.BudgetSummaryRequest, req.Goals); err != nil {
				log.Printf("ERROR: Failed to save profile for user %s: %v", userID, err)
				WriteError(w, http.StatusBadGateway, "failed to save financial profile")
				return
			}
			trackUsage(ctx, pool, userID, "spending_insights")
		}

		RespondJSON(w, http.StatusOK, map[string]interface{}{"insights": insights})
	}
}

func saveProfile(ctx context.Context, pool *pgxpool.Pool, userID string, req models.BudgetSummaryRequest, goals []models.Goal) error {
	expenses, err := json.Marshal(req.Expenses)
	if err != nil {
		return err
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	savingsGoals, err := json.Marshal(goals)
	if err != nil {
		return err
	}

	profile := &models.UserFinancialProfile{
		UserID:       userID,
		Income:       req.Income,
		Expenses:     expenses,
		SavingsGoals: savingsGoals,
	}
	_, err = db.SaveUserProfile(ctx, pool, profile)
	return err
}

// trackUsage is best-effort: a failed insert is logged and never fails the
// request.
func trackUsage(ctx context.Context, pool *pgxpool.Pool, userID, feature string) {
	if err := db.TrackFeatureUsage(ctx, pool, userID, feature); err != nil {
		log.Printf("ERROR: Failed to track %s usage for user %s: %v", feature, userID, err)
	}
}
