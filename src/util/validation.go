package util

import (
	"fmt"
	"strings"

	"finchat-server/src/models"
)

// ValidatePersona reports whether persona is one of the two supported
// audience framings.
func ValidatePersona(persona string) bool {
	return persona == "student" || persona == "professional"
}

// ValidateBudget checks the budget profile invariants: non-negative income,
// expense amounts and savings goal, and a valid user_type.
func ValidateBudget(req models.BudgetSummaryRequest) error {
	if req.Income < 0 {
		return fmt.Errorf("income must be non-negative")
	}
	if req.SavingsGoal < 0 {
		return fmt.Errorf("savings_goal must be non-negative")
	}
	for category, amount := range req.Expenses {
		if strings.TrimSpace(category) == "" {
			return fmt.Errorf("expense category must not be empty")
		}
		if amount < 0 {
			return fmt.Errorf("expense %q must be non-negative", category)
		}
	}
	if !ValidatePersona(req.UserType) {
		return fmt.Errorf("user_type must be student or professional")
	}
	return nil
}

// ValidateGoals checks each goal: non-empty name, non-negative target amount,
// positive timeframe.
func ValidateGoals(goals []models.Goal) error {
	for i, goal := range goals {
		if strings.TrimSpace(goal.Name) == "" {
			return fmt.Errorf("goal %d: name must not be empty", i)
		}
		if goal.Amount < 0 {
			return fmt.Errorf("goal %q: amount must be non-negative", goal.Name)
		}
		if goal.TimeframeMonths <= 0 {
			return fmt.Errorf("goal %q: timeframe_months must be positive", goal.Name)
		}
	}
	return nil
}
