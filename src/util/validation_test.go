package util

import (
	"testing"

	"finchat-server/src/models"
)

func TestValidatePersona(t *testing.T) {
	tests := []struct {
		persona string
		want    bool
	}{
		{"student", true},
		{"professional", true},
		{"retiree", false},
		{"Student", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.persona, func(t *testing.T) {
			if got := ValidatePersona(tt.persona); got != tt.want {
				t.Errorf("ValidatePersona(%q) = %v, want %v", tt.persona, got, tt.want)
			}
		})
	}
}

func TestValidateBudget(t *testing.T) {
	valid := models.BudgetSummaryRequest{
		Income:         3500,
		Expenses:       map[string]float64{"rent": 1200, "groceries": 400},
		SavingsGoal:    500,
		CurrencySymbol: "$",
		UserType:       "student",
	}

	tests := []struct {
		name    string
		mutate  func(*models.BudgetSummaryRequest)
		wantErr bool
	}{
		{"valid profile", func(r *models.BudgetSummaryRequest) {}, false},
		{"zero income is allowed", func(r *models.BudgetSummaryRequest) { r.Income = 0 }, false},
		{"negative income", func(r *models.BudgetSummaryRequest) { r.Income = -1 }, true},
		{"negative savings goal", func(r *models.BudgetSummaryRequest) { r.SavingsGoal = -500 }, true},
		{"negative expense", func(r *models.BudgetSummaryRequest) { r.Expenses = map[string]float64{"rent": -10} }, true},
		{"blank category", func(r *models.BudgetSummaryRequest) { r.Expenses = map[string]float64{"  ": 10} }, true},
		{"bad user_type", func(r *models.BudgetSummaryRequest) { r.UserType = "freelancer" }, true},
		{"empty expenses map is allowed", func(r *models.BudgetSummaryRequest) { r.Expenses = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateBudget(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBudget() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateGoals(t *testing.T) {
	tests := []struct {
		name    string
		goals   []models.Goal
		wantErr bool
	}{
		{"empty list", nil, false},
		{"valid goal", []models.Goal{{Name: "Emergency fund", Amount: 5000, TimeframeMonths: 10}}, false},
		{"zero timeframe", []models.Goal{{Name: "New laptop", Amount: 1200, TimeframeMonths: 0}}, true},
		{"negative timeframe", []models.Goal{{Name: "New laptop", Amount: 1200, TimeframeMonths: -6}}, true},
		{"negative amount", []models.Goal{{Name: "Trip", Amount: -100, TimeframeMonths: 3}}, true},
		{"blank name", []models.Goal{{Name: " ", Amount: 100, TimeframeMonths: 3}}, true},
		{
			"second goal invalid",
			[]models.Goal{
				{Name: "Emergency fund", Amount: 5000, TimeframeMonths: 10},
				{Name: "New laptop", Amount: 1200, TimeframeMonths: 0},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoals(tt.goals)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGoals() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
