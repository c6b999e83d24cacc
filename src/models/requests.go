package models

type NLURequest struct {
	Text string `json:"text"`
}

type GenerateRequest struct {
	Question string `json:"question"`
	Persona  string `json:"persona"`
}

type BudgetSummaryRequest struct {
	Income         float64            `json:"income"`
	Expenses       map[string]float64 `json:"expenses"`
	SavingsGoal    float64            `json:"savings_goal"`
	CurrencySymbol string             `json:"currency_symbol"`
	UserType       string             `json:"user_type"`
}

type SpendingInsightsRequest struct {
	BudgetSummaryRequest
	Goals []Goal `json:"goals"`
}
