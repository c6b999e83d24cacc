package models

import (
	"encoding/json"
	"time"
)

// UserFinancialProfile is the persisted row in user_financial_profiles.
// At most one row per user_id; saves overwrite (last write wins).
type UserFinancialProfile struct {
	ID           int64           `json:"id"`
	UserID       string          `json:"user_id"`
	Income       float64         `json:"income"`
	Expenses     json.RawMessage `json:"expenses"`      // JSONB {category: amount}
	SavingsGoals json.RawMessage `json:"savings_goals"` // JSONB [{name, amount, timeframe_months}]
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
