package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"finchat-server/src/models"
)

// SaveUserProfile inserts or overwrites the profile row for the user. At most
// one row exists per user_id; concurrent saves are last-write-wins.
func SaveUserProfile(ctx context.Context, pool *pgxpool.Pool, profile *models.UserFinancialProfile) (*models.UserFinancialProfile, error) {
	query := `
		INSERT INTO user_financial_profiles (user_id, income, expenses, savings_goals)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			income = $2,
			expenses = $3,
			savings_goals = $4,
			updated_at = NOW()
		RETURNING id, user_id, income, expenses, savings_goals, created_at, updated_at
	`
	var p models.UserFinancialProfile
	err := pool.QueryRow(ctx, query, profile.UserID, profile.Income, profile.Expenses, profile.SavingsGoals).
		Scan(&p.ID, &p.UserID, &p.Income, &p.Expenses, &p.SavingsGoals, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func GetUserProfile(ctx context.Context, pool *pgxpool.Pool, userID string) (*models.UserFinancialProfile, error) {
	query := `
		SELECT id, user_id, income, expenses, savings_goals, created_at, updated_at
		FROM user_financial_profiles WHERE user_id = $1
	`
	var p models.UserFinancialProfile
	err := pool.QueryRow(ctx, query, userID).
		Scan(&p.ID, &p.UserID, &p.Income, &p.Expenses, &p.SavingsGoals, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func DeleteUserProfile(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	query := `DELETE FROM user_financial_profiles WHERE user_id = $1`
	cmd, err := pool.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}
