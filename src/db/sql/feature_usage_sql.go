package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TrackFeatureUsage records one use of a feature by a user. Callers treat a
// failure as best-effort: it is logged, never surfaced to the client.
func TrackFeatureUsage(ctx context.Context, pool *pgxpool.Pool, userID, feature string) error {
	query := `INSERT INTO feature_usage (user_id, feature) VALUES ($1, $2)`
	_, err := pool.Exec(ctx, query, userID, feature)
	return err
}
