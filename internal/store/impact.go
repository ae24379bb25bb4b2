package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/model"
)

// CreateImpactLog appends an impact record for a user. Rows are never
// updated afterwards.
func CreateImpactLog(ctx context.Context, db *sql.DB, userID int64, itemsKept int, co2SavedKg float64) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO impact_logs (user_id, items_kept_in_circulation, co2_saved_kg) VALUES (?, ?, ?)`,
		userID, itemsKept, co2SavedKg,
	)
	if err != nil {
		return fmt.Errorf("creating impact log: %w", err)
	}
	return nil
}

// SumImpact returns a user's summed impact totals. COALESCE makes the
// empty-set case come back as concrete zeros rather than NULL.
func SumImpact(ctx context.Context, db *sql.DB, userID int64) (*model.ImpactSummary, error) {
	s := &model.ImpactSummary{}
	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(items_kept_in_circulation), 0),
		        COALESCE(SUM(co2_saved_kg), 0.0)
		 FROM impact_logs WHERE user_id = ?`, userID,
	).Scan(&s.TotalItemsKept, &s.TotalCO2Saved)
	if err != nil {
		return nil, fmt.Errorf("summing impact: %w", err)
	}
	return s, nil
}

// ListImpactLogs returns a user's impact records, newest first.
func ListImpactLogs(ctx context.Context, db *sql.DB, userID int64) ([]model.ImpactLog, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, items_kept_in_circulation, co2_saved_kg, created_at
		 FROM impact_logs WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing impact logs: %w", err)
	}
	defer rows.Close()

	var logs []model.ImpactLog
	for rows.Next() {
		var l model.ImpactLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.ItemsKeptInCirculation, &l.CO2SavedKg, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning impact log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
