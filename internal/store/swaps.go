package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/model"
)

const swapColumns = `
	SELECT s.id, s.item_id, s.from_user_id, s.message, s.status,
	       s.created_at, s.updated_at,
	       i.title AS item_title, i.owner_id AS item_owner_id,
	       u.username AS from_username
	FROM swap_requests s
	JOIN items i ON i.id = s.item_id
	JOIN users u ON u.id = s.from_user_id`

// CreateSwapRequest records a request from a user to receive an item.
// Owners cannot request their own items.
func CreateSwapRequest(ctx context.Context, db *sql.DB, itemID, fromUserID int64, message string) (*model.SwapRequest, error) {
	item, err := GetItem(ctx, db, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.IsActive {
		return nil, fmt.Errorf("item not found")
	}
	if item.OwnerID == fromUserID {
		return nil, fmt.Errorf("cannot request your own item")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO swap_requests (item_id, from_user_id, message) VALUES (?, ?, ?)`,
		itemID, fromUserID, message,
	)
	if err != nil {
		return nil, fmt.Errorf("creating swap request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting swap request id: %w", err)
	}

	return GetSwapRequest(ctx, db, id)
}

// GetSwapRequest returns a swap request by ID, with the item title, item
// owner and requester username joined.
func GetSwapRequest(ctx context.Context, db *sql.DB, id int64) (*model.SwapRequest, error) {
	row := db.QueryRowContext(ctx, swapColumns+` WHERE s.id = ?`, id)
	return scanSwapRow(row)
}

// ListSwapRequestsForOwner returns incoming requests for all items owned
// by a user, newest first.
func ListSwapRequestsForOwner(ctx context.Context, db *sql.DB, ownerID int64) ([]model.SwapRequest, error) {
	rows, err := db.QueryContext(ctx,
		swapColumns+` WHERE i.owner_id = ? ORDER BY s.created_at DESC, s.id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing swap requests for owner: %w", err)
	}
	defer rows.Close()

	return scanSwaps(rows)
}

// ListSwapRequestsByUser returns requests a user has made, newest first.
func ListSwapRequestsByUser(ctx context.Context, db *sql.DB, userID int64) ([]model.SwapRequest, error) {
	rows, err := db.QueryContext(ctx,
		swapColumns+` WHERE s.from_user_id = ? ORDER BY s.created_at DESC, s.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing swap requests by user: %w", err)
	}
	defer rows.Close()

	return scanSwaps(rows)
}

// UpdateSwapRequestStatus moves a swap request through its lifecycle:
// pending can be accepted or declined, accepted can be completed.
// Completion runs in a single transaction that also deactivates the item,
// bumps the owner's shared-item counter and appends an impact log row.
func UpdateSwapRequestStatus(ctx context.Context, db *sql.DB, id int64, newStatus string) (*model.SwapRequest, error) {
	req, err := GetSwapRequest(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("swap request not found")
	}
	if !model.ValidSwapTransition(req.Status, newStatus) {
		return nil, fmt.Errorf("cannot move swap request from %q to %q", req.Status, newStatus)
	}

	if newStatus != model.SwapStatusCompleted {
		_, err := db.ExecContext(ctx,
			`UPDATE swap_requests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			newStatus, id,
		)
		if err != nil {
			return nil, fmt.Errorf("updating swap request status: %w", err)
		}
		return GetSwapRequest(ctx, db, id)
	}

	item, err := GetItem(ctx, db, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item not found")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE swap_requests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		model.SwapStatusCompleted, id,
	); err != nil {
		return nil, fmt.Errorf("completing swap request: %w", err)
	}

	// The item has found a new home; take it off the browse page.
	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		req.ItemID,
	); err != nil {
		return nil, fmt.Errorf("deactivating swapped item: %w", err)
	}

	if err := IncrementItemsShared(ctx, tx, item.OwnerID); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO impact_logs (user_id, items_kept_in_circulation, co2_saved_kg) VALUES (?, 1, ?)`,
		item.OwnerID, model.EstimateCO2SavedKg(item.ExchangeType),
	); err != nil {
		return nil, fmt.Errorf("recording impact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing swap completion: %w", err)
	}

	return GetSwapRequest(ctx, db, id)
}

func scanSwapRow(row *sql.Row) (*model.SwapRequest, error) {
	s := &model.SwapRequest{}
	var message sql.NullString
	err := row.Scan(&s.ID, &s.ItemID, &s.FromUserID, &message, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
		&s.ItemTitle, &s.ItemOwnerID, &s.FromUsername)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting swap request: %w", err)
	}
	s.Message = message.String
	return s, nil
}

func scanSwaps(rows *sql.Rows) ([]model.SwapRequest, error) {
	var swaps []model.SwapRequest
	for rows.Next() {
		var s model.SwapRequest
		var message sql.NullString
		if err := rows.Scan(&s.ID, &s.ItemID, &s.FromUserID, &message, &s.Status,
			&s.CreatedAt, &s.UpdatedAt,
			&s.ItemTitle, &s.ItemOwnerID, &s.FromUsername); err != nil {
			return nil, fmt.Errorf("scanning swap request: %w", err)
		}
		s.Message = message.String
		swaps = append(swaps, s)
	}
	return swaps, rows.Err()
}
