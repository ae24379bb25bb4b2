package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/model"
)

// itemColumns selects an item with its category name and owner username
// joined, avoiding per-row lookups on list pages.
const itemColumns = `
	SELECT i.id, i.owner_id, i.title, i.description, i.category_id,
	       i.condition, i.exchange_type, i.location, i.image_mime,
	       i.is_active, i.created_at, i.updated_at,
	       COALESCE(c.name, '') AS category_name, u.username AS owner_username
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id
	JOIN users u ON u.id = i.owner_id`

// CreateItem creates a new listing. The owner is always supplied by the
// caller from the authenticated session, never from client input.
func CreateItem(ctx context.Context, db *sql.DB, ownerID int64, title, description string, categoryID *int64, condition, exchangeType, location string) (*model.Item, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}
	if !model.ValidCondition(condition) {
		return nil, fmt.Errorf("invalid condition: %q", condition)
	}
	if !model.ValidExchangeType(exchangeType) {
		return nil, fmt.Errorf("invalid exchange type: %q", exchangeType)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (owner_id, title, description, category_id, condition, exchange_type, location)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ownerID, title, description, categoryID, condition, exchangeType, location,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID regardless of its active flag. Used by
// owner-facing pages; public pages use GetActiveItem.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx, itemColumns+` WHERE i.id = ?`, id)
	return scanItemRow(row)
}

// GetActiveItem returns an item by ID only if it is active. Inactive and
// missing items both come back nil, which handlers map to 404.
func GetActiveItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx, itemColumns+` WHERE i.id = ? AND i.is_active = 1`, id)
	return scanItemRow(row)
}

// ListActiveItems returns up to limit active items, newest first.
func ListActiveItems(ctx context.Context, db *sql.DB, limit int) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		itemColumns+` WHERE i.is_active = 1 ORDER BY i.created_at DESC, i.id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing active items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListItemsByOwner returns all of a user's items, newest first, including
// inactive ones so the dashboard shows the full history.
func ListItemsByOwner(ctx context.Context, db *sql.DB, ownerID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		itemColumns+` WHERE i.owner_id = ? ORDER BY i.created_at DESC, i.id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items by owner: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// SetItemActive flips an item's active flag.
func SetItemActive(ctx context.Context, db *sql.DB, id int64, active bool) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		active, id,
	)
	if err != nil {
		return fmt.Errorf("setting item active flag: %w", err)
	}
	return nil
}

// SetItemImage sets an item's photo data.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's photo data and MIME type.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

func scanItemRow(row *sql.Row) (*model.Item, error) {
	item := &model.Item{}
	var description, imageMime sql.NullString
	err := row.Scan(&item.ID, &item.OwnerID, &item.Title, &description, &item.CategoryID,
		&item.Condition, &item.ExchangeType, &item.Location, &imageMime,
		&item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		&item.CategoryName, &item.OwnerUsername)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	item.ImageMime = imageMime.String
	return item, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, imageMime sql.NullString
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Title, &description, &item.CategoryID,
			&item.Condition, &item.ExchangeType, &item.Location, &imageMime,
			&item.IsActive, &item.CreatedAt, &item.UpdatedAt,
			&item.CategoryName, &item.OwnerUsername); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Description = description.String
		item.ImageMime = imageMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}
