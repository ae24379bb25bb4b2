package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ecoswap/ecoswap/internal/model"
)

// CreateCategory creates a category, deriving the slug from the name.
func CreateCategory(ctx context.Context, db *sql.DB, name string) (*model.Category, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("category name is required")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO categories (name, slug) VALUES (?, ?)`,
		name, slug,
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting category id: %w", err)
	}

	return GetCategory(ctx, db, id)
}

// GetCategory returns a category by ID.
func GetCategory(ctx context.Context, db *sql.DB, id int64) (*model.Category, error) {
	c := &model.Category{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, slug FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Slug)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// ListCategories returns all categories ordered by name.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.Category, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, slug FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteCategory removes a category. Items referencing it keep existing
// with their category cleared (ON DELETE SET NULL).
func DeleteCategory(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

// DefaultCategories are seeded on first run.
var DefaultCategories = []string{
	"Electronics", "Clothing", "Furniture", "Books",
	"Toys", "Kitchen", "Garden", "Other",
}

// SeedCategories creates the default categories if they don't exist yet.
func SeedCategories(ctx context.Context, db *sql.DB) error {
	for _, name := range DefaultCategories {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (name, slug) VALUES (?, ?)`,
			name, Slugify(name),
		)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}
	}
	return nil
}

// Slugify converts a name into a URL-safe slug: lowercase ASCII letters,
// digits and hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
