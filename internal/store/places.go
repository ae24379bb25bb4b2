package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/model"
)

// CreateEcoPlace creates a directory entry.
func CreateEcoPlace(ctx context.Context, db *sql.DB, p *model.EcoPlace) (*model.EcoPlace, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if p.Address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if !model.ValidPlaceType(p.PlaceType) {
		return nil, fmt.Errorf("invalid place type: %q", p.PlaceType)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO eco_places (name, place_type, address, city, website, latitude, longitude, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.PlaceType, p.Address, p.City, p.Website, p.Latitude, p.Longitude, p.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating eco place: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting eco place id: %w", err)
	}

	return GetEcoPlace(ctx, db, id)
}

// GetEcoPlace returns a directory entry by ID.
func GetEcoPlace(ctx context.Context, db *sql.DB, id int64) (*model.EcoPlace, error) {
	p := &model.EcoPlace{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, place_type, address, city, website, latitude, longitude, description
		 FROM eco_places WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.PlaceType, &p.Address, &p.City, &p.Website,
		&p.Latitude, &p.Longitude, &p.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting eco place: %w", err)
	}
	return p, nil
}

// FindEcoPlaces lists directory entries, optionally filtered. The city
// filter is a case-insensitive substring match, the type filter is an
// exact match. With no filters the whole directory comes back, ordered by
// city then name.
func FindEcoPlaces(ctx context.Context, db *sql.DB, city, placeType string) ([]model.EcoPlace, error) {
	query := `SELECT id, name, place_type, address, city, website, latitude, longitude, description
	          FROM eco_places WHERE 1=1`
	var args []any

	if city != "" {
		query += ` AND city LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, city)
	}
	if placeType != "" {
		query += ` AND place_type = ?`
		args = append(args, placeType)
	}

	query += ` ORDER BY city, name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding eco places: %w", err)
	}
	defer rows.Close()

	var places []model.EcoPlace
	for rows.Next() {
		var p model.EcoPlace
		if err := rows.Scan(&p.ID, &p.Name, &p.PlaceType, &p.Address, &p.City, &p.Website,
			&p.Latitude, &p.Longitude, &p.Description); err != nil {
			return nil, fmt.Errorf("scanning eco place: %w", err)
		}
		places = append(places, p)
	}
	return places, rows.Err()
}
