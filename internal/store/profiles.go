package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/model"
)

// GetOrCreateProfile returns the profile for a user, creating an empty one
// on first access. Uses INSERT OR IGNORE + re-SELECT so concurrent calls
// for the same user cannot create duplicate rows (profiles.user_id is
// UNIQUE).
func GetOrCreateProfile(ctx context.Context, db *sql.DB, userID int64) (*model.Profile, error) {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO profiles (user_id) VALUES (?)`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	return getProfile(ctx, db, userID)
}

func getProfile(ctx context.Context, db *sql.DB, userID int64) (*model.Profile, error) {
	p := &model.Profile{}
	var avatarMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT p.id, p.user_id, p.display_name, p.bio, p.location, p.avatar_mime,
		        p.total_items_shared, u.username
		 FROM profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = ?`, userID,
	).Scan(&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.Location, &avatarMime,
		&p.TotalItemsShared, &p.Username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	p.AvatarMime = avatarMime.String
	return p, nil
}

// UpdateProfile updates a user's display name, bio and location.
func UpdateProfile(ctx context.Context, db *sql.DB, userID int64, displayName, bio, location string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE profiles SET display_name = ?, bio = ?, location = ? WHERE user_id = ?`,
		displayName, bio, location, userID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}

// SetProfileAvatar sets a user's avatar image data.
func SetProfileAvatar(ctx context.Context, db *sql.DB, userID int64, avatar []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE profiles SET avatar = ?, avatar_mime = ? WHERE user_id = ?`,
		avatar, mime, userID,
	)
	if err != nil {
		return fmt.Errorf("setting profile avatar: %w", err)
	}
	return nil
}

// GetProfileAvatar returns a user's avatar image data and MIME type.
func GetProfileAvatar(ctx context.Context, db *sql.DB, userID int64) ([]byte, string, error) {
	var avatar []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT avatar, avatar_mime FROM profiles WHERE user_id = ?`, userID,
	).Scan(&avatar, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting profile avatar: %w", err)
	}
	return avatar, mime.String, nil
}

// IncrementItemsShared bumps a user's shared-item counter within an
// existing transaction.
func IncrementItemsShared(ctx context.Context, tx *sql.Tx, userID int64) error {
	// The profile may not exist yet if the owner never opened their
	// profile page.
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO profiles (user_id) VALUES (?)`, userID,
	); err != nil {
		return fmt.Errorf("ensuring profile: %w", err)
	}

	_, err := tx.ExecContext(ctx,
		`UPDATE profiles SET total_items_shared = total_items_shared + 1 WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("incrementing items shared: %w", err)
	}
	return nil
}
