package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecoswap/ecoswap/internal/model"
)

// CreateCommunityPost creates a post in the community feed. Title and body
// must be non-empty; callers trim whitespace before deciding whether to
// call this at all.
func CreateCommunityPost(ctx context.Context, db *sql.DB, authorID int64, title, body string) (*model.CommunityPost, error) {
	if title == "" || body == "" {
		return nil, fmt.Errorf("title and body are required")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO community_posts (author_id, title, body) VALUES (?, ?, ?)`,
		authorID, title, body,
	)
	if err != nil {
		return nil, fmt.Errorf("creating community post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting community post id: %w", err)
	}

	return GetCommunityPost(ctx, db, id)
}

// GetCommunityPost returns a post by ID with the author username joined.
func GetCommunityPost(ctx context.Context, db *sql.DB, id int64) (*model.CommunityPost, error) {
	p := &model.CommunityPost{}
	err := db.QueryRowContext(ctx,
		`SELECT p.id, p.author_id, p.title, p.body, p.created_at, u.username
		 FROM community_posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.id = ?`, id,
	).Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt, &p.AuthorUsername)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting community post: %w", err)
	}
	return p, nil
}

// ListRecentPosts returns up to limit posts, newest first, with author
// usernames joined.
func ListRecentPosts(ctx context.Context, db *sql.DB, limit int) ([]model.CommunityPost, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT p.id, p.author_id, p.title, p.body, p.created_at, u.username
		 FROM community_posts p
		 JOIN users u ON u.id = p.author_id
		 ORDER BY p.created_at DESC, p.id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing community posts: %w", err)
	}
	defer rows.Close()

	var posts []model.CommunityPost
	for rows.Next() {
		var p model.CommunityPost
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt, &p.AuthorUsername); err != nil {
			return nil, fmt.Errorf("scanning community post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
