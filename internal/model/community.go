package model

import "time"

// CommunityPost is a short user-authored story or tip in the shared feed.
type CommunityPost struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`

	// Joined field (not always populated).
	AuthorUsername string `json:"author_username,omitempty"`
}
