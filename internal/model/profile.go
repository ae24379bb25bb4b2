package model

// Profile holds the ecoSwap-specific data attached to a user account.
// A profile is created lazily on first access and is unique per user.
type Profile struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	DisplayName      string `json:"display_name,omitempty"`
	Bio              string `json:"bio,omitempty"`
	Location         string `json:"location,omitempty"`
	AvatarMime       string `json:"avatar_mime,omitempty"`
	TotalItemsShared int    `json:"total_items_shared"`

	// Joined field (not always populated).
	Username string `json:"username,omitempty"`
}

// Name returns the display name, falling back to the username.
func (p *Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}
