package model

import "time"

// SwapRequest is a proposal from one user to the owner of an item to swap
// or receive it.
type SwapRequest struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	FromUserID int64     `json:"from_user_id"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Joined fields (not always populated).
	ItemTitle    string `json:"item_title,omitempty"`
	ItemOwnerID  int64  `json:"item_owner_id,omitempty"`
	FromUsername string `json:"from_username,omitempty"`
}

// Swap request statuses.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusDeclined  = "declined"
	SwapStatusCompleted = "completed"
)

// ValidSwapTransition reports whether a swap request may move from one
// status to another. Pending requests can be accepted or declined, and
// accepted requests can be completed; every other move is rejected.
func ValidSwapTransition(from, to string) bool {
	switch from {
	case SwapStatusPending:
		return to == SwapStatusAccepted || to == SwapStatusDeclined
	case SwapStatusAccepted:
		return to == SwapStatusCompleted
	}
	return false
}

// SwapStatusName returns the display name for a swap request status.
func SwapStatusName(status string) string {
	switch status {
	case SwapStatusPending:
		return "Pending"
	case SwapStatusAccepted:
		return "Accepted"
	case SwapStatusDeclined:
		return "Declined"
	case SwapStatusCompleted:
		return "Completed"
	default:
		return status
	}
}
