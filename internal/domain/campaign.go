package domain

import "time"

// Campaign is a creator's funding request. Company is the display key that
// contributions are matched against.
type Campaign struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	CreatorName string    `json:"creator_name"`
	Company     string    `json:"company"`
	Pitch       string    `json:"pitch"`
	Goal        int64     `json:"goal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnedBy reports whether userID owns the campaign.
func (c Campaign) OwnedBy(userID string) bool {
	return userID != "" && c.OwnerID == userID
}
