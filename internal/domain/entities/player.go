package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Player is the competitive profile attached to a user account.
// It references the account by foreign key rather than extending it.
type Player struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"userId"`
	Nickname  string      `json:"nickname"`
	AvatarURL null.String `json:"avatarUrl,omitempty"`
	Country   null.String `json:"country,omitempty"`
	TeamID    null.Uint   `json:"teamId,omitempty"`
	Points    int         `json:"points"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	DeletedAt *time.Time  `json:"-"`
}

// UpdatePlayerInput represents input for editing a player profile
type UpdatePlayerInput struct {
	Nickname  string `json:"nickname" binding:"required,min=2,max=30"`
	AvatarURL string `json:"avatarUrl"`
	Country   string `json:"country"`
}
