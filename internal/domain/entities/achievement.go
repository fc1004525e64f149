package entities

import "time"

// Achievement represents an award earned by a player
type Achievement struct {
	ID          uint      `json:"id"`
	PlayerID    uint      `json:"playerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AwardedAt   time.Time `json:"awardedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
