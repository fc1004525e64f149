package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Team represents a roster competing in tournaments
type Team struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Slug      string      `json:"slug"`
	GameID    uint        `json:"gameId"`
	LogoURL   null.String `json:"logoUrl,omitempty"`
	Wins      int         `json:"wins"`
	Draws     int         `json:"draws"`
	Losses    int         `json:"losses"`
	Points    int         `json:"points"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	DeletedAt *time.Time  `json:"-"`
}

// ResultDelta is the win/draw/loss increment applied to a team's
// running record when a match result is reported.
type ResultDelta struct {
	Wins   int
	Draws  int
	Losses int
	Points int
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	GameID  uint   `json:"gameId" binding:"required"`
	LogoURL string `json:"logoUrl"`
}

// UpdateTeamInput represents input for editing a team
type UpdateTeamInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	LogoURL  string `json:"logoUrl"`
	IsActive *bool  `json:"isActive"`
}
