package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// TournamentStatus represents the lifecycle of a tournament
type TournamentStatus string

const (
	TournamentStatusDraft        TournamentStatus = "DRAFT"
	TournamentStatusRegistration TournamentStatus = "REGISTRATION"
	TournamentStatusLive         TournamentStatus = "LIVE"
	TournamentStatusFinished     TournamentStatus = "FINISHED"
	TournamentStatusCancelled    TournamentStatus = "CANCELLED"
)

// Tournament represents a competition for one game
type Tournament struct {
	ID             uint             `json:"id"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	GameID         uint             `json:"gameId"`
	Status         TournamentStatus `json:"status"`
	MaxTeams       int              `json:"maxTeams"`
	PrizePool      null.String      `json:"prizePool,omitempty"`
	Description    null.String      `json:"description,omitempty"`
	RegistrationBy time.Time        `json:"registrationBy"`
	StartsAt       time.Time        `json:"startsAt"`
	EndsAt         *time.Time       `json:"endsAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	DeletedAt      *time.Time       `json:"-"`
}

// CreateTournamentInput represents input for creating a tournament
type CreateTournamentInput struct {
	Title          string    `json:"title" binding:"required,min=3,max=150"`
	GameID         uint      `json:"gameId" binding:"required"`
	MaxTeams       int       `json:"maxTeams" binding:"required,min=2"`
	PrizePool      string    `json:"prizePool"`
	Description    string    `json:"description"`
	RegistrationBy time.Time `json:"registrationBy" binding:"required"`
	StartsAt       time.Time `json:"startsAt" binding:"required"`
}
