package entities

import "time"

// RegistrationStatus represents the state of a tournament entry
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "PENDING"
	RegistrationStatusConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationStatusCancelled RegistrationStatus = "CANCELLED"
	RegistrationStatusExpired   RegistrationStatus = "EXPIRED"
)

// Registration links a team to a tournament it entered
type Registration struct {
	ID           uint               `json:"id"`
	TournamentID uint               `json:"tournamentId"`
	TeamID       uint               `json:"teamId"`
	Status       RegistrationStatus `json:"status"`
	Seed         int                `json:"seed"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// RegisterTeamInput represents input for entering a tournament
type RegisterTeamInput struct {
	TeamID uint `json:"teamId" binding:"required"`
}
