package models

import "time"

type Registration struct {
	ID           uint   `gorm:"primaryKey"`
	TournamentID uint   `gorm:"not null;uniqueIndex:idx_registration_tournament_team"`
	TeamID       uint   `gorm:"not null;uniqueIndex:idx_registration_tournament_team"`
	Status       string `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Seed         int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
