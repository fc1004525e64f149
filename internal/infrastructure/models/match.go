package models

import "time"

type Match struct {
	ID           uint   `gorm:"primaryKey"`
	TournamentID uint   `gorm:"index;not null"`
	Round        int    `gorm:"not null"`
	HomeTeamID   uint   `gorm:"not null"`
	AwayTeamID   uint   `gorm:"not null"`
	HomeScore    *int64
	AwayScore    *int64
	Status       string `gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
	ScheduledAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
