package models

import (
	"time"

	"gorm.io/gorm"
)

type Tournament struct {
	ID             uint    `gorm:"primaryKey"`
	Title          string  `gorm:"type:varchar(150);not null"`
	Slug           string  `gorm:"type:varchar(180);uniqueIndex;not null"`
	GameID         uint    `gorm:"index;not null"`
	Status         string  `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	MaxTeams       int     `gorm:"not null"`
	PrizePool      *string `gorm:"type:varchar(100)"`
	Description    *string `gorm:"type:text"`
	RegistrationBy time.Time
	StartsAt       time.Time
	EndsAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
