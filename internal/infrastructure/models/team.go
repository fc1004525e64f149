package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Slug      string  `gorm:"type:varchar(120);uniqueIndex;not null"`
	GameID    uint    `gorm:"index;not null"`
	LogoURL   *string `gorm:"type:varchar(500)"`
	Wins      int     `gorm:"not null;default:0"`
	Draws     int     `gorm:"not null;default:0"`
	Losses    int     `gorm:"not null;default:0"`
	Points    int     `gorm:"not null;default:0"`
	IsActive  bool    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
