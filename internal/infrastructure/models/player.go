package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"uniqueIndex;not null"`
	Nickname  string  `gorm:"type:varchar(30);uniqueIndex;not null"`
	AvatarURL *string `gorm:"type:varchar(500)"`
	Country   *string `gorm:"type:varchar(2)"`
	TeamID    *uint   `gorm:"index"`
	Points    int     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
