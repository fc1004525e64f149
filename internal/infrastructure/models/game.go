package models

import (
	"time"

	"gorm.io/gorm"
)

type Game struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Slug      string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Genre     string `gorm:"type:varchar(50)"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
