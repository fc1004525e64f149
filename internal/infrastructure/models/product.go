package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(150);not null"`
	Slug        string  `gorm:"type:varchar(180);uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
	PriceCents  int64   `gorm:"not null"`
	Stock       int     `gorm:"not null;default:0"`
	IsActive    bool    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
