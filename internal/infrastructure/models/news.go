package models

import (
	"time"

	"gorm.io/gorm"
)

type News struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(220);uniqueIndex;not null"`
	Body        string `gorm:"type:text;not null"`
	AuthorID    uint   `gorm:"index;not null"`
	IsPublished bool   `gorm:"not null;default:false"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
