package models

import "time"

type Achievement struct {
	ID          uint   `gorm:"primaryKey"`
	PlayerID    uint   `gorm:"index;not null"`
	Title       string `gorm:"type:varchar(150);not null"`
	Description string `gorm:"type:text"`
	AwardedAt   time.Time
	CreatedAt   time.Time
}
