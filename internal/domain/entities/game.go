package entities

import "time"

// Game represents a discipline tournaments are held in
type Game struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Genre     string     `json:"genre"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

// CreateGameInput represents input for creating a game
type CreateGameInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Genre    string `json:"genre" binding:"required"`
	IsActive *bool  `json:"isActive"`
}
