package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Product represents a store item (merch, tickets)
type Product struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description null.String `json:"description,omitempty"`
	PriceCents  int64       `json:"priceCents"`
	Stock       int         `json:"stock"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	DeletedAt   *time.Time  `json:"-"`
}

// CreateProductInput represents input for creating a store product
type CreateProductInput struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents" binding:"required,min=1"`
	Stock       int    `json:"stock" binding:"min=0"`
}

// PurchaseInput represents input for buying a product
type PurchaseInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
