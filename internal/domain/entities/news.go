package entities

import "time"

// News represents an editorial article on the platform
type News struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	AuthorID    uint       `json:"authorId"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"-"`
}

// CreateNewsInput represents input for creating an article
type CreateNewsInput struct {
	Title   string `json:"title" binding:"required,min=3,max=200"`
	Body    string `json:"body" binding:"required"`
	Publish bool   `json:"publish"`
}
