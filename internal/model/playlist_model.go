package model

import "github.com/surrealdb/surrealdb.go/pkg/models"

const PlaylistTable = "playlist"

type PlaylistDoc struct {
	ID          *models.RecordID      `json:"id,omitempty"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	IsPrivate   bool                  `json:"is_private"`
	Owner       models.RecordID       `json:"owner"`
	Videos      []models.RecordID     `json:"videos"`
	CreatedAt   models.CustomDateTime `json:"created_at"`
	UpdatedAt   models.CustomDateTime `json:"updated_at"`
}

type PlaylistVideoDoc struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Title       string           `json:"title"`
	Thumbnail   string           `json:"thumbnail"`
	Duration    int              `json:"duration"`
	IsPublished bool             `json:"is_published"`
	Owner       OwnerDoc         `json:"owner"`
}

type PlaylistViewDoc struct {
	ID          *models.RecordID      `json:"id,omitempty"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	IsPrivate   bool                  `json:"is_private"`
	Owner       models.RecordID       `json:"owner"`
	Videos      []PlaylistVideoDoc    `json:"videos"`
	CreatedAt   models.CustomDateTime `json:"created_at"`
	UpdatedAt   models.CustomDateTime `json:"updated_at"`
}
