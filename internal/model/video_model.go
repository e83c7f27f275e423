package model

import "github.com/surrealdb/surrealdb.go/pkg/models"

const VideoTable = "video"

type VideoDoc struct {
	ID          *models.RecordID      `json:"id,omitempty"`
	Owner       models.RecordID       `json:"owner"`
	VideoFile   string                `json:"video_file"`
	Thumbnail   string                `json:"thumbnail"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Duration    int                   `json:"duration"`
	Views       int64                 `json:"views"`
	IsPublished bool                  `json:"is_published"`
	CreatedAt   models.CustomDateTime `json:"created_at"`
	UpdatedAt   models.CustomDateTime `json:"updated_at"`
}

type VideoViewDoc struct {
	ID          *models.RecordID      `json:"id,omitempty"`
	Owner       OwnerDoc              `json:"owner"`
	VideoFile   string                `json:"video_file"`
	Thumbnail   string                `json:"thumbnail"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Duration    int                   `json:"duration"`
	Views       int64                 `json:"views"`
	IsPublished bool                  `json:"is_published"`
	LikesCount  int64                 `json:"likes_count"`
	IsLiked     bool                  `json:"is_liked"`
	CreatedAt   models.CustomDateTime `json:"created_at"`
	UpdatedAt   models.CustomDateTime `json:"updated_at"`
}
