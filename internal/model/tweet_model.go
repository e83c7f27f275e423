package model

import "github.com/surrealdb/surrealdb.go/pkg/models"

const TweetTable = "tweet"

type TweetDoc struct {
	ID        *models.RecordID      `json:"id,omitempty"`
	Content   string                `json:"content"`
	Owner     models.RecordID       `json:"owner"`
	CreatedAt models.CustomDateTime `json:"created_at"`
	UpdatedAt models.CustomDateTime `json:"updated_at"`
}

type TweetViewDoc struct {
	ID         *models.RecordID      `json:"id,omitempty"`
	Content    string                `json:"content"`
	Owner      OwnerDoc              `json:"owner"`
	LikesCount int64                 `json:"likes_count"`
	IsLiked    bool                  `json:"is_liked"`
	CreatedAt  models.CustomDateTime `json:"created_at"`
	UpdatedAt  models.CustomDateTime `json:"updated_at"`
}
