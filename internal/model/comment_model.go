package model

import "github.com/surrealdb/surrealdb.go/pkg/models"

const CommentTable = "comment"

type CommentDoc struct {
	ID        *models.RecordID      `json:"id,omitempty"`
	Content   string                `json:"content"`
	Video     models.RecordID       `json:"video"`
	Owner     models.RecordID       `json:"owner"`
	CreatedAt models.CustomDateTime `json:"created_at"`
	UpdatedAt models.CustomDateTime `json:"updated_at"`
}

type CommentViewDoc struct {
	ID         *models.RecordID      `json:"id,omitempty"`
	Content    string                `json:"content"`
	Owner      OwnerDoc              `json:"owner"`
	LikesCount int64                 `json:"likes_count"`
	IsLiked    bool                  `json:"is_liked"`
	CreatedAt  models.CustomDateTime `json:"created_at"`
	UpdatedAt  models.CustomDateTime `json:"updated_at"`
}
