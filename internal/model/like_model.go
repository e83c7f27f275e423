package model

import "github.com/surrealdb/surrealdb.go/pkg/models"

const LikeTable = "like"

// LikeDoc references exactly one of video/comment/tweet. A store-level
// unique index per (liked_by, target) column pair keeps concurrent toggles
// from producing duplicates; see cmd/migrate.
type LikeDoc struct {
	ID        *models.RecordID      `json:"id,omitempty"`
	LikedBy   models.RecordID       `json:"liked_by"`
	Video     *models.RecordID      `json:"video,omitempty"`
	Comment   *models.RecordID      `json:"comment,omitempty"`
	Tweet     *models.RecordID      `json:"tweet,omitempty"`
	CreatedAt models.CustomDateTime `json:"created_at"`
}

type LikedVideoDoc struct {
	Video   VideoViewDoc          `json:"video"`
	LikedAt models.CustomDateTime `json:"liked_at"`
}
