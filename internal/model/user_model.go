package model

import "github.com/surrealdb/surrealdb.go/pkg/models"

const UserTable = "user"

type UserDoc struct {
	ID           *models.RecordID       `json:"id,omitempty"`
	Username     string                 `json:"username"`
	Email        string                 `json:"email"`
	Fullname     string                 `json:"fullname"`
	Avatar       string                 `json:"avatar"`
	CoverImage   string                 `json:"cover_image"`
	Password     string                 `json:"password"`
	RefreshToken string                 `json:"refresh_token"`
	WatchHistory []models.RecordID      `json:"watch_history"`
	CreatedAt    models.CustomDateTime  `json:"created_at"`
	UpdatedAt    models.CustomDateTime  `json:"updated_at"`
}

// OwnerDoc is the owner sub-projection produced by lookup stages. Credential
// fields are structurally impossible here.
type OwnerDoc struct {
	ID       *models.RecordID `json:"id,omitempty"`
	Username string           `json:"username"`
	Fullname string           `json:"fullname"`
	Avatar   string           `json:"avatar"`
}

type ChannelProfileDoc struct {
	ID                *models.RecordID `json:"id,omitempty"`
	Username          string           `json:"username"`
	Email             string           `json:"email"`
	Fullname          string           `json:"fullname"`
	Avatar            string           `json:"avatar"`
	CoverImage        string           `json:"cover_image"`
	SubscribersCount  int64            `json:"subscribers_count"`
	SubscribedToCount int64            `json:"subscribed_to_count"`
	IsSubscribed      bool             `json:"is_subscribed"`
}
