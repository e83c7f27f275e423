package model

import "github.com/surrealdb/surrealdb.go/pkg/models"

const SubscriptionTable = "subscription"

type SubscriptionDoc struct {
	ID         *models.RecordID      `json:"id,omitempty"`
	Subscriber models.RecordID       `json:"subscriber"`
	Channel    models.RecordID       `json:"channel"`
	CreatedAt  models.CustomDateTime `json:"created_at"`
}

type SubscriberViewDoc struct {
	Subscriber   OwnerDoc              `json:"subscriber"`
	SubscribedAt models.CustomDateTime `json:"subscribed_at"`
}

type SubscribedChannelViewDoc struct {
	Channel      OwnerDoc              `json:"channel"`
	SubscribedAt models.CustomDateTime `json:"subscribed_at"`
}
