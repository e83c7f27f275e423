package entity

import "time"

type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriberId"`
	ChannelID    string    `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Subscriber struct {
	Subscriber   OwnerInfo `json:"subscriber"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscribedChannel struct {
	Channel      OwnerInfo `json:"channel"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
