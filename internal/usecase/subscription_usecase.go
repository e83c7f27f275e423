package usecase

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
	"streamtube/pkg/response"
)

type SubscriptionUseCase interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	ListSubscribers(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.Subscriber], error)
	ListSubscribed(ctx context.Context, subscriberID string, page, limit int) (*pipeline.Page[entity.SubscribedChannel], error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
}

func NewSubscriptionUseCase(subscriptionRepo persistent.SubscriptionRepository) SubscriptionUseCase {
	return &subscriptionUseCase{subscriptionRepo: subscriptionRepo}
}

func (uc *subscriptionUseCase) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, response.Conflict("you cannot subscribe to your own channel")
	}

	subscribed, err := uc.subscriptionRepo.Toggle(ctx, subscriberID, channelID)
	if err != nil {
		return false, mapRepoErr(err, "channel")
	}
	return subscribed, nil
}

func (uc *subscriptionUseCase) ListSubscribers(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.Subscriber], error) {
	return uc.subscriptionRepo.ListSubscribers(ctx, channelID, page, limit)
}

func (uc *subscriptionUseCase) ListSubscribed(ctx context.Context, subscriberID string, page, limit int) (*pipeline.Page[entity.SubscribedChannel], error) {
	return uc.subscriptionRepo.ListSubscribed(ctx, subscriberID, page, limit)
}
