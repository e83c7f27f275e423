package usecase

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
)

type TweetUseCase interface {
	Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error)
	ListForUser(ctx context.Context, userID, principalID string, page, limit int) (*pipeline.Page[entity.TweetView], error)
	Update(ctx context.Context, id, ownerID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository) TweetUseCase {
	return &tweetUseCase{tweetRepo: tweetRepo}
}

func (uc *tweetUseCase) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	tweet := &entity.Tweet{
		Content: content,
		OwnerID: ownerID,
	}
	if err := uc.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListForUser(ctx context.Context, userID, principalID string, page, limit int) (*pipeline.Page[entity.TweetView], error) {
	return uc.tweetRepo.ListForUser(ctx, userID, principalID, page, limit)
}

func (uc *tweetUseCase) Update(ctx context.Context, id, ownerID, content string) (*entity.Tweet, error) {
	tweet, err := uc.tweetRepo.Update(ctx, id, ownerID, content)
	if err != nil {
		return nil, mapRepoErr(err, "tweet")
	}
	return tweet, nil
}

func (uc *tweetUseCase) Delete(ctx context.Context, id, ownerID string) error {
	if err := uc.tweetRepo.Delete(ctx, id, ownerID); err != nil {
		return mapRepoErr(err, "tweet")
	}
	return nil
}
