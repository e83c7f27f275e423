package usecase

import (
	"context"
	"fmt"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
)

type LikeUseCase interface {
	Toggle(ctx context.Context, principalID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	GetLikedVideos(ctx context.Context, principalID string, page, limit int) (*pipeline.Page[entity.LikedVideo], error)
}

type likeUseCase struct {
	likeRepo persistent.LikeRepository
}

func NewLikeUseCase(likeRepo persistent.LikeRepository) LikeUseCase {
	return &likeUseCase{likeRepo: likeRepo}
}

func (uc *likeUseCase) Toggle(ctx context.Context, principalID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	liked, err := uc.likeRepo.Toggle(ctx, principalID, kind, targetID)
	if err != nil {
		return false, mapRepoErr(err, fmt.Sprint(kind))
	}
	return liked, nil
}

func (uc *likeUseCase) GetLikedVideos(ctx context.Context, principalID string, page, limit int) (*pipeline.Page[entity.LikedVideo], error) {
	return uc.likeRepo.GetLikedVideos(ctx, principalID, page, limit)
}
