package usecase

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
)

type CommentUseCase interface {
	ListForVideo(ctx context.Context, videoID, principalID string, page, limit int) (*pipeline.Page[entity.CommentView], error)
	Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error)
	Update(ctx context.Context, id, ownerID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, videoRepo persistent.VideoRepository) CommentUseCase {
	return &commentUseCase{commentRepo: commentRepo, videoRepo: videoRepo}
}

func (uc *commentUseCase) ListForVideo(ctx context.Context, videoID, principalID string, page, limit int) (*pipeline.Page[entity.CommentView], error) {
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, mapRepoErr(err, "video")
	}
	return uc.commentRepo.ListForVideo(ctx, videoID, principalID, page, limit)
}

func (uc *commentUseCase) Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, mapRepoErr(err, "video")
	}

	comment := &entity.Comment{
		Content: content,
		VideoID: videoID,
		OwnerID: ownerID,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) Update(ctx context.Context, id, ownerID, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.Update(ctx, id, ownerID, content)
	if err != nil {
		return nil, mapRepoErr(err, "comment")
	}
	return comment, nil
}

func (uc *commentUseCase) Delete(ctx context.Context, id, ownerID string) error {
	if err := uc.commentRepo.Delete(ctx, id, ownerID); err != nil {
		return mapRepoErr(err, "comment")
	}
	return nil
}
