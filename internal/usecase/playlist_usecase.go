package usecase

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
	"streamtube/pkg/response"
)

type PlaylistUseCase interface {
	Create(ctx context.Context, ownerID, name, description string, isPrivate bool) (*entity.Playlist, error)
	GetByID(ctx context.Context, id, principalID string) (*entity.PlaylistView, error)
	ListForUser(ctx context.Context, userID, principalID string, page, limit int) (*pipeline.Page[entity.PlaylistView], error)
	Update(ctx context.Context, id, ownerID, name, description string, isPrivate bool) (*entity.Playlist, error)
	Delete(ctx context.Context, id, ownerID string) error
	AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
}

func NewPlaylistUseCase(playlistRepo persistent.PlaylistRepository, videoRepo persistent.VideoRepository) PlaylistUseCase {
	return &playlistUseCase{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

func (uc *playlistUseCase) Create(ctx context.Context, ownerID, name, description string, isPrivate bool) (*entity.Playlist, error) {
	playlist := &entity.Playlist{
		Name:        name,
		Description: description,
		IsPrivate:   isPrivate,
		OwnerID:     ownerID,
	}
	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetByID resolves the playlist view. Private playlists are readable only
// by their owner; everyone else gets an authorization error.
func (uc *playlistUseCase) GetByID(ctx context.Context, id, principalID string) (*entity.PlaylistView, error) {
	playlist, err := uc.playlistRepo.GetViewByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "playlist")
	}
	if playlist.IsPrivate && playlist.OwnerID != principalID {
		return nil, response.Forbidden("unauthorized access to private playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) ListForUser(ctx context.Context, userID, principalID string, page, limit int) (*pipeline.Page[entity.PlaylistView], error) {
	includePrivate := userID == principalID && userID != ""
	return uc.playlistRepo.ListForUser(ctx, userID, includePrivate, page, limit)
}

func (uc *playlistUseCase) Update(ctx context.Context, id, ownerID, name, description string, isPrivate bool) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.Update(ctx, id, ownerID, name, description, isPrivate)
	if err != nil {
		return nil, mapRepoErr(err, "playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) Delete(ctx context.Context, id, ownerID string) error {
	if err := uc.playlistRepo.Delete(ctx, id, ownerID); err != nil {
		return mapRepoErr(err, "playlist")
	}
	return nil
}

func (uc *playlistUseCase) AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, mapRepoErr(err, "video")
	}

	playlist, err := uc.playlistRepo.AddVideo(ctx, id, ownerID, videoID)
	if err != nil {
		if err == persistent.ErrDuplicate {
			return nil, response.Conflict("video is already in the playlist")
		}
		return nil, mapRepoErr(err, "playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.RemoveVideo(ctx, id, ownerID, videoID)
	if err != nil {
		return nil, mapRepoErr(err, "playlist")
	}
	return playlist, nil
}
