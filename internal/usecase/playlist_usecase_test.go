package usecase

import (
	"context"
	"testing"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
	"streamtube/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlaylistRepository is a mock implementation of PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetViewByID(ctx context.Context, id string) (*entity.PlaylistView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistView), args.Error(1)
}

func (m *MockPlaylistRepository) ListForUser(ctx context.Context, userID string, includePrivate bool, page, limit int) (*pipeline.Page[entity.PlaylistView], error) {
	args := m.Called(ctx, userID, includePrivate, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Page[entity.PlaylistView]), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, id, ownerID, name, description string, isPrivate bool) (*entity.Playlist, error) {
	args := m.Called(ctx, id, ownerID, name, description, isPrivate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, id, ownerID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	args := m.Called(ctx, id, ownerID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

func TestGetPlaylistByID_PrivateForbiddenForStranger(t *testing.T) {
	mockRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(mockRepo, nil)

	view := &entity.PlaylistView{ID: "playlist-1", Name: "watch later", IsPrivate: true, OwnerID: "user-a"}
	mockRepo.On("GetViewByID", mock.Anything, "playlist-1").Return(view, nil)

	_, err := uc.GetByID(context.Background(), "playlist-1", "user-b")

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 403, respErr.Code)
}

func TestGetPlaylistByID_PrivateVisibleToOwner(t *testing.T) {
	mockRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(mockRepo, nil)

	view := &entity.PlaylistView{ID: "playlist-1", Name: "watch later", IsPrivate: true, OwnerID: "user-a"}
	mockRepo.On("GetViewByID", mock.Anything, "playlist-1").Return(view, nil)

	got, err := uc.GetByID(context.Background(), "playlist-1", "user-a")

	assert.NoError(t, err)
	assert.Equal(t, "playlist-1", got.ID)
}

func TestGetPlaylistByID_PublicVisibleToAnonymous(t *testing.T) {
	mockRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(mockRepo, nil)

	view := &entity.PlaylistView{ID: "playlist-1", Name: "favorites", IsPrivate: false, OwnerID: "user-a"}
	mockRepo.On("GetViewByID", mock.Anything, "playlist-1").Return(view, nil)

	got, err := uc.GetByID(context.Background(), "playlist-1", "")

	assert.NoError(t, err)
	assert.Equal(t, "favorites", got.Name)
}

func TestGetPlaylistByID_Missing(t *testing.T) {
	mockRepo := new(MockPlaylistRepository)
	uc := NewPlaylistUseCase(mockRepo, nil)

	mockRepo.On("GetViewByID", mock.Anything, "playlist-404").
		Return(nil, persistent.ErrNotFound)

	_, err := uc.GetByID(context.Background(), "playlist-404", "user-a")

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 404, respErr.Code)
}
