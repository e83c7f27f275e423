package usecase

import (
	"context"
	"testing"
	"time"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
	"streamtube/pkg/jwt"
	"streamtube/pkg/logger"
	"streamtube/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, id, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id, fullname, email string) (*entity.User, error) {
	args := m.Called(ctx, id, fullname, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) (*entity.User, error) {
	args := m.Called(ctx, id, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*entity.User, error) {
	args := m.Called(ctx, id, coverImageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, username, principalID string) (*entity.ChannelProfile, error) {
	args := m.Called(ctx, username, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) AddToWatchHistory(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) GetWatchHistory(ctx context.Context, userID string, page, limit int) (*pipeline.Page[entity.VideoView], error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Page[entity.VideoView]), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func newJWTServiceForTest() *jwt.Service {
	return jwt.NewService("test-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, newJWTServiceForTest(), nil, logger.New())

	stored := &entity.User{ID: "user-1", Username: "alice", Password: hashPassword(t, "secret123")}
	mockRepo.On("GetByUsernameOrEmail", mock.Anything, "alice", "alice").Return(stored, nil)
	mockRepo.On("UpdateRefreshToken", mock.Anything, "user-1", mock.AnythingOfType("string")).Return(nil)

	user, tokens, err := uc.Login(context.Background(), "alice", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, newJWTServiceForTest(), nil, logger.New())

	stored := &entity.User{ID: "user-1", Username: "alice", Password: hashPassword(t, "secret123")}
	mockRepo.On("GetByUsernameOrEmail", mock.Anything, "alice", "alice").Return(stored, nil)

	_, _, err := uc.Login(context.Background(), "alice", "wrong")

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 401, respErr.Code)
	mockRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, newJWTServiceForTest(), nil, logger.New())

	mockRepo.On("GetByUsernameOrEmail", mock.Anything, "ghost", "ghost").
		Return(nil, persistent.ErrNotFound)

	_, _, err := uc.Login(context.Background(), "ghost", "whatever")

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 404, respErr.Code)
}

func TestRefreshTokens_Rotates(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := newJWTServiceForTest()
	uc := NewUserUseCase(mockRepo, jwtService, nil, logger.New())

	refreshToken, err := jwtService.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	stored := &entity.User{ID: "user-1", RefreshToken: refreshToken}
	mockRepo.On("GetByID", mock.Anything, "user-1").Return(stored, nil)
	mockRepo.On("UpdateRefreshToken", mock.Anything, "user-1", mock.AnythingOfType("string")).Return(nil)

	tokens, err := uc.RefreshTokens(context.Background(), refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	mockRepo.AssertExpectations(t)
}

func TestRefreshTokens_Revoked(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := newJWTServiceForTest()
	uc := NewUserUseCase(mockRepo, jwtService, nil, logger.New())

	refreshToken, err := jwtService.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	// logout cleared the stored token, so the presented one is stale
	stored := &entity.User{ID: "user-1", RefreshToken: ""}
	mockRepo.On("GetByID", mock.Anything, "user-1").Return(stored, nil)

	_, err = uc.RefreshTokens(context.Background(), refreshToken)

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 401, respErr.Code)
	mockRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshTokens_Garbage(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, newJWTServiceForTest(), nil, logger.New())

	_, err := uc.RefreshTokens(context.Background(), "not-a-jwt")

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 401, respErr.Code)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, newJWTServiceForTest(), nil, logger.New())

	stored := &entity.User{ID: "user-1", Password: hashPassword(t, "current")}
	mockRepo.On("GetByID", mock.Anything, "user-1").Return(stored, nil)

	err := uc.ChangePassword(context.Background(), "user-1", "wrong", "next")

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 400, respErr.Code)
	mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_MissingAvatar(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, newJWTServiceForTest(), nil, logger.New())

	_, err := uc.Register(context.Background(), RegisterInput{Username: "alice", Email: "alice@example.com"})

	var respErr *response.Error
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, 400, respErr.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
