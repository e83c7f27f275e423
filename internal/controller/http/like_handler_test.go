package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/usecase"
	"streamtube/pkg/middleware"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) Toggle(ctx context.Context, principalID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	args := m.Called(ctx, principalID, kind, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) GetLikedVideos(ctx context.Context, principalID string, page, limit int) (*pipeline.Page[entity.LikedVideo], error) {
	args := m.Called(ctx, principalID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Page[entity.LikedVideo]), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

func TestToggleVideoLike_Added(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/toggle/v/:videoId", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-123")
		handler.ToggleVideoLike(c)
	})

	videoID := uuid.New().String()
	mockUseCase.On("Toggle", mock.Anything, "user-123", entity.LikeTargetVideo, videoID).Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/toggle/v/"+videoID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var env response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "like added", env.Message)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, true, data["liked"])
	mockUseCase.AssertExpectations(t)
}

func TestToggleVideoLike_Removed(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/toggle/v/:videoId", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-123")
		handler.ToggleVideoLike(c)
	})

	videoID := uuid.New().String()
	mockUseCase.On("Toggle", mock.Anything, "user-123", entity.LikeTargetVideo, videoID).Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/toggle/v/"+videoID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var env response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "like removed", env.Message)
	mockUseCase.AssertExpectations(t)
}

func TestToggleCommentLike_TargetMissing(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/toggle/c/:commentId", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-123")
		handler.ToggleCommentLike(c)
	})

	commentID := uuid.New().String()
	mockUseCase.On("Toggle", mock.Anything, "user-123", entity.LikeTargetComment, commentID).
		Return(false, response.NotFound("comment not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/toggle/c/"+commentID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleTweetLike_InvalidID(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/likes/toggle/t/:tweetId", handler.ToggleTweetLike)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/toggle/t/garbage", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Toggle")
}
