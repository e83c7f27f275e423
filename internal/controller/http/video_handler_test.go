package http

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
	"streamtube/internal/usecase"
	"streamtube/pkg/logger"
	"streamtube/pkg/middleware"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVideoUseCase is a mock implementation of VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) List(ctx context.Context, q persistent.VideoListQuery) (*pipeline.Page[entity.VideoView], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Page[entity.VideoView]), args.Error(1)
}

func (m *MockVideoUseCase) Publish(ctx context.Context, ownerID string, input usecase.PublishVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetByID(ctx context.Context, id, principalID string) (*entity.VideoView, error) {
	args := m.Called(ctx, id, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoView), args.Error(1)
}

func (m *MockVideoUseCase) Update(ctx context.Context, id, ownerID, title, description string, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	args := m.Called(ctx, id, ownerID, title, description, thumbnail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockVideoUseCase) TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

var _ usecase.VideoUseCase = (*MockVideoUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decodeEnvelope(t *testing.T, body []byte) response.Response {
	t.Helper()
	var env response.Response
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestGetVideo_Success(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id", handler.GetByID)

	videoID := uuid.New().String()
	view := &entity.VideoView{ID: videoID, Title: "demo", IsPublished: true}
	mockUseCase.On("GetByID", mock.Anything, videoID, "").Return(view, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/"+videoID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	mockUseCase.AssertExpectations(t)
}

func TestGetVideo_InvalidID(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id", handler.GetByID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	mockUseCase.AssertNotCalled(t, "GetByID")
}

func TestGetVideo_NotFound(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id", handler.GetByID)

	videoID := uuid.New().String()
	mockUseCase.On("GetByID", mock.Anything, videoID, "").Return(nil, response.NotFound("video not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/"+videoID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "video not found", env.Message)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteVideo_Forbidden(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/videos/:id", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "intruder")
		handler.Delete(c)
	})

	videoID := uuid.New().String()
	mockUseCase.On("Delete", mock.Anything, videoID, "intruder").Return(response.Forbidden("you do not own this video"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/videos/"+videoID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListVideos_PassesFilters(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos", handler.List)

	ownerID := uuid.New().String()
	expected := persistent.VideoListQuery{
		Query:    "cats",
		OwnerID:  ownerID,
		SortBy:   "views",
		SortType: "asc",
		Page:     2,
		Limit:    5,
	}
	page := &pipeline.Page[entity.VideoView]{Items: []entity.VideoView{}, Page: 2, Limit: 5}
	mockUseCase.On("List", mock.Anything, expected).Return(page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?query=cats&userId="+ownerID+"&sortBy=views&sortType=asc&page=2&limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListVideos_InvalidOwnerFilter(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos", handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?userId=nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "List")
}
