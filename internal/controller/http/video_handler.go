package http

import (
	"net/http"

	"streamtube/internal/repo/persistent"
	"streamtube/internal/usecase"
	"streamtube/pkg/logger"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase, logger: logger}
}

// List godoc
// @Summary      List videos
// @Description  Paginated published videos with optional free-text and owner filters
// @Tags         videos
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Param        query query string false "Free-text filter over title and description"
// @Param        userId query string false "Filter by owner id"
// @Param        sortBy query string false "Sort field (created_at, views, duration, title)"
// @Param        sortType query string false "asc or desc"
// @Success      200  {object}  response.Response
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	ownerID := c.Query("userId")
	if ownerID != "" {
		if _, err := uuid.Parse(ownerID); err != nil {
			response.Fail(c, response.Validation("invalid userId"))
			return
		}
	}

	q := persistent.VideoListQuery{
		Query:       c.Query("query"),
		OwnerID:     ownerID,
		SortBy:      c.Query("sortBy"),
		SortType:    c.Query("sortType"),
		Page:        page,
		Limit:       limit,
		PrincipalID: principalID(c),
	}

	videos, err := h.videoUseCase.List(c.Request.Context(), q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, videos, "videos fetched successfully")
}

type PublishVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// Publish godoc
// @Summary      Publish a video
// @Description  Uploads the video and thumbnail, probes duration and creates the record
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string true "Description"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, response.Validation("invalid video payload", err.Error()))
		return
	}

	input := usecase.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if file, err := c.FormFile("videoFile"); err == nil {
		input.VideoFile = file
	}
	if thumb, err := c.FormFile("thumbnail"); err == nil {
		input.Thumbnail = thumb
	}

	video, err := h.videoUseCase.Publish(c.Request.Context(), principalID(c), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, video, "video published successfully")
}

// GetByID godoc
// @Summary      Get a video
// @Description  Published videos are public; unpublished ones are visible only to their owner
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	video, err := h.videoUseCase.GetByID(c.Request.Context(), id, principalID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, video, "video fetched successfully")
}

type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// Update godoc
// @Summary      Update a video
// @Description  Owner-only; replaces the thumbnail when a new one is uploaded
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video id"
// @Param        title formData string false "Title"
// @Param        description formData string false "Description"
// @Param        thumbnail formData file false "Thumbnail image"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, response.Validation("invalid video payload", err.Error()))
		return
	}
	thumbnail, _ := c.FormFile("thumbnail")

	video, err := h.videoUseCase.Update(c.Request.Context(), id, principalID(c), req.Title, req.Description, thumbnail)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, video, "video updated successfully")
}

// Delete godoc
// @Summary      Delete a video
// @Description  Owner-only; cascades likes and comments and removes stored media
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.videoUseCase.Delete(c.Request.Context(), id, principalID(c)); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil, "video deleted successfully")
}

// TogglePublish godoc
// @Summary      Toggle publish state
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /videos/{id}/toggle-publish [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	video, err := h.videoUseCase.TogglePublish(c.Request.Context(), id, principalID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, video, "publish state toggled successfully")
}
