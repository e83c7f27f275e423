package http

import (
	"net/http"

	"streamtube/internal/usecase"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

// ListForVideo godoc
// @Summary      List comments for a video
// @Tags         comments
// @Produce      json
// @Param        videoId path string true "Video id"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) ListForVideo(c *gin.Context) {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		response.Fail(c, err)
		return
	}
	page, limit := parsePagination(c)

	comments, err := h.commentUseCase.ListForVideo(c.Request.Context(), videoID, principalID(c), page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, comments, "comments fetched successfully")
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Add godoc
// @Summary      Add a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Param        request body CommentRequest true "Comment content"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) Add(c *gin.Context) {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("comment content is required", err.Error()))
		return
	}

	comment, err := h.commentUseCase.Add(c.Request.Context(), videoID, principalID(c), req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, comment, "comment added successfully")
}

// Update godoc
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment id"
// @Param        request body CommentRequest true "Comment content"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/c/{id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("comment content is required", err.Error()))
		return
	}

	comment, err := h.commentUseCase.Update(c.Request.Context(), id, principalID(c), req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, comment, "comment updated successfully")
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /comments/c/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.commentUseCase.Delete(c.Request.Context(), id, principalID(c)); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil, "comment deleted successfully")
}
