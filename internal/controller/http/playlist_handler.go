package http

import (
	"context"
	"net/http"

	"streamtube/internal/entity"
	"streamtube/internal/usecase"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{playlistUseCase: playlistUseCase}
}

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
}

// Create godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlaylistRequest true "Playlist fields"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("invalid playlist payload", err.Error()))
		return
	}

	playlist, err := h.playlistUseCase.Create(c.Request.Context(), principalID(c), req.Name, req.Description, req.IsPrivate)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, playlist, "playlist created successfully")
}

// GetByID godoc
// @Summary      Get a playlist
// @Description  Private playlists are visible only to their owner
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	playlist, err := h.playlistUseCase.GetByID(c.Request.Context(), id, principalID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, playlist, "playlist fetched successfully")
}

// ListForUser godoc
// @Summary      List a user's playlists
// @Description  Private playlists appear only when the owner lists their own
// @Tags         playlists
// @Produce      json
// @Param        userId path string true "User id"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Router       /playlists/user/{userId} [get]
func (h *PlaylistHandler) ListForUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		response.Fail(c, err)
		return
	}
	page, limit := parsePagination(c)

	playlists, err := h.playlistUseCase.ListForUser(c.Request.Context(), userID, principalID(c), page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, playlists, "playlists fetched successfully")
}

// Update godoc
// @Summary      Update a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist id"
// @Param        request body PlaylistRequest true "Playlist fields"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /playlists/{id} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("invalid playlist payload", err.Error()))
		return
	}

	playlist, err := h.playlistUseCase.Update(c.Request.Context(), id, principalID(c), req.Name, req.Description, req.IsPrivate)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, playlist, "playlist updated successfully")
}

// Delete godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.playlistUseCase.Delete(c.Request.Context(), id, principalID(c)); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil, "playlist deleted successfully")
}

// AddVideo godoc
// @Summary      Add a video to a playlist
// @Description  Adding a video twice is rejected
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist id"
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /playlists/{id}/videos/{videoId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	h.mutateVideo(c, h.playlistUseCase.AddVideo, "video added to playlist")
}

// RemoveVideo godoc
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist id"
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /playlists/{id}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	h.mutateVideo(c, h.playlistUseCase.RemoveVideo, "video removed from playlist")
}

func (h *PlaylistHandler) mutateVideo(
	c *gin.Context,
	mutate func(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error),
	message string,
) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		response.Fail(c, err)
		return
	}

	playlist, err := mutate(c.Request.Context(), id, principalID(c), videoID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, playlist, message)
}
