package http

import (
	"net/http"

	"streamtube/internal/entity"
	"streamtube/internal/usecase"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase) *LikeHandler {
	return &LikeHandler{likeUseCase: likeUseCase}
}

// ToggleVideoLike godoc
// @Summary      Toggle a video like
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetVideo, "videoId")
}

// ToggleCommentLike godoc
// @Summary      Toggle a comment like
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetComment, "commentId")
}

// ToggleTweetLike godoc
// @Summary      Toggle a tweet like
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.LikeTargetTweet, "tweetId")
}

func (h *LikeHandler) toggle(c *gin.Context, kind entity.LikeTargetKind, param string) {
	targetID, err := pathID(c, param)
	if err != nil {
		response.Fail(c, err)
		return
	}

	liked, err := h.likeUseCase.Toggle(c.Request.Context(), principalID(c), kind, targetID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	message := "like removed"
	if liked {
		message = "like added"
	}
	response.OK(c, http.StatusOK, gin.H{"liked": liked}, message)
}

// LikedVideos godoc
// @Summary      List liked videos
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Router       /likes/videos [get]
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	page, limit := parsePagination(c)

	videos, err := h.likeUseCase.GetLikedVideos(c.Request.Context(), principalID(c), page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, videos, "liked videos fetched successfully")
}
