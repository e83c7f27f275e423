package http

import (
	"net/http"

	"streamtube/internal/usecase"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase) *TweetHandler {
	return &TweetHandler{tweetUseCase: tweetUseCase}
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create godoc
// @Summary      Create a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("tweet content is required", err.Error()))
		return
	}

	tweet, err := h.tweetUseCase.Create(c.Request.Context(), principalID(c), req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, tweet, "tweet created successfully")
}

// ListForUser godoc
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Param        userId path string true "User id"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) ListForUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		response.Fail(c, err)
		return
	}
	page, limit := parsePagination(c)

	tweets, err := h.tweetUseCase.ListForUser(c.Request.Context(), userID, principalID(c), page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, tweets, "tweets fetched successfully")
}

// Update godoc
// @Summary      Update a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet id"
// @Param        request body TweetRequest true "Tweet content"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Validation("tweet content is required", err.Error()))
		return
	}

	tweet, err := h.tweetUseCase.Update(c.Request.Context(), id, principalID(c), req.Content)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, tweet, "tweet updated successfully")
}

// Delete godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.tweetUseCase.Delete(c.Request.Context(), id, principalID(c)); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, nil, "tweet deleted successfully")
}
