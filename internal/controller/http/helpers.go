package http

import (
	"strconv"

	"streamtube/internal/pipeline"
	"streamtube/pkg/middleware"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const refreshTokenCookie = "refreshToken"

// principalID is the authenticated user's id, empty for anonymous requests.
func principalID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// pathID validates the id path parameter before anything touches the store.
func pathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		return "", response.Validation("invalid " + param)
	}
	return id, nil
}

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = pipeline.DefaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = pipeline.DefaultLimit
	}
	return page, limit
}
