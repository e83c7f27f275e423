package http

import (
	"net/http"
	"time"

	"streamtube/pkg/response"
	"streamtube/pkg/surreal"

	"github.com/gin-gonic/gin"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

type HealthHandler struct {
	db      *surrealdb.DB
	started time.Time
}

func NewHealthHandler(db *surrealdb.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// Check godoc
// @Summary      Health check
// @Description  Reports uptime and store connectivity
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /healthcheck [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if err := surreal.Ping(c.Request.Context(), h.db); err != nil {
		response.Fail(c, response.Upstream("store is unreachable"))
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).String(),
	}, "service is healthy")
}
