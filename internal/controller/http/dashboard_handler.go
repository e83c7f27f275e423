package http

import (
	"net/http"

	"streamtube/internal/usecase"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

// Stats godoc
// @Summary      Channel stats
// @Description  Totals for views, subscribers, videos and likes plus recent uploads
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUseCase.GetChannelStats(c.Request.Context(), principalID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, stats, "channel stats fetched successfully")
}

// Videos godoc
// @Summary      Channel videos
// @Description  The caller's uploads, unpublished included
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  response.Response
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) Videos(c *gin.Context) {
	page, limit := parsePagination(c)

	videos, err := h.dashboardUseCase.GetChannelVideos(c.Request.Context(), principalID(c), page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, videos, "channel videos fetched successfully")
}
