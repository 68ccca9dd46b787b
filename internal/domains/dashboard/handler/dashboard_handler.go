package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/dashboard/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type DashboardHandler struct {
	service service.ServiceInterface
}

func NewDashboardHandler(s service.ServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// Stats - GET /api/v1/admin/dashboard-stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString(middleware.ContextRequestID)).Msg("Failed to load dashboard stats")
		response.InternalServerError(c, "failed to load dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
