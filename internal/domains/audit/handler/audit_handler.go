package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/audit/service"
	"portfolio-backend/internal/shared/response"
)

type AuditHandler struct {
	service service.ServiceInterface
}

func NewAuditHandler(s service.ServiceInterface) *AuditHandler {
	return &AuditHandler{service: s}
}

// List - GET /api/v1/admin/audit-log?table=&record_id=&limit=
func (h *AuditHandler) List(c *gin.Context) {
	filter := model.Filter{
		TableName: c.Query("table"),
		RecordID:  c.Query("record_id"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		filter.Limit = limit
	}

	entries, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Failed to list audit log")
		response.InternalServerError(c, "failed to load audit log")
		return
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	response.Success(c, http.StatusOK, entries)
}
