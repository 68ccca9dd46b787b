package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/internal/domains/admin/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

type AdminHandler struct {
	service service.ServiceInterface
}

func NewAdminHandler(s service.ServiceInterface) *AdminHandler {
	return &AdminHandler{service: s}
}

// Login xử lý POST /api/v1/auth/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Me xử lý GET /api/v1/auth/me
func (h *AdminHandler) Me(c *gin.Context) {
	u, err := h.service.Me(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *AdminHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, model.ErrAdminNotFound):
		// token hợp lệ nhưng admin đã bị xoá
		response.Unauthorized(c, "admin account no longer exists")
	default:
		log.Error().Err(err).Str("request_id", c.GetString(middleware.ContextRequestID)).Msg("Auth request failed")
		response.InternalServerError(c, "internal server error")
	}
}
