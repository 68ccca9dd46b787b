package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/content/model"
	"portfolio-backend/internal/domains/content/service"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
)

// EntityHandler phục vụ CRUD + import cho một entity kind
type EntityHandler[T model.Record] struct {
	schema         *model.Schema[T]
	entities       service.EntityServiceInterface[T]
	importer       service.ImportServiceInterface
	maxImportBytes int64
}

func NewEntityHandler[T model.Record](
	schema *model.Schema[T],
	entities service.EntityServiceInterface[T],
	importer service.ImportServiceInterface,
	maxImportBytes int64,
) *EntityHandler[T] {
	return &EntityHandler[T]{
		schema:         schema,
		entities:       entities,
		importer:       importer,
		maxImportBytes: maxImportBytes,
	}
}

// RegisterRoutes: admin group phải đi qua AuthMiddleware trước
func (h *EntityHandler[T]) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/"+h.schema.Table, h.PublicList)

	g := admin.Group("/" + h.schema.Table)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/import", h.Import)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// PublicList - GET /api/v1/{table}
func (h *EntityHandler[T]) PublicList(c *gin.Context) {
	items, err := h.entities.PublicList(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// List - GET /api/v1/admin/{table}
func (h *EntityHandler[T]) List(c *gin.Context) {
	items, err := h.entities.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get - GET /api/v1/admin/{table}/:id
func (h *EntityHandler[T]) Get(c *gin.Context) {
	rec, err := h.entities.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create - POST /api/v1/admin/{table}
func (h *EntityHandler[T]) Create(c *gin.Context) {
	body, ok := h.bindObject(c)
	if !ok {
		return
	}
	rec, err := h.entities.Create(c.Request.Context(), middleware.ActorID(c), body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Update - PUT/PATCH /api/v1/admin/{table}/:id (partial)
func (h *EntityHandler[T]) Update(c *gin.Context) {
	body, ok := h.bindObject(c)
	if !ok {
		return
	}
	rec, err := h.entities.Update(c.Request.Context(), middleware.ActorID(c), c.Param("id"), body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete - DELETE /api/v1/admin/{table}/:id
func (h *EntityHandler[T]) Delete(c *gin.Context) {
	if err := h.entities.Delete(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Import - POST /api/v1/admin/{table}/import
// 201 khi mọi record thành công, 207 khi có record lỗi, 400 khi body sai dạng
func (h *EntityHandler[T]) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImportBytes)

	payload, err := decodeJSON(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				fmt.Sprintf("import payload exceeds %d bytes", tooLarge.Limit))
			return
		}
		h.fail(c, model.NewPayloadError("Invalid JSON: %v", err))
		return
	}

	actor := middleware.ActorID(c)
	result, err := h.importer.Import(c.Request.Context(), actor, payload)
	if err != nil {
		h.fail(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// bindObject đọc body JSON object; số giữ dạng json.Number
func (h *EntityHandler[T]) bindObject(c *gin.Context) (model.RawRecord, bool) {
	payload, err := decodeJSON(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Invalid JSON: "+err.Error())
		return nil, false
	}
	body, ok := payload.(map[string]any)
	if !ok {
		response.BadRequest(c, "request body must be a JSON object")
		return nil, false
	}
	return body, true
}

func (h *EntityHandler[T]) fail(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.ContextRequestID)).
			Str("table", h.schema.Table).
			Msg("Content request failed")
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		response.ErrorWithDetails(c, status, model.ToErrorCode(err), err.Error(), ve.Result)
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}

func decodeJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}
