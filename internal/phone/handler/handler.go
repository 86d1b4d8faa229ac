package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phonedesk/internal/phone/region"
	"phonedesk/internal/phone/service"
	"phonedesk/internal/phone/transport"
	"phonedesk/platform/httpkit"
	"phonedesk/platform/validator"
)

// Handler handles HTTP requests for phone number queries.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new phone handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Info returns the full record for one number.
// GET /api/v1/phone/info?number=...
func (h *Handler) Info(c *gin.Context) {
	var req transport.InfoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	record, err := h.svc.Info(req.Number)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, record)
}

// Normalize formats a batch of numbers.
// POST /api/v1/phone/normalize
func (h *Handler) Normalize(c *gin.Context) {
	var req transport.NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	results, err := h.svc.Normalize(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NormalizePayload(results))
}

// NormalizePreset formats a batch of numbers under a fixed country preset.
// POST /api/v1/phone/normalize/:preset
func (h *Handler) NormalizePreset(c *gin.Context) {
	preset, ok := region.Presets()[c.Param("preset")]
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "unknown preset", nil)
		return
	}

	var req transport.PresetNormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	results, err := h.svc.NormalizePreset(preset, req.Numbers, req.StripWhitespace)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NormalizePayload(results))
}

// Validate reports the boolean verdict for one number. A number that fails
// construction answers 200 with a false payload; it is not an error.
// GET /api/v1/phone/validate?number=...
func (h *Handler) Validate(c *gin.Context) {
	var req transport.ValidateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, transport.ValidityResponse{
		Number: req.Number,
		Valid:  h.svc.IsValid(req.Number),
	})
}
