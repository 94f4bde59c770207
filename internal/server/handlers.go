// Package server exposes the transfer-list generator over HTTP: a paste
// form, a JSON preview endpoint and a file download endpoint.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"paylist/internal/generator"
	"paylist/internal/logging"
	"paylist/internal/models"
	"paylist/internal/tabular"
)

// GenerateRequest is the JSON body of the preview and generate endpoints.
// Both tables arrive exactly as pasted, delimiters and all.
type GenerateRequest struct {
	Invoices string `json:"invoices"`
	Trips    string `json:"trips"`
}

// Preview is the payload of the preview endpoint: everything the user needs
// to verify the batch before downloading it.
type Preview struct {
	Transfers     []models.TransferRecord `json:"transfers"`
	TransferCount int                     `json:"transferCount"`
	TotalAmount   string                  `json:"totalAmount"`
	Skipped       []models.SkippedRow     `json:"skipped"`
	Filename      string                  `json:"filename"`
}

// Handler serves the paste form and the two processing endpoints.
type Handler struct {
	generator       *generator.Generator
	outputDelimiter rune
	log             logging.Logger
	now             func() time.Time
}

// NewHandler creates a Handler around a configured generator.
func NewHandler(gen *generator.Generator, outputDelimiter rune, log logging.Logger) *Handler {
	return &Handler{
		generator:       gen,
		outputDelimiter: outputDelimiter,
		log:             log,
		now:             time.Now,
	}
}

// Index serves the paste form.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// Preview runs both pipelines and returns the resulting records, the total
// and the skipped-row diagnostics without producing a file.
func (h *Handler) Preview(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.generator.Generate(req.Invoices, req.Trips)
	if err != nil {
		status, code, msg := MapGenerateError(err)
		RespondError(c, status, code, msg)
		return
	}

	total, err := result.Total()
	if err != nil {
		h.internalError(c, err)
		return
	}

	RespondOK(c, Preview{
		Transfers:     result.Transfers,
		TransferCount: len(result.Transfers),
		TotalAmount:   total.StringFixed(2),
		Skipped:       result.Skipped,
		Filename:      generator.OutputFileName(h.now()),
	})
}

// Generate runs the pipelines and streams the rendered transfer list as a
// date-stamped download.
func (h *Handler) Generate(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.generator.Generate(req.Invoices, req.Trips)
	if err != nil {
		status, code, msg := MapGenerateError(err)
		RespondError(c, status, code, msg)
		return
	}

	out, err := tabular.WriteTransfers(result.Transfers, h.outputDelimiter)
	if err != nil {
		h.internalError(c, err)
		return
	}

	filename := generator.OutputFileName(h.now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

func (h *Handler) bindRequest(c *gin.Context) (GenerateRequest, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JSON",
			"request body must be JSON with invoices and trips fields")
		return GenerateRequest{}, false
	}
	return req, true
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.log.WithError(err).Error("Request failed",
		logging.Field{Key: logging.FieldRequestID, Value: c.GetString(ContextRequestID)})
	RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
}
