// Package handlers exposes the worksheet pipeline over HTTP.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	worksheet "github.com/spellingplay/worksheetgen"
)

// WorksheetHandler serves worksheet generation requests.
type WorksheetHandler struct {
	svc *worksheet.Service
	log *zap.SugaredLogger
}

// NewWorksheetHandler creates the handler.
func NewWorksheetHandler(svc *worksheet.Service, log *zap.SugaredLogger) *WorksheetHandler {
	return &WorksheetHandler{svc: svc, log: log.With("handler", "worksheet")}
}

// GeneratePDF handles POST /api/generate-pdf.
func (h *WorksheetHandler) GeneratePDF(c *gin.Context) {
	h.generate(c, h.svc.GeneratePDF, true)
}

// GeneratePreview handles POST /api/generate-preview.
func (h *WorksheetHandler) GeneratePreview(c *gin.Context) {
	h.generate(c, h.svc.GeneratePreview, false)
}

// ListActivities handles GET /api/activities.
func (h *WorksheetHandler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, worksheet.Activities())
}

type generateFunc func(ctx context.Context, req worksheet.Request) (*worksheet.Result, error)

func (h *WorksheetHandler) generate(c *gin.Context, run generateFunc, attachment bool) {
	var req worksheet.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := run(c.Request.Context(), req)
	if err != nil {
		status, msg := classify(err, req)
		if status >= http.StatusInternalServerError {
			h.log.Errorw("worksheet generation failed", "activity", req.Activity, "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if attachment {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	}
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}

// classify maps pipeline errors to HTTP status codes and client messages.
func classify(err error, req worksheet.Request) (int, string) {
	switch {
	case errors.Is(err, worksheet.ErrUnknownActivity):
		return http.StatusBadRequest, fmt.Sprintf("Unknown activity: %s", req.Activity)
	case errors.Is(err, worksheet.ErrEmptyWordList):
		return http.StatusBadRequest, worksheet.ErrEmptyWordList.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
