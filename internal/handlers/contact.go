package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spellingplay/worksheetgen/internal/mail"
)

// ContactHandler relays contact-form submissions to the configured mailbox.
type ContactHandler struct {
	relay mail.Relay
	log   *zap.SugaredLogger
}

// NewContactHandler creates the handler.
func NewContactHandler(relay mail.Relay, log *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{relay: relay, log: log.With("handler", "contact")}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact handles POST /api/contact.
func (h *ContactHandler) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, and message are required"})
		return
	}

	err := h.relay.Send(mail.Message{Name: req.Name, Email: req.Email, Content: req.Message})
	if err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			h.log.Warnw("contact form submitted but mail relay is not configured")
		} else {
			h.log.Errorw("contact relay failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
