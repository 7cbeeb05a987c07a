package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookProcessor accepts webhook deliveries for async processing
type WebhookProcessor interface {
	Enqueue(ctx context.Context, eventType string, payload []byte, deliveryID string) error
}

// Handler manages HTTP request handlers
type Handler struct {
	webhookProc   WebhookProcessor
	webhookSecret string
}

// NewHandler creates a new handler instance
func NewHandler(webhookProc WebhookProcessor, webhookSecret string) *Handler {
	return &Handler{
		webhookProc:   webhookProc,
		webhookSecret: webhookSecret,
	}
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
