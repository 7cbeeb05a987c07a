package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v82/github"
)

// GitHubWebhook validates a webhook delivery and queues it for review.
// The handler responds before the review runs; GitHub only needs the
// delivery acknowledged.
func (h *Handler) GitHubWebhook(c *gin.Context) {
	req := c.Request
	// GitHub provides the event name in the X-GitHub-Event header.
	eventType := c.GetHeader("X-GitHub-Event")
	deliveryID := c.GetHeader("X-GitHub-Delivery")
	if eventType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-GitHub-Event header"})
		return
	}

	secret := []byte(h.webhookSecret)
	if len(secret) == 0 {
		secret = nil
	}

	payload, err := github.ValidatePayload(req, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload or signature", "details": err.Error()})
		return
	}

	if err := h.webhookProc.Enqueue(c.Request.Context(), eventType, payload, deliveryID); err != nil {
		log.Printf("github webhook enqueue failed event=%s delivery=%s: %v", eventType, deliveryID, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "review queue full, retry delivery"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"event_type": eventType, "delivery_id": deliveryID, "queued": true})
}
