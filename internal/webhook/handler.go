package webhook

import (
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github-event-bridge/internal/dispatch"
	pkgResponse "github-event-bridge/pkg/response"
)

// dispatchTimeout bounds background handler execution for one delivery.
const dispatchTimeout = 2 * time.Minute

// HandleGitHubWebhook processes GitHub webhook deliveries.
//
// The delivery is acknowledged as soon as it is verified and parsed; handlers
// run in the background so the response never blocks on them (GitHub enforces
// webhook response timeouts).
// @Summary   GitHub Webhook
// @Description Receives, verifies and dispatches GitHub webhook deliveries
// @Tags      Webhook
// @Accept    json
// @Produce   json
// @Success   200 {object} response.Resp
// @Failure   400 {object} response.Resp
// @Failure   401 {object} response.Resp
// @Router    /github/webhooks [post]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify signature over the raw bytes
	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "GitHub signature verification failed: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	// Check IP allowlist
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook source rejected: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	deliveryID := c.GetHeader("X-GitHub-Delivery")
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	// GitHub redelivers at-least-once; ack duplicates without dispatching
	if h.dedup.Seen(deliveryID) {
		h.l.Infof(ctx, "Duplicate delivery %s, skipping dispatch", deliveryID)
		pkgResponse.OK(c, gin.H{"status": "duplicate", "delivery_id": deliveryID})
		return
	}

	event := c.GetHeader("X-GitHub-Event")
	if event == "" {
		h.l.Warnf(ctx, "Webhook without event header (delivery %s)", deliveryID)
		pkgResponse.Error(c, ErrMissingEvent, nil)
		return
	}

	// Parse now so malformed bodies are rejected before acknowledgement
	delivery, err := dispatch.NewDelivery(deliveryID, event, signature, body, true)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse delivery %s: %v", deliveryID, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Process in background
	go h.dispatchAsync(delivery)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{
		"status":      "accepted",
		"delivery_id": deliveryID,
		"event":       delivery.Name,
		"received_at": pkgResponse.DateTime(time.Now()),
	})
}

// dispatchAsync runs the delivery's handlers in the background.
func (h *Handler) dispatchAsync(delivery *dispatch.Delivery) {
	// Create background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	result, err := h.dispatcher.Dispatch(ctx, delivery)
	if err != nil {
		h.l.Errorf(ctx, "Dispatch failed for delivery %s: %v", delivery.ID, err)
		return
	}

	for _, failure := range result.Failures {
		h.l.Errorf(ctx, "Handler %q failed for delivery %s: %v", failure.Pattern, delivery.ID, failure.Err)
	}
	h.l.Infof(ctx, "Delivery %s (%s) dispatched to %d handlers, %d failed",
		delivery.ID, delivery.Name, result.Invoked, len(result.Failures))
}
