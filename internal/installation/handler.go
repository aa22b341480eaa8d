package installation

import (
	"context"
	"fmt"

	"github-event-bridge/internal/dispatch"
)

// HandleInstallationCreated reacts to a new App installation by requesting an
// installation access token. The token is diagnostic-only here: it is logged
// at debug level and dropped. Issuance failures are reported through the
// dispatch result and never retried.
func (h *Handler) HandleInstallationCreated(ctx context.Context, d *dispatch.Delivery) error {
	id, ok := d.Payload.Int64("installation", "id")
	if !ok {
		return ErrMissingInstallationID
	}

	h.l.Infof(ctx, "App installed, installation id: %d (delivery %s)", id, d.ID)

	tok, err := h.issuer.CreateInstallationAccessToken(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "Installation token issuance failed for %d: %v", id, err)
		return fmt.Errorf("installation %d: %w", id, err)
	}

	h.l.Infof(ctx, "Installation access token issued for %d, expires at %s", id, tok.ExpiresAt)
	// Token value only at debug level. A production deployment must keep
	// secrets out of logs entirely.
	h.l.Debugf(ctx, "Installation access token: %s", tok.Token)

	return nil
}
