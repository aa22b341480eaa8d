package webhook

import (
	"context"
	"time"

	"github-event-bridge/internal/dispatch"
	"github-event-bridge/pkg/log"
)

// defaultDedupTTL is used when no dedup window is configured.
const defaultDedupTTL = 10 * time.Minute

// Dispatcher routes a verified delivery to its handlers.
// Implemented by internal/dispatch.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, d *dispatch.Delivery) (dispatch.Result, error)
}

type Handler struct {
	dispatcher Dispatcher
	security   *SecurityValidator
	dedup      *deduper
	l          log.Logger
}

func NewHandler(
	dispatcher Dispatcher,
	cfg Config,
	l log.Logger,
) *Handler {
	ttl := cfg.DedupTTL
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &Handler{
		dispatcher: dispatcher,
		security:   NewSecurityValidator(cfg.Security),
		dedup:      newDeduper(ttl),
		l:          l,
	}
}
