package workflowrun

import (
	"github-event-bridge/pkg/log"
)

// Handler observes workflow_run events. Pure observation: no external calls,
// no mutation beyond reporting.
type Handler struct {
	l log.Logger
}

// New creates a new workflow-run Handler.
func New(l log.Logger) *Handler {
	return &Handler{
		l: l,
	}
}
