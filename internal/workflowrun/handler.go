package workflowrun

import (
	"context"

	"github-event-bridge/internal/dispatch"
)

// HandleWorkflowRun logs a summary of the workflow run.
func (h *Handler) HandleWorkflowRun(ctx context.Context, d *dispatch.Delivery) error {
	report := ReportFromPayload(d.Payload)

	h.l.Infof(ctx, "Workflow run detected: workflow=%q action=%s status=%s conclusion=%s repo=%s actor=%s (delivery %s)",
		report.Workflow, report.Action, report.Status, report.Conclusion, report.Repository, report.Actor, d.ID)

	return nil
}
