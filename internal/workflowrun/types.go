package workflowrun

import "github-event-bridge/internal/dispatch"

// FieldUnknown replaces fields that are absent or null in the payload.
// A run in progress legitimately has no conclusion yet.
const FieldUnknown = "unknown"

// Report is the extracted view of one workflow_run event.
type Report struct {
	Workflow   string
	Action     string
	Status     string
	Conclusion string
	Repository string
	Actor      string
}

// ReportFromPayload extracts the fields of interest. Every field is optional;
// absence never fails the handler.
func ReportFromPayload(p dispatch.Payload) Report {
	return Report{
		Workflow:   p.StringOr(FieldUnknown, "workflow_run", "name"),
		Action:     p.StringOr(FieldUnknown, "action"),
		Status:     p.StringOr(FieldUnknown, "workflow_run", "status"),
		Conclusion: p.StringOr(FieldUnknown, "workflow_run", "conclusion"),
		Repository: p.StringOr(FieldUnknown, "repository", "full_name"),
		Actor:      p.StringOr(FieldUnknown, "workflow_run", "actor", "login"),
	}
}
