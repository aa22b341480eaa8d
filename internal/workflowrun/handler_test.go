package workflowrun_test

import (
	"context"
	"encoding/json"
	"testing"

	"github-event-bridge/internal/dispatch"
	"github-event-bridge/internal/workflowrun"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

func payload(t *testing.T, raw string) dispatch.Payload {
	t.Helper()
	var p dispatch.Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return p
}

func TestReportFromPayload(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		report := workflowrun.ReportFromPayload(payload(t, `{
			"action": "completed",
			"workflow_run": {
				"name": "CI",
				"status": "completed",
				"conclusion": "success",
				"actor": {"login": "octocat"}
			},
			"repository": {"full_name": "octo/demo"}
		}`))

		want := workflowrun.Report{
			Workflow:   "CI",
			Action:     "completed",
			Status:     "completed",
			Conclusion: "success",
			Repository: "octo/demo",
			Actor:      "octocat",
		}
		if report != want {
			t.Errorf("report = %+v, want %+v", report, want)
		}
	})

	t.Run("in-progress run has null conclusion", func(t *testing.T) {
		report := workflowrun.ReportFromPayload(payload(t, `{
			"action": "in_progress",
			"workflow_run": {"name": "CI", "status": "in_progress", "conclusion": null}
		}`))

		if report.Conclusion != workflowrun.FieldUnknown {
			t.Errorf("conclusion = %q, want %q", report.Conclusion, workflowrun.FieldUnknown)
		}
		if report.Repository != workflowrun.FieldUnknown {
			t.Errorf("repository = %q, want %q", report.Repository, workflowrun.FieldUnknown)
		}
		if report.Status != "in_progress" {
			t.Errorf("status = %q, want in_progress", report.Status)
		}
	})
}

func TestHandleWorkflowRun(t *testing.T) {
	t.Run("never fails on sparse payloads", func(t *testing.T) {
		h := workflowrun.New(&mockLogger{})

		d, err := dispatch.NewDelivery("d-1", "workflow_run", "sha256=aa", []byte(`{}`), true)
		if err != nil {
			t.Fatalf("NewDelivery: %v", err)
		}
		if err := h.HandleWorkflowRun(context.Background(), d); err != nil {
			t.Errorf("HandleWorkflowRun: %v", err)
		}
	})
}
