package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github-event-bridge/internal/dispatch"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

// recorder counts handler invocations safely across goroutines.
type recorder struct {
	mu    sync.Mutex
	names []string
}

func (r *recorder) handler(name string) dispatch.HandlerFunc {
	return func(ctx context.Context, d *dispatch.Delivery) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.names = append(r.names, name)
		return nil
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}

func (r *recorder) has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

func verifiedDelivery(t *testing.T, event string, body []byte) *dispatch.Delivery {
	t.Helper()
	d, err := dispatch.NewDelivery("d-1", event, "sha256=aa", body, true)
	if err != nil {
		t.Fatalf("NewDelivery: %v", err)
	}
	return d
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestDispatchMatching(t *testing.T) {
	ctx := context.Background()

	t.Run("exact, prefix and wildcard handlers all run", func(t *testing.T) {
		rec := &recorder{}
		disp := dispatch.New(&mockLogger{})
		disp.On("installation.created", rec.handler("exact"))
		disp.On("installation", rec.handler("prefix"))
		disp.OnAny(rec.handler("wildcard"))
		disp.On("workflow_run", rec.handler("other"))

		d := verifiedDelivery(t, "installation", []byte(`{"action":"created","installation":{"id":42}}`))
		if d.Name != "installation.created" {
			t.Fatalf("composed name = %q, want installation.created", d.Name)
		}

		result, err := disp.Dispatch(ctx, d)
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if result.Invoked != 3 {
			t.Errorf("invoked %d handlers, want 3", result.Invoked)
		}
		if !rec.has("exact") || !rec.has("prefix") || !rec.has("wildcard") {
			t.Errorf("missing invocations: %v", rec.names)
		}
		if rec.has("other") {
			t.Errorf("non-matching handler ran")
		}
	})

	t.Run("prefix match requires a dot boundary", func(t *testing.T) {
		rec := &recorder{}
		disp := dispatch.New(&mockLogger{})
		disp.On("install", rec.handler("short"))

		d := verifiedDelivery(t, "installation", []byte(`{"action":"created"}`))
		result, err := disp.Dispatch(ctx, d)
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if result.Invoked != 0 {
			t.Errorf("pattern %q should not match %q", "install", d.Name)
		}
	})

	t.Run("event without action matches bare name", func(t *testing.T) {
		rec := &recorder{}
		disp := dispatch.New(&mockLogger{})
		disp.On("ping", rec.handler("ping"))

		d := verifiedDelivery(t, "ping", []byte(`{"zen":"Keep it logically awesome."}`))
		result, err := disp.Dispatch(ctx, d)
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if result.Invoked != 1 || !rec.has("ping") {
			t.Errorf("expected ping handler to run, got %v", rec.names)
		}
	})
}

func TestDispatchFailsClosed(t *testing.T) {
	ctx := context.Background()

	t.Run("unverified delivery invokes zero handlers", func(t *testing.T) {
		rec := &recorder{}
		disp := dispatch.New(&mockLogger{})
		disp.OnAny(rec.handler("any"))

		d := &dispatch.Delivery{
			ID:      "d-2",
			Event:   "push",
			RawBody: []byte(`{}`),
			// Verified intentionally false
		}

		_, err := disp.Dispatch(ctx, d)
		if !errors.Is(err, dispatch.ErrNotVerified) {
			t.Fatalf("err = %v, want ErrNotVerified", err)
		}
		if rec.count() != 0 {
			t.Errorf("handlers ran on unverified delivery")
		}
	})

	t.Run("malformed body invokes zero handlers", func(t *testing.T) {
		rec := &recorder{}
		disp := dispatch.New(&mockLogger{})
		disp.OnAny(rec.handler("any"))

		d := &dispatch.Delivery{
			ID:       "d-3",
			Event:    "push",
			RawBody:  []byte(`{"broken`),
			Verified: true,
		}

		_, err := disp.Dispatch(ctx, d)
		if !errors.Is(err, dispatch.ErrMalformedPayload) {
			t.Fatalf("err = %v, want ErrMalformedPayload", err)
		}
		if rec.count() != 0 {
			t.Errorf("handlers ran on malformed payload")
		}
	})

	t.Run("NewDelivery rejects malformed body", func(t *testing.T) {
		_, err := dispatch.NewDelivery("d-4", "push", "", []byte(`not json`), true)
		if !errors.Is(err, dispatch.ErrMalformedPayload) {
			t.Fatalf("err = %v, want ErrMalformedPayload", err)
		}
	})
}

func TestDispatchIsolation(t *testing.T) {
	ctx := context.Background()

	t.Run("one handler erroring does not stop siblings", func(t *testing.T) {
		rec := &recorder{}
		disp := dispatch.New(&mockLogger{})
		boom := errors.New("boom")
		disp.On("push", func(ctx context.Context, d *dispatch.Delivery) error {
			return boom
		})
		disp.On("push", rec.handler("sibling"))

		d := verifiedDelivery(t, "push", []byte(`{"ref":"refs/heads/main"}`))
		result, err := disp.Dispatch(ctx, d)
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if result.Invoked != 2 {
			t.Errorf("invoked %d, want 2", result.Invoked)
		}
		if len(result.Failures) != 1 || !errors.Is(result.Failures[0].Err, boom) {
			t.Errorf("failures = %v, want one boom", result.Failures)
		}
		if !rec.has("sibling") {
			t.Errorf("sibling handler did not run")
		}
	})

	t.Run("a panicking handler is reported, not fatal", func(t *testing.T) {
		rec := &recorder{}
		disp := dispatch.New(&mockLogger{})
		disp.On("push", func(ctx context.Context, d *dispatch.Delivery) error {
			panic("handler bug")
		})
		disp.On("push", rec.handler("sibling"))

		d := verifiedDelivery(t, "push", []byte(`{}`))
		result, err := disp.Dispatch(ctx, d)
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if len(result.Failures) != 1 {
			t.Fatalf("failures = %v, want exactly one", result.Failures)
		}
		if !rec.has("sibling") {
			t.Errorf("sibling handler did not run after panic")
		}
	})
}
