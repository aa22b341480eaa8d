package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
)

// Delivery is one inbound webhook notification. Immutable after parse;
// discarded once dispatch completes.
type Delivery struct {
	ID        string  // X-GitHub-Delivery header, or a generated fallback
	Event     string  // X-GitHub-Event header, e.g. "installation"
	Name      string  // composed event name, e.g. "installation.created"
	RawBody   []byte  // raw request body the signature was computed over
	Signature string  // X-Hub-Signature-256 header
	Verified  bool    // set only after signature verification passed
	Payload   Payload // parsed body
}

// NewDelivery parses rawBody and builds an immutable Delivery.
// The composed Name is the event header plus the payload "action" when
// present, matching GitHub's resource.action naming.
func NewDelivery(id, event, signature string, rawBody []byte, verified bool) (*Delivery, error) {
	var payload Payload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	name := event
	if action, ok := payload.String("action"); ok && action != "" {
		name = event + "." + action
	}

	return &Delivery{
		ID:        id,
		Event:     event,
		Name:      name,
		RawBody:   rawBody,
		Signature: signature,
		Verified:  verified,
		Payload:   payload,
	}, nil
}

// HandlerFunc is a webhook event handler. A returned error marks the
// invocation as failed but never aborts sibling handlers.
type HandlerFunc func(ctx context.Context, d *Delivery) error

// Registration binds an event pattern to a handler. Patterns are matched as
// exact name, dotted prefix, or the "*" wildcard.
type Registration struct {
	Pattern string
	Fn      HandlerFunc
}

// HandlerFailure reports one failed handler invocation.
type HandlerFailure struct {
	Pattern string
	Err     error
}

// Result summarizes one dispatch: how many handlers ran and which failed.
type Result struct {
	Invoked  int
	Failures []HandlerFailure
}
