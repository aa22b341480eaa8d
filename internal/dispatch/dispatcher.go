package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// Dispatch routes one delivery to every matching handler.
//
// It fails closed: an unverified delivery invokes zero handlers and returns
// ErrNotVerified; an unparseable body invokes zero handlers and returns
// ErrMalformedPayload. Matching handlers run concurrently with no ordering
// guarantee between them; one handler's error or panic never prevents
// siblings from running. Failures are collected into the Result.
func (d *Dispatcher) Dispatch(ctx context.Context, delivery *Delivery) (Result, error) {
	if delivery == nil || !delivery.Verified {
		return Result{}, ErrNotVerified
	}

	payload := delivery.Payload
	if payload == nil {
		// Deliveries built through NewDelivery arrive pre-parsed; anything
		// else is parsed here so unparseable bodies still fail before any
		// handler runs.
		if err := json.Unmarshal(delivery.RawBody, &payload); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	}

	name := delivery.Name
	if name == "" {
		name = delivery.Event
		if action, ok := payload.String("action"); ok && action != "" {
			name = delivery.Event + "." + action
		}
	}

	var matched []Registration
	for _, reg := range d.registrations {
		if matches(reg.Pattern, name) {
			matched = append(matched, reg)
		}
	}

	var (
		mu       sync.Mutex
		failures []HandlerFailure
		wg       sync.WaitGroup
	)

	for _, reg := range matched {
		wg.Add(1)
		go func(reg Registration) {
			defer wg.Done()
			if err := d.invoke(ctx, reg, delivery); err != nil {
				mu.Lock()
				failures = append(failures, HandlerFailure{Pattern: reg.Pattern, Err: err})
				mu.Unlock()
			}
		}(reg)
	}
	wg.Wait()

	return Result{Invoked: len(matched), Failures: failures}, nil
}

// invoke runs one handler, converting a panic into a reported failure so a
// misbehaving handler cannot take down sibling handlers or the process.
func (d *Dispatcher) invoke(ctx context.Context, reg Registration, delivery *Delivery) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return reg.Fn(ctx, delivery)
}

// matches implements the pattern rules: wildcard, exact name, dotted prefix.
func matches(pattern, name string) bool {
	if pattern == Wildcard {
		return true
	}
	if pattern == name {
		return true
	}
	return strings.HasPrefix(name, pattern+".")
}
