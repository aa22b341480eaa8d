package dispatch

import (
	"github-event-bridge/pkg/log"
)

// Wildcard matches every event name.
const Wildcard = "*"

// Dispatcher routes verified webhook deliveries to registered handlers.
// Registrations happen once at startup and are read-only afterwards, so
// Dispatch needs no locking around the registration list.
type Dispatcher struct {
	registrations []Registration
	l             log.Logger
}

// New creates a new Dispatcher.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *Dispatcher {
	return &Dispatcher{
		l: l,
	}
}

// On registers fn for every event whose composed name equals pattern or has
// pattern as a dotted prefix ("installation" matches "installation.created").
func (d *Dispatcher) On(pattern string, fn HandlerFunc) {
	d.registrations = append(d.registrations, Registration{Pattern: pattern, Fn: fn})
}

// OnAny registers fn for every event.
func (d *Dispatcher) OnAny(fn HandlerFunc) {
	d.On(Wildcard, fn)
}
