package webhook

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// dedupCapacity caps how many delivery ids are remembered at once.
const dedupCapacity = 4096

// deduper remembers recently seen delivery ids. GitHub delivers events
// at-least-once; a redelivered id inside the TTL window is acknowledged
// without dispatching again.
type deduper struct {
	seen *expirable.LRU[string, struct{}]
}

func newDeduper(ttl time.Duration) *deduper {
	return &deduper{
		seen: expirable.NewLRU[string, struct{}](dedupCapacity, nil, ttl),
	}
}

// Seen records id and reports whether it was already present.
func (d *deduper) Seen(id string) bool {
	if _, ok := d.seen.Get(id); ok {
		return true
	}
	d.seen.Add(id, struct{}{})
	return false
}
