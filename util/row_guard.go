// util/row_guard.go
package util

import "sync"

// RowGuard serializes mutations per row identity. Each row carries its
// own explicit request state instead of one global "currently busy id",
// so two different rows may be mutated concurrently while a second
// mutation on the same row is refused until the first resolves.
type RowGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewRowGuard() *RowGuard {
	return &RowGuard{inflight: make(map[string]struct{})}
}

// Begin marks the row busy. It returns false when a mutation for the same
// key is already in flight.
func (g *RowGuard) Begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

// End releases the row. Safe to call for a key that was never begun.
func (g *RowGuard) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}

// InFlight reports whether the row is currently busy.
func (g *RowGuard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inflight[key]
	return busy
}
