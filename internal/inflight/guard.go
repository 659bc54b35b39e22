// Package inflight rejects a second submission of the same action while the
// first is still running.
package inflight

import (
    "strings"
    "sync"

    "chaincarbon/internal/domain"
)

type Guard struct {
    mu     sync.Mutex
    active map[string]struct{}
}

func New() *Guard { return &Guard{active: make(map[string]struct{})} }

// Key joins the parts identifying one action button, e.g. session, action, target.
func Key(parts ...string) string { return strings.Join(parts, "|") }

// Acquire returns domain.ErrInFlight when key is already held. release must
// be called exactly once.
func (g *Guard) Acquire(key string) (release func(), err error) {
    g.mu.Lock()
    defer g.mu.Unlock()
    if _, busy := g.active[key]; busy {
        return nil, domain.ErrInFlight
    }
    g.active[key] = struct{}{}
    var once sync.Once
    return func() {
        once.Do(func() {
            g.mu.Lock()
            delete(g.active, key)
            g.mu.Unlock()
        })
    }, nil
}

// Busy reports whether key is currently held.
func (g *Guard) Busy(key string) bool {
    g.mu.Lock()
    defer g.mu.Unlock()
    _, ok := g.active[key]
    return ok
}
