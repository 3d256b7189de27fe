package authtransport

import "sync"

// Terminator ends the active session. The transport layer cannot depend on
// the session controller without creating an import cycle, so it asks for
// termination through this minimal interface instead; the concrete instance
// is injected at the composition root.
type Terminator interface {
	TerminateSession()
}

// TerminatorFunc adapts a plain function to the Terminator interface.
type TerminatorFunc func()

func (f TerminatorFunc) TerminateSession() { f() }

// NoOpTerminator is a Terminator that does nothing.
// Use it when no controller is wired, e.g. in tests.
type NoOpTerminator struct{}

func (NoOpTerminator) TerminateSession() {}

// Registry is a nil-safe single-slot Terminator. The controller registers
// itself on start and clears the slot on teardown; invoking an empty
// registry is a no-op, so a torn-down controller can never be reached
// through a stale reference.
type Registry struct {
	mu   sync.RWMutex
	slot Terminator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Set replaces the held terminator. Passing nil clears the slot and is
// idempotent.
func (r *Registry) Set(t Terminator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slot = t
}

// TerminateSession invokes the currently held terminator, if any.
func (r *Registry) TerminateSession() {
	r.mu.RLock()
	t := r.slot
	r.mu.RUnlock()

	if t != nil {
		t.TerminateSession()
	}
}
