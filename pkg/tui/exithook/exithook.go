// ABOUTME: Registry of run-at-exit callbacks that the hosting process drains before terminating
// ABOUTME: Hooks run once each, newest first, outside the registry lock

// Package exithook stands in for an atexit facility. Go runs no code when
// main returns or os.Exit is called, so the hosting program drains the
// registry explicitly: deferred Run in main, NotifyOnSignal for signals and
// terminal.RestoreOnPanic for panics.
package exithook

import (
	"slices"
	"sync"
)

// Handle identifies a registered hook. The zero Handle is never issued.
type Handle uint64

// Registrar registers and cancels deferred actions.
type Registrar interface {
	// Register schedules fn to run at exit and returns its handle.
	Register(fn func()) Handle
	// Cancel removes a pending hook. It reports false if the hook already
	// ran or was never registered.
	Cancel(h Handle) bool
}

type entry struct {
	handle Handle
	fn     func()
}

// Registry is a concurrency-safe Registrar.
type Registry struct {
	mu      sync.Mutex
	next    Handle
	pending []entry
}

var _ Registrar = (*Registry)(nil)

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register schedules fn. A nil fn is ignored and yields the zero Handle.
func (r *Registry) Register(fn func()) Handle {
	if fn == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.pending = append(r.pending, entry{handle: r.next, fn: fn})
	return r.next
}

// Cancel removes the hook identified by h.
func (r *Registry) Cancel(h Handle) bool {
	if h == 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.pending, func(e entry) bool { return e.handle == h })
	if i < 0 {
		return false
	}
	r.pending = slices.Delete(r.pending, i, i+1)
	return true
}

// Pending returns the number of hooks waiting to run.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pending)
}

// Run executes every pending hook, most recently registered first, and
// leaves the registry empty. Hooks may call Register or Cancel; hooks
// registered while Run is executing are left for the next Run. A panicking
// hook does not stop the remaining ones.
func (r *Registry) Run() {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, e := range slices.Backward(batch) {
		runHook(e.fn)
	}
}

func runHook(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register schedules fn on the process-wide registry.
func Register(fn func()) Handle {
	return defaultRegistry.Register(fn)
}

// Cancel removes h from the process-wide registry.
func Cancel(h Handle) bool {
	return defaultRegistry.Cancel(h)
}

// Run drains the process-wide registry. Call it deferred from main.
func Run() {
	defaultRegistry.Run()
}
