package boxtree

import (
	"sync"
	"sync/atomic"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

func newBatchContext() batchContext {
	return batchContext{
		pending: make(map[uint64]func()),
	}
}

// globalBindingID keeps binding IDs unique across all State instances.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes. Bindings
// typically update a render object and mark its node dirty; the next
// Host.Layout re-measures what changed.
//
//	width := boxtree.NewState(host, float32(100))
//	width.Bind(func(w float32) { box.Size.Width = w })
//	width.Drive(boxID)
//	width.Set(140) // box is re-measured on the next Layout
//
// Use Host.Batch to coalesce several Set calls:
//
//	host.Batch(func() {
//	    width.Set(140)
//	    height.Set(60)
//	}) // bindings fire once here
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	host     *Host
}

type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind removes a binding. Calling it more than once is harmless.
type Unbind func()

// NewState creates a state owned by host.
func NewState[T any](host *Host, initial T) *State[T] {
	if host == nil {
		panic("boxtree: nil host in NewState")
	}
	return &State[T]{value: initial, host: host}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and runs the active bindings in registration order.
// Inside Host.Batch the bindings are deferred until the outermost batch
// returns, and each runs once with the last value set.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	// Drop unbound bindings while copying the active ones.
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	s.mu.Unlock()

	batch := &s.host.batch
	batch.mu.Lock()
	batching := batch.depth > 0
	if batching {
		for _, b := range active {
			fn := b.fn
			if _, seen := batch.pending[b.id]; !seen {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() { fn(v) }
		}
	}
	batch.mu.Unlock()

	s.host.tree.Logger().Debug("state set", "bindings", len(active), "deferred", batching)
	if !batching {
		for _, b := range active {
			b.fn(v)
		}
	}
}

// Update applies fn to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn to be called with each new value.
func (s *State[T]) Bind(fn func(T)) Unbind {
	b := &binding[T]{id: globalBindingID.Add(1), fn: fn, active: true}

	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Drive marks id dirty whenever the value changes.
func (s *State[T]) Drive(id NodeID) Unbind {
	return s.Bind(func(T) {
		s.host.MarkDirty(id)
	})
}

// Batch runs fn and defers all binding callbacks until it returns. Nested
// batches flush when the outermost one completes, also when fn panics.
func (h *Host) Batch(fn func()) {
	batch := &h.batch
	batch.mu.Lock()
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var callbacks []func()
		if batch.depth == 0 && len(batch.pending) > 0 {
			callbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				callbacks = append(callbacks, batch.pending[id])
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}
