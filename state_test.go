package boxtree

import (
	"io"
	"slices"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestHost() *Host {
	return NewHost(WithLogger(log.New(io.Discard)))
}

func TestState_Set_CallsBindings(t *testing.T) {
	s := NewState(newTestHost(), 0)

	var received []int
	s.Bind(func(v int) { received = append(received, v) })

	if len(received) != 0 {
		t.Fatal("binding should not run on registration")
	}
	s.Set(1)
	s.Set(2)
	if !slices.Equal(received, []int{1, 2}) {
		t.Errorf("received %v, want [1 2]", received)
	}
	if got := s.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestState_Update(t *testing.T) {
	s := NewState(newTestHost(), 10)
	var received int
	s.Bind(func(v int) { received = v })

	s.Update(func(v int) int { return v + 5 })

	if s.Get() != 15 || received != 15 {
		t.Errorf("Get() = %d, binding got %d; want 15", s.Get(), received)
	}
}

func TestState_Unbind(t *testing.T) {
	s := NewState(newTestHost(), "")

	var calls int
	unbind := s.Bind(func(string) { calls++ })
	s.Set("a")
	unbind()
	unbind()
	s.Set("b")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(s.bindings) != 0 {
		t.Errorf("inactive bindings kept: %d", len(s.bindings))
	}
}

func TestState_BindingOrder(t *testing.T) {
	s := NewState(newTestHost(), 0)

	var order []string
	s.Bind(func(int) { order = append(order, "first") })
	s.Bind(func(int) { order = append(order, "second") })
	s.Set(1)

	if !slices.Equal(order, []string{"first", "second"}) {
		t.Errorf("order = %v", order)
	}
}

func TestHost_Batch(t *testing.T) {
	type tc struct {
		run       func(h *Host, a, b *State[int])
		wantCalls []string
	}

	tests := map[string]tc{
		"defers until return": {
			run: func(h *Host, a, b *State[int]) {
				h.Batch(func() { a.Set(1) })
			},
			wantCalls: []string{"a=1"},
		},
		"coalesces to last value": {
			run: func(h *Host, a, b *State[int]) {
				h.Batch(func() {
					a.Set(1)
					a.Set(2)
					a.Set(3)
				})
			},
			wantCalls: []string{"a=3"},
		},
		"first trigger order": {
			run: func(h *Host, a, b *State[int]) {
				h.Batch(func() {
					b.Set(1)
					a.Set(1)
					b.Set(2)
				})
			},
			wantCalls: []string{"b=2", "a=1"},
		},
		"nested flushes once": {
			run: func(h *Host, a, b *State[int]) {
				h.Batch(func() {
					a.Set(1)
					h.Batch(func() { b.Set(5) })
					a.Set(2)
				})
			},
			wantCalls: []string{"a=2", "b=5"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newTestHost()
			a := NewState(h, 0)
			b := NewState(h, 0)
			var calls []string
			a.Bind(func(v int) { calls = append(calls, "a="+strconv.Itoa(v)) })
			b.Bind(func(v int) { calls = append(calls, "b="+strconv.Itoa(v)) })

			tt.run(h, a, b)

			if !slices.Equal(calls, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", calls, tt.wantCalls)
			}
		})
	}
}

func TestHost_Batch_PanicCleansUp(t *testing.T) {
	h := newTestHost()
	s := NewState(h, 0)
	var calls int
	s.Bind(func(int) { calls++ })

	func() {
		defer func() { _ = recover() }()
		h.Batch(func() {
			s.Set(1)
			panic("boom")
		})
	}()

	if calls != 1 {
		t.Errorf("pending binding should flush on panic, calls = %d", calls)
	}
	s.Set(2)
	if calls != 2 {
		t.Errorf("batch depth leaked: calls = %d after a plain Set", calls)
	}
}
