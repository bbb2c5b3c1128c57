package boxtree

import (
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-boxtree/internal/layout"
)

// Option configures the Tree created by NewHost.
type Option = layout.Option

// WithLogger sets the logger used for layout pass diagnostics.
func WithLogger(l *log.Logger) Option {
	return layout.WithLogger(l)
}

// Host owns a Tree and the reactive state driving it.
//
// A Host is not safe for concurrent use: state changes, layout passes and
// queries all run on the goroutine that owns the host.
type Host struct {
	tree  *Tree
	batch batchContext
	dirty atomic.Bool
}

// NewHost creates a host around an empty tree.
func NewHost(opts ...Option) *Host {
	return &Host{
		tree:  layout.NewTree(opts...),
		batch: newBatchContext(),
	}
}

// Tree returns the host's tree.
func (h *Host) Tree() *Tree {
	return h.tree
}

// Layout runs a layout pass under clamp and clears the needs-layout flag.
func (h *Host) Layout(clamp BoxClamp) PassStats {
	h.checkAndClearDirty()
	return h.tree.RunLayoutPass(clamp)
}
