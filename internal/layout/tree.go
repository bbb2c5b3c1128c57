package layout

import (
	"fmt"
	"iter"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-boxtree/internal/debug"
)

// NodeID addresses a node in a Tree. IDs are never reused: a slot freed by
// Dispose comes back with a new generation, so stale IDs are detected.
// The zero value addresses no node.
type NodeID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether id is the zero NodeID.
func (id NodeID) IsZero() bool {
	return id.gen == 0
}

func (id NodeID) String() string {
	if id.IsZero() {
		return "#nil"
	}
	return fmt.Sprintf("#%d.%d", id.index, id.gen)
}

type node struct {
	render    Render
	parent    NodeID
	children  []NodeID
	transform *Transform
	gen       uint32
	alive     bool
}

// Tree is an arena of nodes forming a rooted tree. It owns the nodes, their
// side-channel props and the layout Store.
//
// A Tree is not safe for concurrent use; the host serialises all UI work.
type Tree struct {
	nodes []node
	free  []uint32
	root  NodeID

	store *Store
	props map[NodeID]Props

	// dirty holds nodes whose cached layout cannot be trusted on the next pass.
	dirty map[NodeID]struct{}
	// visualDirty holds nodes whose transform changed since the last pass.
	visualDirty map[NodeID]struct{}
	inPass      bool

	logger *log.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used for layout pass diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(t *Tree) {
		t.logger = l
	}
}

// NewTree creates an empty tree.
func NewTree(opts ...Option) *Tree {
	t := &Tree{
		store:       newStore(),
		props:       make(map[NodeID]Props),
		dirty:       make(map[NodeID]struct{}),
		visualDirty: make(map[NodeID]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = debug.Logger()
	}
	return t
}

// Store returns the layout cache.
func (t *Tree) Store() *Store {
	return t.store
}

// Logger returns the tree's logger.
func (t *Tree) Logger() *log.Logger {
	return t.logger
}

// NewNode allocates a detached node driven by r.
func (t *Tree) NewNode(r Render) NodeID {
	if r == nil {
		panic("layout: nil Render in NewNode")
	}
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		slot := &t.nodes[idx]
		*slot = node{render: r, gen: slot.gen + 1, alive: true}
		return NodeID{index: idx, gen: slot.gen}
	}
	t.nodes = append(t.nodes, node{render: r, gen: 1, alive: true})
	return NodeID{index: uint32(len(t.nodes) - 1), gen: 1}
}

func (t *Tree) get(id NodeID) (*node, bool) {
	if id.IsZero() || int(id.index) >= len(t.nodes) {
		return nil, false
	}
	n := &t.nodes[id.index]
	if !n.alive || n.gen != id.gen {
		return nil, false
	}
	return n, true
}

func (t *Tree) mustGet(id NodeID) *node {
	n, ok := t.get(id)
	if !ok {
		panic(fmt.Sprintf("layout: stale or unknown node %v", id))
	}
	return n
}

// Alive reports whether id refers to a node that has not been disposed.
func (t *Tree) Alive(id NodeID) bool {
	_, ok := t.get(id)
	return ok
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes) - len(t.free)
}

// Root returns the root node, or the zero NodeID if none is set.
func (t *Tree) Root() NodeID {
	return t.root
}

// SetRoot makes id the root. The node must be detached.
func (t *Tree) SetRoot(id NodeID) {
	if n := t.mustGet(id); !n.parent.IsZero() {
		panic(fmt.Sprintf("layout: root %v must not have a parent", id))
	}
	t.mustOutsidePass("SetRoot")
	t.root = id
	t.MarkDirty(id)
}

// Render returns the participant driving id.
func (t *Tree) Render(id NodeID) Render {
	return t.mustGet(id).render
}

// SetRender swaps the participant of id and marks it dirty.
func (t *Tree) SetRender(id NodeID, r Render) {
	if r == nil {
		panic("layout: nil Render in SetRender")
	}
	t.mustGet(id).render = r
	t.MarkDirty(id)
}

// Parent returns the parent of id.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n := t.mustGet(id)
	return n.parent, !n.parent.IsZero()
}

// Children returns the children of id in tree order.
// The returned slice is owned by the tree and must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.mustGet(id).children
}

// Ancestors yields id and then each of its ancestors up to the root.
func (t *Tree) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for cur := id; !cur.IsZero(); cur = t.mustGet(cur).parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// Descendants yields id and its descendants in pre-order.
func (t *Tree) Descendants(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		t.walk(id, yield)
	}
}

func (t *Tree) walk(id NodeID, yield func(NodeID) bool) bool {
	if !yield(id) {
		return false
	}
	for _, c := range t.mustGet(id).children {
		if !t.walk(c, yield) {
			return false
		}
	}
	return true
}

// Depth returns the number of ancestors of id.
func (t *Tree) Depth(id NodeID) int {
	d := -1
	for range t.Ancestors(id) {
		d++
	}
	return d
}

// attached reports whether id is reachable from the root.
func (t *Tree) attached(id NodeID) bool {
	var last NodeID
	for a := range t.Ancestors(id) {
		last = a
	}
	return !t.root.IsZero() && last == t.root
}

// AppendChild attaches child as the last child of parent.
func (t *Tree) AppendChild(parent, child NodeID) {
	t.InsertChild(parent, len(t.mustGet(parent).children), child)
}

// InsertChild attaches child at index among parent's children.
// The child must be detached and must not be an ancestor of parent.
func (t *Tree) InsertChild(parent NodeID, index int, child NodeID) {
	t.mustOutsidePass("InsertChild")
	p := t.mustGet(parent)
	c := t.mustGet(child)
	if !c.parent.IsZero() || child == t.root {
		panic(fmt.Sprintf("layout: %v is already attached", child))
	}
	for a := range t.Ancestors(parent) {
		if a == child {
			panic(fmt.Sprintf("layout: inserting %v under %v would create a cycle", child, parent))
		}
	}
	if index < 0 || index > len(p.children) {
		panic(fmt.Sprintf("layout: child index %d out of range [0,%d]", index, len(p.children)))
	}
	c.parent = parent
	p.children = slices.Insert(p.children, index, child)
	t.MarkStructuralChange(child)
}

// RemoveChild detaches child from parent, keeping the subtree alive.
// Returns true if the child was found and removed.
func (t *Tree) RemoveChild(parent, child NodeID) bool {
	t.mustOutsidePass("RemoveChild")
	p := t.mustGet(parent)
	i := slices.Index(p.children, child)
	if i < 0 {
		return false
	}
	p.children = slices.Delete(p.children, i, i+1)
	t.mustGet(child).parent = NodeID{}
	t.store.ForceLayout(child)
	t.MarkDirty(parent)
	return true
}

// ReplaceChild puts replacement in old's slot and detaches old.
// The caller owns old afterwards and typically disposes it.
func (t *Tree) ReplaceChild(parent, old, replacement NodeID) {
	t.mustOutsidePass("ReplaceChild")
	i := slices.Index(t.mustGet(parent).children, old)
	if i < 0 {
		panic(fmt.Sprintf("layout: %v is not a child of %v", old, parent))
	}
	t.RemoveChild(parent, old)
	t.InsertChild(parent, i, replacement)
}

// Dispose detaches id and frees its whole subtree, evicting cached layout
// and props. IDs into the subtree become stale.
func (t *Tree) Dispose(id NodeID) {
	t.mustOutsidePass("Dispose")
	n := t.mustGet(id)
	if !n.parent.IsZero() {
		t.RemoveChild(n.parent, id)
	}
	if id == t.root {
		t.root = NodeID{}
	}
	for _, d := range slices.Collect(t.Descendants(id)) {
		t.store.Remove(d)
		delete(t.props, d)
		delete(t.dirty, d)
		delete(t.visualDirty, d)
		slot := &t.nodes[d.index]
		*slot = node{gen: slot.gen}
		t.free = append(t.free, d.index)
	}
}

// SetTransform attaches a local affine transform to id. Transforms only
// affect coordinate mapping and visual boxes, never sizes.
func (t *Tree) SetTransform(id NodeID, tr Transform) {
	t.mustOutsidePass("SetTransform")
	t.mustGet(id).transform = &tr
	t.visualDirty[id] = struct{}{}
}

// ClearTransform removes the local transform of id.
func (t *Tree) ClearTransform(id NodeID) {
	t.mustOutsidePass("ClearTransform")
	t.mustGet(id).transform = nil
	t.visualDirty[id] = struct{}{}
}

// Transform returns the local transform of id.
func (t *Tree) Transform(id NodeID) (Transform, bool) {
	n := t.mustGet(id)
	if n.transform == nil {
		return Transform{}, false
	}
	return *n.transform, true
}

// MarkDirty records that the layout-relevant state of id changed. The node
// is re-measured on the next pass, together with every ancestor whose size
// may depend on it.
func (t *Tree) MarkDirty(id NodeID) {
	t.mustOutsidePass("MarkDirty")
	t.mustGet(id)
	t.dirty[id] = struct{}{}
}

// MarkStructuralChange records that the subtree at id was replaced or
// inserted: its cache entry is evicted and its parent re-measured.
func (t *Tree) MarkStructuralChange(id NodeID) {
	t.mustOutsidePass("MarkStructuralChange")
	n := t.mustGet(id)
	t.store.ForceLayout(id)
	if n.parent.IsZero() {
		t.dirty[id] = struct{}{}
		return
	}
	t.dirty[n.parent] = struct{}{}
}

// IsDirty reports whether id is queued for re-measurement.
func (t *Tree) IsDirty(id NodeID) bool {
	_, ok := t.dirty[id]
	return ok
}

func (t *Tree) mustOutsidePass(op string) {
	if t.inPass {
		panic("layout: " + op + " called during a layout pass")
	}
}
