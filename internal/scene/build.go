package scene

import (
	"fmt"

	"github.com/grindlemire/go-boxtree/internal/layout"
	"github.com/grindlemire/go-boxtree/internal/widget"
)

// Built is the result of instantiating a Scene into a tree.
type Built struct {
	Root layout.NodeID
	// Names maps each named node to its id.
	Names map[string]layout.NodeID
	// Labels maps every node to a human readable label: its name if it has
	// one, otherwise its kind.
	Labels map[layout.NodeID]string
}

// Lookup returns the id of the node called name.
func (b *Built) Lookup(name string) (layout.NodeID, bool) {
	id, ok := b.Names[name]
	return id, ok
}

// Build creates the scene's nodes in tree and makes the scene root the tree
// root. The tree is not laid out.
//
// The root defines global space, so it may not carry a transform.
func (s *Scene) Build(tree *layout.Tree) (*Built, error) {
	if s.Root == nil {
		return nil, ErrNoRoot
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Root.Transform != nil {
		return nil, fmt.Errorf("root: transform on the root node: %w", ErrInvalidValue)
	}
	b := &Built{
		Names:  make(map[string]layout.NodeID),
		Labels: make(map[layout.NodeID]string),
	}
	root, err := b.build(tree, s.Root, "root")
	if err != nil {
		return nil, err
	}
	tree.SetRoot(root)
	b.Root = root
	return b, nil
}

func (b *Built) build(tree *layout.Tree, n *Node, path string) (layout.NodeID, error) {
	r, err := n.render()
	if err != nil {
		return layout.NodeID{}, fmt.Errorf("%s: %w", path, err)
	}
	id := tree.NewNode(r)

	label := n.Kind
	if n.Name != "" {
		if _, dup := b.Names[n.Name]; dup {
			return layout.NodeID{}, fmt.Errorf("%s: duplicate name %q: %w", path, n.Name, ErrInvalidValue)
		}
		b.Names[n.Name] = id
		label = n.Name
	}
	b.Labels[id] = label

	if n.Transform != nil {
		tree.SetTransform(id, n.Transform.Affine())
	}

	for i, c := range n.Children {
		child, err := b.build(tree, c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return layout.NodeID{}, err
		}
		tree.AppendChild(id, child)
		if err := c.applyProps(tree, child); err != nil {
			return layout.NodeID{}, fmt.Errorf("%s.children[%d]: %w", path, i, err)
		}
	}
	return id, nil
}

func (n *Node) applyProps(tree *layout.Tree, id layout.NodeID) error {
	if n.Flex != nil {
		widget.Expanded(tree, id, *n.Flex)
	}
	if n.AlignSelf != "" {
		a, err := parseAlign(n.AlignSelf)
		if err != nil {
			return err
		}
		widget.AlignSelf(tree, id, a)
	}
	if n.InParent {
		widget.InParentLayout(tree, id)
	}
	return nil
}

func (n *Node) render() (layout.Render, error) {
	size := layout.Sz(n.Width, n.Height)
	switch n.Kind {
	case "flex", "row", "column":
		return n.flex()
	case "box":
		return &widget.Box{Size: size}, nil
	case "sized":
		return &widget.SizedBox{Size: size}, nil
	case "stack":
		fit, err := lookup(n.Fit, widget.StackLoose, widget.StackExpand, widget.StackPassthrough)
		if err != nil {
			return nil, fmt.Errorf("fit: %w", err)
		}
		return &widget.Stack{Fit: fit}, nil
	case "visibility":
		return &widget.Visibility{Visible: n.Visible == nil || *n.Visible}, nil
	case "ignore_pointer":
		return &widget.IgnorePointer{Ignore: n.Ignore == nil || *n.Ignore}, nil
	default:
		return nil, fmt.Errorf("%q: %w", n.Kind, ErrUnknownKind)
	}
}

func (n *Node) flex() (*layout.Flex, error) {
	f := &layout.Flex{Reverse: n.Reverse, Wrap: n.Wrap}
	var err error
	switch n.Kind {
	case "row":
		f.Direction = layout.Row
	case "column":
		f.Direction = layout.Column
	default:
		if f.Direction, err = lookup(n.Direction, layout.Row, layout.Column); err != nil {
			return nil, fmt.Errorf("direction: %w", err)
		}
	}
	if f.JustifyContent, err = lookup(n.Justify,
		layout.JustifyStart, layout.JustifyCenter, layout.JustifyEnd,
		layout.JustifySpaceBetween, layout.JustifySpaceAround, layout.JustifySpaceEvenly,
	); err != nil {
		return nil, fmt.Errorf("justify: %w", err)
	}
	if f.AlignItems, err = parseAlign(n.Align); err != nil {
		return nil, fmt.Errorf("align: %w", err)
	}
	return f, nil
}

func parseAlign(s string) (layout.Align, error) {
	return lookup(s, layout.AlignStart, layout.AlignCenter, layout.AlignEnd, layout.AlignStretch)
}

// lookup matches s against the String form of values. An empty s selects
// the first value.
func lookup[T fmt.Stringer](s string, values ...T) (T, error) {
	if s == "" {
		return values[0], nil
	}
	for _, v := range values {
		if v.String() == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%q: %w", s, ErrInvalidValue)
}
