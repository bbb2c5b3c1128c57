// Package scene loads box trees from TOML files.
//
// A scene names a window size and a root node; every node has a kind and
// may nest further nodes under children:
//
//	[window]
//	width = 500
//	height = 300
//
//	[root]
//	kind = "row"
//	wrap = true
//
//	[[root.children]]
//	kind = "box"
//	name = "a"
//	width = 200
//	height = 20
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-boxtree/internal/layout"
)

var (
	// ErrNoRoot is returned when a scene has no root node.
	ErrNoRoot = errors.New("scene has no root node")
	// ErrUnknownKind is returned for a node kind the loader does not know.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrInvalidValue is returned for an unknown enum value, a negative
	// dimension or a misplaced field.
	ErrInvalidValue = errors.New("invalid value")
)

// Scene is a decoded scene file.
type Scene struct {
	Window Window `toml:"window"`
	Root   *Node  `toml:"root"`
}

// Window is the size the root is laid out in.
type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Size returns the window size.
func (w Window) Size() layout.Size {
	return layout.Sz(w.Width, w.Height)
}

// Clamp returns the clamp the root is laid out under: anything up to the
// window size.
func (w Window) Clamp() layout.BoxClamp {
	return layout.MaxSize(w.Size())
}

// Node describes one node of the tree. Which fields apply depends on Kind.
type Node struct {
	Kind string `toml:"kind"`
	Name string `toml:"name"`

	// box and sized
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`

	// flex, row and column
	Direction string `toml:"direction"`
	Reverse   bool   `toml:"reverse"`
	Wrap      bool   `toml:"wrap"`
	Justify   string `toml:"justify"`
	Align     string `toml:"align"`

	// stack
	Fit string `toml:"fit"`

	// visibility and ignore_pointer
	Visible *bool `toml:"visible"`
	Ignore  *bool `toml:"ignore"`

	// props read by the parent
	Flex      *float32 `toml:"flex"`
	AlignSelf string   `toml:"align_self"`
	InParent  bool     `toml:"in_parent"`

	Transform *Transform `toml:"transform"`
	Children  []*Node    `toml:"children"`
}

// Transform is a node's local transform: scale, then rotate (degrees), then
// offset, all about the node's origin.
type Transform struct {
	Rotate  float32  `toml:"rotate"`
	ScaleX  *float32 `toml:"scale_x"`
	ScaleY  *float32 `toml:"scale_y"`
	OffsetX float32  `toml:"offset_x"`
	OffsetY float32  `toml:"offset_y"`
}

// Affine returns the transform as an affine matrix.
func (t Transform) Affine() layout.Transform {
	sx, sy := float32(1), float32(1)
	if t.ScaleX != nil {
		sx = *t.ScaleX
	}
	if t.ScaleY != nil {
		sy = *t.ScaleY
	}
	return layout.Transform{}.
		Scale(layout.Point{}, layout.Pt(sx, sy)).
		Rotate(layout.Point{}, t.Rotate*math.Pi/180).
		Offset(layout.Pt(t.OffsetX, t.OffsetY))
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from TOML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode scene: unknown key %q: %w", undecoded[0].String(), ErrInvalidValue)
	}
	if s.Root == nil {
		return nil, ErrNoRoot
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// validate rejects negative sizes, which would produce inverted clamps.
func (s *Scene) validate() error {
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("window: negative size %s: %w", s.Window.Size(), ErrInvalidValue)
	}
	return s.Root.validate("root")
}

func (n *Node) validate(path string) error {
	if n.Width < 0 || n.Height < 0 {
		return fmt.Errorf("%s: negative size %gx%g: %w", path, n.Width, n.Height, ErrInvalidValue)
	}
	if n.Flex != nil && *n.Flex < 0 {
		return fmt.Errorf("%s: negative flex %g: %w", path, *n.Flex, ErrInvalidValue)
	}
	for i, c := range n.Children {
		if err := c.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
