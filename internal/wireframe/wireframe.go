// Package wireframe draws a laid-out tree as outlined boxes into a PNG.
//
// Every node is drawn as the quad its box maps to in global space, so local
// transforms show up as rotated or scaled outlines.
package wireframe

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/grindlemire/go-boxtree/internal/layout"
)

// depthColors cycles by tree depth.
var depthColors = []string{
	"#4c6ef5",
	"#12b886",
	"#fab005",
	"#fa5252",
	"#be4bdb",
	"#15aabf",
}

const highlightColor = "#e8590c"

// Option configures a Renderer.
type Option func(*Renderer)

// WithLabels draws a label at the top-left corner of each labelled node.
func WithLabels(labels map[layout.NodeID]string) Option {
	return func(r *Renderer) {
		r.labels = labels
	}
}

// WithHighlight fills the given node, typically a hit test result.
func WithHighlight(id layout.NodeID) Option {
	return func(r *Renderer) {
		r.highlight = id
	}
}

// Renderer rasterises trees onto a fixed-size canvas.
type Renderer struct {
	context   *gg.Context
	labels    map[layout.NodeID]string
	highlight layout.NodeID
}

// NewRenderer creates a renderer with a width x height canvas.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	r := &Renderer{context: gg.NewContext(width, height)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render clears the canvas and draws every measured node of tree, parents
// before children.
func (r *Renderer) Render(tree *layout.Tree) {
	dc := r.context
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	root := tree.Root()
	if root.IsZero() {
		return
	}
	for id := range tree.Descendants(root) {
		r.drawNode(tree, id)
	}
}

func (r *Renderer) drawNode(tree *layout.Tree, id layout.NodeID) {
	size, ok := tree.Store().LayoutBoxSize(id)
	if !ok {
		return
	}
	quad := tree.GlobalQuad(id, layout.RectFromSize(size).Corners())

	dc := r.context
	dc.NewSubPath()
	for _, p := range quad {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.ClosePath()

	color := depthColors[tree.Depth(id)%len(depthColors)]
	if id == r.highlight {
		color = highlightColor
	}
	dc.SetHexColor(color + "33")
	dc.FillPreserve()
	dc.SetHexColor(color)
	dc.SetLineWidth(1)
	dc.Stroke()

	if label, ok := r.labels[id]; ok && label != "" {
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawString(label, float64(quad[0].X)+2, float64(quad[0].Y)+12)
	}
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the canvas to filename.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
