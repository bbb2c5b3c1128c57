package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grindlemire/go-boxtree/internal/layout"
	"github.com/grindlemire/go-boxtree/internal/scene"
)

// laidOut is a scene built into a tree and laid out once.
type laidOut struct {
	tree   *layout.Tree
	built  *scene.Built
	window layout.Size
	stats  layout.PassStats
}

// loadScene reads the scene at path, builds it and runs one layout pass in
// its window, overridden by the flags.
func loadScene(ctx context.Context, path string, flags windowFlags) (*laidOut, error) {
	logger := loggerFromContext(ctx)

	s, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	if flags.width > 0 {
		s.Window.Width = flags.width
	}
	if flags.height > 0 {
		s.Window.Height = flags.height
	}

	tree := layout.NewTree(layout.WithLogger(logger))
	built, err := s.Build(tree)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	stats := tree.RunLayoutPass(s.Window.Clamp())
	logger.Debug("scene laid out", "path", path, "nodes", tree.Len(), "window", s.Window.Size())

	return &laidOut{tree: tree, built: built, window: s.Window.Size(), stats: stats}, nil
}

func (l *laidOut) label(id layout.NodeID) string {
	if s, ok := l.built.Labels[id]; ok {
		return s
	}
	return id.String()
}

// parsePoint parses the x and y arguments of a point.
func parsePoint(xs, ys string) (layout.Point, error) {
	x, err := strconv.ParseFloat(xs, 32)
	if err != nil {
		return layout.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(ys, 32)
	if err != nil {
		return layout.Point{}, fmt.Errorf("y: %w", err)
	}
	return layout.Pt(float32(x), float32(y)), nil
}
