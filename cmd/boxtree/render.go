package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-boxtree/internal/wireframe"
)

func newRenderCmd() *cobra.Command {
	var (
		flags  windowFlags
		output string
		at     string
	)

	cmd := &cobra.Command{
		Use:   "render SCENE",
		Short: "Draw a wireframe PNG of a laid-out scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadScene(cmd.Context(), args[0], flags)
			if err != nil {
				return err
			}
			if !l.window.IsFinite() {
				return fmt.Errorf("render needs a finite window, got %s", l.window)
			}

			opts := []wireframe.Option{wireframe.WithLabels(l.built.Labels)}
			if at != "" {
				xs, ys, ok := strings.Cut(at, ",")
				if !ok {
					return fmt.Errorf("--at: want X,Y, got %q", at)
				}
				pos, err := parsePoint(xs, ys)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				if id, ok := l.tree.HitTest(pos); ok {
					opts = append(opts, wireframe.WithHighlight(id))
				}
			}

			w := int(math.Ceil(float64(l.window.Width)))
			h := int(math.Ceil(float64(l.window.Height)))
			r := wireframe.NewRenderer(w, h, opts...)
			r.Render(l.tree)
			if err := r.SavePNG(output); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), "wrote %s (%dx%d)", output, w, h)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "layout.png", "output PNG path")
	cmd.Flags().StringVar(&at, "at", "", "highlight the node hit at X,Y")
	return cmd
}
