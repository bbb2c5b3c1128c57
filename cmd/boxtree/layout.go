package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "layout SCENE",
		Short: "Lay out a scene and print every node's box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadScene(cmd.Context(), args[0], flags)
			if err != nil {
				return err
			}
			printLayout(cmd, l)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func printLayout(cmd *cobra.Command, l *laidOut) {
	out := cmd.OutOrStdout()
	tree := l.tree

	printTitle(out, "Layout in %s", l.window)
	t := newTable("Node", "ID", "Depth", "Local", "Global", "Version")
	for id := range tree.Descendants(tree.Root()) {
		info, ok := tree.Store().LayoutInfo(id)
		if !ok {
			continue
		}
		local, ok := info.BoxRect()
		if !ok {
			continue
		}
		global, _ := tree.GlobalRect(id)
		label := l.label(id)
		for range tree.Depth(id) {
			label = "  " + label
		}
		t.Row(
			label,
			styleDim.Render(id.String()),
			strconv.Itoa(tree.Depth(id)),
			local.String(),
			global.String(),
			styleNumber.Render(strconv.FormatUint(info.Version, 10)),
		)
	}
	fmt.Fprintln(out, t)
	printDetail(out, "%d nodes, %d laid out, %d cache hits", tree.Len(), l.stats.Performed, l.stats.CacheHits)
}
