package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHitCmd() *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "hit SCENE X Y",
		Short: "Print the nodes under a point, root first",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}
			l, err := loadScene(cmd.Context(), args[0], flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			path := l.tree.HitTestPath(pos)
			if len(path) == 0 {
				fmt.Fprintf(out, "no hit at (%g,%g)\n", pos.X, pos.Y)
				return nil
			}
			labels := make([]string, len(path))
			for i, id := range path {
				labels[i] = l.label(id)
			}
			printSuccess(out, "%s", strings.Join(labels, " > "))
			local := l.tree.MapFromGlobal(pos, path[len(path)-1])
			printDetail(out, "local position (%g,%g)", local.X, local.Y)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
