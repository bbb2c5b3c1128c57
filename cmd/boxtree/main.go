// Package main provides the boxtree CLI for inspecting scene files.
//
// Usage:
//
//	boxtree layout scene.toml            Print every node's box
//	boxtree hit scene.toml 120 40        Print the nodes under a point
//	boxtree render scene.toml -o out.png Draw a wireframe PNG
//	boxtree version                      Print version information
//
// All commands accept --width and --height to override the scene's window,
// and -v for debug logging of the layout passes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// windowFlags override the scene's window size when positive.
type windowFlags struct {
	width, height float32
}

func (w *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float32Var(&w.width, "width", 0, "window width (default: from the scene)")
	cmd.Flags().Float32Var(&w.height, "height", 0, "window height (default: from the scene)")
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "boxtree",
		Short:        "Lay out, hit test and draw box tree scenes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newHitCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "boxtree version %s\n", version)
		},
	}
}
