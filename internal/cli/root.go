// Package cli implements the mcmf command-line interface.
//
// The CLI is a thin presentation layer over the mcmf package: it parses a
// TOML network description, runs the solve pipeline, and prints the
// decomposed paths. It is built with cobra and logs via charmbracelet/log
// behind a --verbose flag; the logger travels on the command context.
//
// # Example
//
//	import "github.com/flowkit/mcmf/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the mcmf CLI and returns an error if any command fails.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// newRootCmd builds the command tree. Split out of Execute so tests can run
// commands against an in-memory context and captured output.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mcmf",
		Short:        "mcmf computes min-cost max flows and their path decomposition",
		Long:         `mcmf reads a TOML description of a capacitated, costed network, computes the maximum flow from source to sink, the minimum-cost routing of that amount, and prints the exact set of flow-carrying paths.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newSolveCmd())

	return root
}
