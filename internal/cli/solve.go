package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/flowkit/mcmf"
)

// networkFile is the TOML layout of a network description:
//
//	source = "a"
//	sink   = "e"
//
//	[[edge]]
//	from     = "a"
//	to       = "b"
//	capacity = 10
//	cost     = 200
type networkFile struct {
	Source string     `toml:"source"`
	Sink   string     `toml:"sink"`
	Edges  []edgeDecl `toml:"edge"`
}

type edgeDecl struct {
	From     string  `toml:"from"`
	To       string  `toml:"to"`
	Capacity float64 `toml:"capacity"`
	Cost     float64 `toml:"cost"`
}

// errBadNetworkFile tags all network-file validation failures.
var errBadNetworkFile = errors.New("invalid network file")

// validate checks the declaration shape; solver-level validation (unknown
// labels, capacity coercion) happens in the mcmf package.
func (nf *networkFile) validate() error {
	if nf.Source == "" {
		return fmt.Errorf("%w: missing source", errBadNetworkFile)
	}
	if nf.Sink == "" {
		return fmt.Errorf("%w: missing sink", errBadNetworkFile)
	}
	if len(nf.Edges) == 0 {
		return fmt.Errorf("%w: no edges declared", errBadNetworkFile)
	}

	return nil
}

// newSolveCmd builds the `mcmf solve <network.toml>` command.
func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <network.toml>",
		Short: "Compute the min-cost max flow of a network file and print its paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var nf networkFile
			if _, err := toml.DecodeFile(args[0], &nf); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if err := nf.validate(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			logger.Debug("network loaded", "edges", len(nf.Edges), "source", nf.Source, "sink", nf.Sink)

			b := mcmf.New()
			for _, e := range nf.Edges {
				if err := b.AddEdge(e.From, e.To, e.Capacity, e.Cost); err != nil {
					return fmt.Errorf("edge %s→%s: %w", e.From, e.To, err)
				}
			}

			sol, err := b.Solve(nf.Source, nf.Sink)
			if err != nil {
				return err
			}
			logger.Debug("solved", "paths", len(sol.Paths))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "max flow:   %g\n", sol.MaxFlow)
			fmt.Fprintf(out, "total cost: %g\n", sol.TotalCost)
			for _, p := range sol.Paths {
				fmt.Fprintf(out, "%d × %s\n", p.Flow, strings.Join(p.Nodes, "→"))
			}

			return nil
		},
	}
}
