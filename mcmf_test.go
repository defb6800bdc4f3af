// SPDX-License-Identifier: MIT
package mcmf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/flowkit/mcmf"
	"github.com/flowkit/mcmf/core"
	"github.com/flowkit/mcmf/decompose"
)

// SolveSuite exercises the assembled pipeline end to end.
type SolveSuite struct {
	suite.Suite
}

// TestSimpleGraph is the canonical scenario: two routes with distinct
// costs, bounded by the source's total out-capacity 10+2=12.
func (s *SolveSuite) TestSimpleGraph() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 10, 200))
	require.NoError(s.T(), b.AddEdge("b", "c", 20, 0))
	require.NoError(s.T(), b.AddEdge("c", "e", 15, 0))
	require.NoError(s.T(), b.AddEdge("a", "d", 2, 100))
	require.NoError(s.T(), b.AddEdge("d", "e", 3, 0))

	sol, err := b.Solve("a", "e")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12.0, sol.MaxFlow)
	require.Equal(s.T(), 2200.0, sol.TotalCost) // 10×200 + 2×100
	require.Equal(s.T(), []decompose.Path{
		{Flow: 10, Nodes: []string{"a", "b", "c", "e"}},
		{Flow: 2, Nodes: []string{"a", "d", "e"}},
	}, sol.Paths)
}

// TestPathFlowsSumToMaxFlow checks the aggregate decomposition invariant on
// a denser network.
func (s *SolveSuite) TestPathFlowsSumToMaxFlow() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("s", "a", 4, 1))
	require.NoError(s.T(), b.AddEdge("s", "b", 3, 2))
	require.NoError(s.T(), b.AddEdge("a", "b", 2, 0))
	require.NoError(s.T(), b.AddEdge("a", "t", 2, 3))
	require.NoError(s.T(), b.AddEdge("b", "t", 5, 1))

	sol, err := b.Solve("s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, sol.MaxFlow)

	var sum int64
	for _, p := range sol.Paths {
		require.Positive(s.T(), p.Flow)
		require.Equal(s.T(), "s", p.Nodes[0])
		require.Equal(s.T(), "t", p.Nodes[len(p.Nodes)-1])
		sum += p.Flow
	}
	require.Equal(s.T(), int64(7), sum)
}

// TestCheapRouteWins verifies the min-cost pass steers the flow even when
// the expensive route was found first.
func (s *SolveSuite) TestCheapRouteWins() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("s", "t", 5, 9))
	require.NoError(s.T(), b.AddEdge("s", "m", 5, 1))
	require.NoError(s.T(), b.AddEdge("m", "t", 5, 1))

	sol, err := b.Solve("s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10.0, sol.MaxFlow)
	require.Equal(s.T(), 55.0, sol.TotalCost) // 5×9 + 5×2
}

// TestFractionalCostTruncation pins CostScale behavior: precision below
// 1/1000 of a cost unit is truncated at encoding time.
func (s *SolveSuite) TestFractionalCostTruncation() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 2, 1.2345))

	sol, err := b.Solve("a", "b")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, sol.MaxFlow)
	require.Equal(s.T(), 2.468, sol.TotalCost) // 2 × trunc(1234.5)/1000
}

// TestCapacityCoercion verifies fractional capacities truncate to integers
// and non-positive results are rejected eagerly.
func (s *SolveSuite) TestCapacityCoercion() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 2.9, 0))
	err := b.AddEdge("a", "b", 0.4, 0) // truncates to 0
	require.True(s.T(), errors.Is(err, core.ErrNonPositiveCapacity))
	err = b.AddEdge("a", "b", -1, 0)
	require.True(s.T(), errors.Is(err, core.ErrNonPositiveCapacity))

	sol, err := b.Solve("a", "b")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, sol.MaxFlow)
}

// TestParallelEdges decomposes parallel instances into separate paths.
func (s *SolveSuite) TestParallelEdges() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 2, 3))
	require.NoError(s.T(), b.AddEdge("a", "b", 5, 1))

	sol, err := b.Solve("a", "b")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, sol.MaxFlow)
	require.Equal(s.T(), 11.0, sol.TotalCost) // 2×3 + 5×1
	require.Len(s.T(), sol.Paths, 2)
}

// TestSourceEqualsSink pins the documented boundary policy: zero flow,
// zero cost, no paths, no error.
func (s *SolveSuite) TestSourceEqualsSink() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 5, 1))

	sol, err := b.Solve("a", "a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), &mcmf.Solution{}, sol)
}

// TestDisconnected pins the no-path boundary: zero flow, empty path list.
func (s *SolveSuite) TestDisconnected() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 5, 1))
	require.NoError(s.T(), b.AddEdge("c", "d", 5, 1))

	sol, err := b.Solve("a", "d")
	require.NoError(s.T(), err)
	require.Zero(s.T(), sol.MaxFlow)
	require.Zero(s.T(), sol.TotalCost)
	require.Empty(s.T(), sol.Paths)
}

// TestUnknownVertex rejects labels never used as edge endpoints, before any
// solver runs.
func (s *SolveSuite) TestUnknownVertex() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 5, 1))

	_, err := b.Solve("nope", "b")
	require.True(s.T(), errors.Is(err, mcmf.ErrUnknownVertex))
	_, err = b.Solve("a", "nope")
	require.True(s.T(), errors.Is(err, mcmf.ErrUnknownVertex))
}

// TestFrozenAfterSolve verifies the network freezes on first Solve.
func (s *SolveSuite) TestFrozenAfterSolve() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("a", "b", 5, 1))
	_, err := b.Solve("a", "b")
	require.NoError(s.T(), err)

	err = b.AddEdge("b", "c", 5, 1)
	require.True(s.T(), errors.Is(err, core.ErrFrozen))
}

// TestRepeatedSolveIdentical verifies determinism of the whole pipeline on
// the frozen graph.
func (s *SolveSuite) TestRepeatedSolveIdentical() {
	b := mcmf.New()
	require.NoError(s.T(), b.AddEdge("s", "a", 4, 2))
	require.NoError(s.T(), b.AddEdge("s", "b", 4, 2))
	require.NoError(s.T(), b.AddEdge("a", "t", 4, 2))
	require.NoError(s.T(), b.AddEdge("b", "t", 4, 2))
	require.NoError(s.T(), b.AddEdge("a", "b", 1, 0))

	first, err := b.Solve("s", "t")
	require.NoError(s.T(), err)
	for i := 0; i < 5; i++ {
		again, err := b.Solve("s", "t")
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
}

// Entry point for running the suite.
func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
