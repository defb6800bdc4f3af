// Package mcmf computes minimum-cost maximum flows over named networks and
// re-expresses the result as human-readable source→sink paths.
//
// 🚀 What is mcmf?
//
//	An in-process, synchronous computational service: describe a directed
//	network edge by edge — string-labelled endpoints, positive integer
//	capacity, real per-unit cost — then solve once:
//		• Max flow: how much can reach the sink (Dinic).
//		• Min-cost flow: the cheapest routing of that amount
//		  (successive shortest paths).
//		• Path decomposition: the aggregate edge flows peeled into an
//		  exact, non-redundant list of flow-carrying paths.
//
// ✨ Why choose mcmf?
//
//   - Exact reconstruction – path flows sum to the max flow and per edge
//     to the solved assignment, verified internally after every solve
//   - Deterministic – fixed adjacency ordering; same network in, same
//     paths out, every time
//   - Pure Go core – no cgo, no background goroutines, no shared state
//
// Everything is organized under four subpackages plus this facade:
//
//	core/      — Builder and the frozen directed multigraph
//	flow/      — maximum-flow solver (Dinic)
//	mincost/   — min-cost flow of a prescribed value (SSP + SPFA)
//	decompose/ — exact path decomposition of a solved assignment
//
// Quick example:
//
//	b := mcmf.New()
//	_ = b.AddEdge("a", "b", 10, 200)
//	_ = b.AddEdge("b", "c", 20, 0)
//	_ = b.AddEdge("c", "e", 15, 0)
//	_ = b.AddEdge("a", "d", 2, 100)
//	_ = b.AddEdge("d", "e", 3, 0)
//	sol, err := b.Solve("a", "e")
//	// sol.MaxFlow = 12, sol.TotalCost = 2200
//	// sol.Paths: 10 × a→b→c→e, 2 × a→d→e
//
// Costs are encoded internally as integers scaled by CostScale; totals are
// decoded by the same shared constant, so reported costs are exact to
// 1/CostScale of a cost unit.
package mcmf
