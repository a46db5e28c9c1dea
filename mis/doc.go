// Package mis provides two fast heuristics for the Maximum Independent Set
// problem on an undirected graph.Graph.
//
// What:
//
//   - Greedy: repeatedly takes the Active node with the smallest current
//     degree (lowest id on ties) and removes it together with its neighbors.
//     Deterministic.
//   - Randomized: each step collects the k smallest-degree Active nodes into a
//     sorted candidate pool, draws r ∈ [0,1) and, when r > epsilon, picks a
//     pool member uniformly at random; otherwise it takes the pool head (a
//     greedy step). With epsilon = 1 it is identical to Greedy for every k.
//
// Both heuristics own a private degree.Tracker for the duration of one call,
// so a single *graph.Graph can be shared by concurrent runs. The randomized
// generator is also private per call unless injected with WithRand, in which
// case the caller must not share it between goroutines.
//
// Complexity (default FullRescan policy):
//
//   - Greedy:     O(S·(N + E)) where S is the solution size.
//   - Randomized: O(S·(N·k + N + E)) worst case for the pool insertion.
//
// Options:
//
//   - WithSeed(seed)           reproducible randomized runs.
//   - WithRand(r)              inject a caller-owned *rand.Rand.
//   - WithUpdatePolicy(p)      degree.FullRescan (default) or degree.Incremental.
//   - WithOnSelect(fn)         observe every selection (node, degree, step).
//
// Errors:
//
//   - ErrInvalidParameter (wrapped by ErrInvalidK / ErrInvalidEpsilon) when
//     Randomized is called with k <= 0 or epsilon outside [0,1].
package mis
