// Package builder provides deterministic and seeded generators for
// graph.Graph fixtures: classic topologies (Path, Cycle, Star, Wheel,
// Complete, CompleteBipartite, Grid) and random families (RandomSparse,
// RandomRegular).
//
// The package offers:
//
//   - Constructor: func(*graph.Builder, builderConfig) error. Every
//     constructor appends its own fresh nodes, so composing several in one
//     BuildGraph call yields their disjoint union with ids assigned in call
//     order.
//   - BuilderOption: functional options resolved into builderConfig
//     (WithSeed, WithRand).
//   - Sentinel errors: ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed.
//
// Guarantees:
//
//   - Determinism: same constructors, same order, same seed ⇒ same graph,
//     including the order of every adjacency list.
//   - Fast-fail on nonsense option values via panics in option constructors;
//     constructors themselves only return errors.
//   - Documented complexity per constructor.
//
// Node numbering (relative to the first node a constructor adds):
//
//	Path/Cycle   0..n-1 along the path/ring
//	Star         0 is the center, 1..n-1 the leaves
//	Wheel        0 is the hub, 1..n-1 the rim
//	Bipartite    0..n1-1 left, n1..n1+n2-1 right
//	Grid         row-major, r*cols + c
package builder
