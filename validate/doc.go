// Package validate checks that a node set is independent in a graph.
//
// A solution is independent when no two of its nodes are adjacent. Validate
// builds a presence set from the solution, then walks the solution in order
// and each member's neighbor list in order; the first neighbor found in the
// set is reported as a Violation. WithExhaustive keeps scanning and reports
// every violating (node, neighbor) pair, each unordered pair appearing once
// from each side.
//
// A self-loop on a selected node is a violation (the node is its own
// neighbor). Duplicate ids in the solution are tolerated. Ids outside [0,N)
// make the solution invalid and are reported with Neighbor == -1.
//
// Complexity: O(S + Σ deg(s)) time for S selected nodes, O(S) extra space.
package validate
