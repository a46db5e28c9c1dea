// Package degree implements the per-run degree tracker shared by the
// independent-set heuristics.
//
// Every node carries an explicit State:
//
//	Active{Degree}  eligible for selection, with its current (discounted) degree
//	Blocked         adjacent to a selected node; never selected
//	Removed         selected into the solution
//
// Transitions only move forward: Active→Blocked for neighbors of a selected
// node and Active→Removed for the selected node itself. Nothing ever returns
// to Active, and an Active degree never grows and never drops below zero.
//
// Update policies after each SelectAndRemove:
//
//   - FullRescan (default): every still-Active node subtracts the number of its
//     neighbors that are Blocked or Removed from its current degree, clipped at 0.
//     The discount is cumulative: a neighbor blocked in an earlier step is
//     counted again on every later rescan. O(N·avg-degree) per removal.
//   - Incremental: only Active neighbors of the nodes that left Active in this
//     step are decremented, once per adjacency entry. Degrees then equal the
//     true degree in the remaining graph. Cheaper, but a different tie-break
//     sequence and possibly a different solution.
//
// A Tracker belongs to exactly one heuristic run and is not safe for
// concurrent use. The Graph it reads is never modified.
package degree
