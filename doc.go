// Package misp computes large independent sets of undirected graphs.
//
// An independent set is a set of nodes no two of which share an edge.
// Finding the largest one is NP-hard, so misp ships two fast heuristics
// and the tooling to check and benchmark them:
//
//	graph/     immutable int-id adjacency lists, Builder, connected components
//	degree/    per-run node state (active/blocked/removed) and degree refresh
//	mis/       Greedy (minimum degree) and Randomized (top-k, ε-diversified)
//	validate/  independence check, first violation or every violation
//	graphio/   the "N\nu v\n..." edge-list format, read and write
//	builder/   path, cycle, star, wheel, complete, bipartite, grid, G(n,p), d-regular
//	bench/     multi-file runs, batch averages, append-only result log
//	cmd/misp   CLI: solve, bench, generate
//
// Quick ASCII example:
//
//	0───1───2───3───4
//
// Greedy picks 0 (degree 1), blocks 1, picks 2, blocks 3, picks 4.
//
//	go install github.com/katalvlaran/misp/cmd/misp@latest
//	misp generate -t sparse -n 1000 -p 0.1 -o g.txt
//	misp solve -a randomized --epsilon 0.9 -k 3 --seed 7 g.txt
package misp
