// Package graphio reads and writes graphs in the plain edge-list format:
//
//	N
//	u v
//	u v
//	...
//
// The first non-blank line is the node count N >= 0. Every further non-blank
// line holds two whitespace-separated ids in [0,N). Edges are kept as given:
// duplicates and self-loops are not filtered. Errors carry the 1-based line
// number of the offending input.
package graphio
