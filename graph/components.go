package graph

// Components returns the connected components of g. Components are ordered
// by their smallest node id; nodes inside a component appear in BFS order
// starting from that smallest id. Isolated nodes form singleton components.
//
// Time:   O(N + E).
// Memory: O(N) for visited flags and the queue.
func (g *Graph) Components() [][]int {
	n := g.Order()
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component; the queue doubles as the component.
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
