package individual

// BrokenPairsDistance counts the number of edges present in this
// Individual's route structure that are absent from other's, where an
// edge (u, v) is considered present in a structure regardless of which
// endpoint stores it as a predecessor versus a successor.
//
// Every edge in a route structure is enumerated exactly once: each client
// c contributes its forward edge (c, succ(c)) — covering every edge except
// a route's leading depot edge — and each client that starts a route
// (prev(c) == 0) additionally contributes that one leading depot edge,
// unless it is the route's only client (its depot edge is then already
// its forward edge). Comparing both representations this way against
// other's neighbours avoids double-counting the internal edges a naive
// "sum prev-mismatch and succ-mismatch independently" count would produce.
//
// The count is taken over this Individual's distinct edges, so it equals
// other.BrokenPairsDistance(ind) whenever both route structures hold the
// same number of distinct edges; when those numbers differ, the two
// directions can give different counts. Because it only tests for
// presence of an adjacency regardless of direction, a route reversal
// leaves it at zero by construction. Both
// Individuals must share the same ProblemData (same client count);
// BrokenPairsDistance does not itself verify this.
func (ind *Individual) BrokenPairsDistance(other *Individual) int {
	n := len(ind.neighbours)
	count := 0
	for c := 1; c < n; c++ {
		a := ind.neighbours[c]
		b := other.neighbours[c]

		if a.Succ != b.Succ && a.Succ != b.Prev {
			count++
		}
		if a.Prev == 0 && a.Succ != 0 && a.Prev != b.Prev && a.Prev != b.Succ {
			count++
		}
	}

	return count
}
