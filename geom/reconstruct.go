package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// reconstructPaths walks the undirected segment graph until every edge has
// been consumed exactly once, splitting the walks into closed loops and open
// chains.
//
// The walk is greedy and never backtracks: at each vertex the first
// unconsumed edge in adjacency insertion order is taken. At a branch point
// (degree > 2) this commits to a deterministic but arbitrary decomposition,
// not a topologically optimal one. Self-loop edges are consumed where they
// are met but never extend a path.
func reconstructPaths(edges [][2]int, pts []orb.Point, tolerance float64) (closed, open []Path) {
	adj := make(map[int][]int, len(edges))
	var order []int
	touch := func(v int) {
		if _, ok := adj[v]; !ok {
			adj[v] = nil
			order = append(order, v)
		}
	}
	for _, e := range edges {
		touch(e[0])
		touch(e[1])
		adj[e[0]] = append(adj[e[0]], e[1])
		if e[1] != e[0] {
			adj[e[1]] = append(adj[e[1]], e[0])
		}
	}

	consumed := make(map[[2]int]bool, len(edges))
	visited := make(map[int]bool, len(adj))

	for _, start := range order {
		if visited[start] {
			continue
		}
		path, isClosed := walk(start, adj, consumed, pts, tolerance)
		for _, v := range path {
			visited[v] = true
		}

		out := make(Path, len(path))
		for i, v := range path {
			out[i] = pts[v]
		}
		if isClosed {
			// Loop closure: force the endpoint equality the tolerance check
			// established.
			out[len(out)-1] = out[0]
			closed = append(closed, out)
		} else {
			open = append(open, out)
		}
	}
	return closed, open
}

// walk consumes edges from start until no unconsumed edge remains at the
// current vertex, or the path closes back onto its first point within the
// tolerance.
func walk(start int, adj map[int][]int, consumed map[[2]int]bool, pts []orb.Point, tolerance float64) (path []int, isClosed bool) {
	path = []int{start}
	cur := start
	for {
		next := -1
		for _, nb := range adj[cur] {
			key := edgeKey(cur, nb)
			if consumed[key] {
				continue
			}
			consumed[key] = true
			if nb == cur {
				continue
			}
			next = nb
			break
		}
		if next < 0 {
			return path, false
		}
		path = append(path, next)
		cur = next
		if len(path) > 2 && planar.Distance(pts[path[0]], pts[cur]) <= tolerance {
			return path, true
		}
	}
}

func edgeKey(a, b int) [2]int {
	if b < a {
		a, b = b, a
	}
	return [2]int{a, b}
}
