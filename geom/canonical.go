package geom

import "github.com/paulmach/orb"

// pointSet interns points into stable integer indices in first-seen order.
// Exact coordinate equality is point identity; nearness is the snapper's
// business. All graph state downstream is keyed by these indices, never by
// float coordinates.
type pointSet struct {
	pts []orb.Point
	idx map[orb.Point]int
}

func newPointSet() *pointSet {
	return &pointSet{idx: make(map[orb.Point]int)}
}

func (s *pointSet) intern(p orb.Point) int {
	if i, ok := s.idx[p]; ok {
		return i
	}
	i := len(s.pts)
	s.pts = append(s.pts, p)
	s.idx[p] = i
	return i
}

// internSegments interns every segment endpoint and returns the segments as
// index pairs in input order.
func internSegments(segs []Segment, set *pointSet) [][2]int {
	edges := make([][2]int, len(segs))
	for i, s := range segs {
		edges[i] = [2]int{set.intern(s.A), set.intern(s.B)}
	}
	return edges
}

// canonicalizeSegments rewrites each endpoint index through the snap mapping
// and deduplicates the results as undirected pairs. Output pairs are stored
// low index first and keep first-seen order; the reconstruction walk depends
// on that order.
func canonicalizeSegments(edges [][2]int, rep []int) [][2]int {
	seen := make(map[[2]int]struct{}, len(edges))
	out := make([][2]int, 0, len(edges))
	for _, e := range edges {
		a, b := rep[e[0]], rep[e[1]]
		if b < a {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
