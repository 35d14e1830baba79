package geom

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"
)

// reportEpsilon separates genuine snap movement from floating-point noise in
// the moved-point diagnostics. It is unrelated to the clustering tolerance.
const reportEpsilon = 1e-9

// SnapResult is the canonical mapping produced by clustering. Points holds
// the distinct input points in enumeration order; Rep[i] is the index of
// point i's canonical representative (i itself when unclustered). Moved lists
// every point whose snap distance exceeds the report epsilon.
type SnapResult struct {
	Points []orb.Point
	Rep    []int
	Moved  []orb.Point
}

// indexedPoint ties a point to its enumeration index inside the quadtree.
type indexedPoint struct {
	pt  orb.Point
	idx int
}

func (p indexedPoint) Point() orb.Point { return p.pt }

// SnapPoints clusters the given distinct points under the tolerance and
// returns the canonical mapping. Clustering is greedy in enumeration order,
// not transitive-closure: for each point whose tolerance-neighborhood
// contains no already-assigned point, a new cluster is formed from the whole
// neighborhood with its lowest-index member as representative; otherwise the
// point is skipped and keeps whatever assignment it received earlier, or
// none. Chain merging therefore depends on point order, and downstream
// reconstruction relies on exactly this policy.
func SnapPoints(points []orb.Point, tolerance float64) *SnapResult {
	res := &SnapResult{
		Points: points,
		Rep:    make([]int, len(points)),
	}
	for i := range res.Rep {
		res.Rep[i] = i
	}
	if len(points) == 0 {
		return res
	}

	qt := quadtree.New(pointBound(points, tolerance+1))
	for i, p := range points {
		qt.Add(indexedPoint{pt: p, idx: i})
	}

	assigned := make([]bool, len(points))
	var buf []orb.Pointer
	for _, p := range points {
		buf = neighborhood(qt, buf[:0], p, tolerance)

		group := make([]int, 0, len(buf))
		taken := false
		for _, ptr := range buf {
			j := ptr.(indexedPoint).idx
			group = append(group, j)
			taken = taken || assigned[j]
		}
		if taken {
			// Some neighbor already belongs to a cluster; point i keeps its
			// earlier assignment (or none) and the neighborhood is not
			// reprocessed.
			continue
		}
		sort.Ints(group)
		for _, j := range group {
			res.Rep[j] = group[0]
			assigned[j] = true
		}
	}

	for i, p := range points {
		if planar.Distance(p, points[res.Rep[i]]) > reportEpsilon {
			res.Moved = append(res.Moved, p)
		}
	}
	return res
}

// Canonical returns the canonical point for input index i.
func (r *SnapResult) Canonical(i int) orb.Point {
	return r.Points[r.Rep[i]]
}

// neighborhood collects the indices of all points within the closed-ball
// tolerance of p. The quadtree prunes by bounding box; exact distances decide
// membership, so a point at exactly the tolerance is included.
func neighborhood(qt *quadtree.Quadtree, buf []orb.Pointer, p orb.Point, tolerance float64) []orb.Pointer {
	pad := tolerance * 1e-9
	box := orb.Bound{
		Min: orb.Point{p[0] - tolerance - pad, p[1] - tolerance - pad},
		Max: orb.Point{p[0] + tolerance + pad, p[1] + tolerance + pad},
	}
	candidates := qt.InBound(nil, box)
	for _, c := range candidates {
		if planar.Distance(c.Point(), p) <= tolerance {
			buf = append(buf, c)
		}
	}
	return buf
}

// pointBound returns the bounding box of the points padded on every side.
func pointBound(points []orb.Point, pad float64) orb.Bound {
	b := orb.Bound{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p[0] < b.Min[0] {
			b.Min[0] = p[0]
		}
		if p[1] < b.Min[1] {
			b.Min[1] = p[1]
		}
		if p[0] > b.Max[0] {
			b.Max[0] = p[0]
		}
		if p[1] > b.Max[1] {
			b.Max[1] = p[1]
		}
	}
	b.Min[0] -= pad
	b.Min[1] -= pad
	b.Max[0] += pad
	b.Max[1] += pad
	return b
}
