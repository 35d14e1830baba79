package geom

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructSquare(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}

	closed, open := reconstructPaths(edges, pts, 1e-6)
	require.Len(t, closed, 1)
	require.Empty(t, open)

	path := closed[0]
	assert.Len(t, path, 5)
	assert.Equal(t, path[0], path[len(path)-1], "closed path must end where it starts")
	assert.True(t, path.Closed())
}

func TestReconstructOpenChain(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}

	closed, open := reconstructPaths(edges, pts, 1e-6)
	require.Empty(t, closed)
	require.Len(t, open, 1)

	assert.Equal(t, Path{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, open[0])
	assert.False(t, open[0].Closed())
}

func TestReconstructSegmentConservation(t *testing.T) {
	// A square with a dangling tail and a separate open chain: every edge
	// must be consumed exactly once across all returned paths.
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 0}, {5, 5}, {6, 5}}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {0, 3}, // square
		{1, 4}, // tail off vertex 1
		{5, 6}, // disjoint chain
	}

	closed, open := reconstructPaths(edges, pts, 1e-6)

	total := 0
	for _, p := range closed {
		total += len(p) - 1
	}
	for _, p := range open {
		total += len(p) - 1
	}
	assert.Equal(t, len(edges), total, "every edge consumed exactly once")
}

func TestReconstructBranchPointIsDeterministic(t *testing.T) {
	// Degree-4 vertex at the origin: the walk commits to the first unconsumed
	// neighbor in adjacency insertion order and never backtracks. Two runs
	// must decompose identically.
	pts := []orb.Point{{0, 0}, {1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}

	c1, o1 := reconstructPaths(edges, pts, 1e-6)
	c2, o2 := reconstructPaths(edges, pts, 1e-6)
	assert.Equal(t, c1, c2)
	assert.Equal(t, o1, o2)

	// First walk starts at the origin and greedily takes the first edge.
	require.NotEmpty(t, o1)
	assert.Equal(t, orb.Point{0, 0}, o1[0][0])
	assert.Equal(t, orb.Point{1, 0}, o1[0][1])
}

func TestReconstructSelfLoopNeverExtends(t *testing.T) {
	// A degenerate segment (both endpoints canonicalized to the same point)
	// is consumed but contributes no path step.
	pts := []orb.Point{{0, 0}, {1, 0}}
	edges := [][2]int{{0, 0}, {0, 1}}

	closed, open := reconstructPaths(edges, pts, 1e-6)
	require.Empty(t, closed)
	require.Len(t, open, 1)
	assert.Equal(t, Path{{0, 0}, {1, 0}}, open[0])
}

func TestReconstructIsolatedLoopTriangle(t *testing.T) {
	// Smallest closable loop: 3 distinct vertices, 4 points with the repeat.
	pts := []orb.Point{{0, 0}, {1, 0}, {0, 1}}
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}

	closed, open := reconstructPaths(edges, pts, 1e-6)
	require.Len(t, closed, 1)
	require.Empty(t, open)
	assert.Len(t, closed[0], 4)
	assert.Equal(t, closed[0][0], closed[0][3])
}
