package geom

import (
	"log"

	"github.com/paulmach/orb"
)

// Result is the outcome of one reconstruction run.
type Result struct {
	Closed []Path // closed loops, in discovery order
	Open   []Path // open chains, in discovery order

	// Segments is the deduplicated canonical segment set the paths were
	// walked from, for diagnostics only.
	Segments []Segment

	// Moved lists every endpoint the snapper relocated by more than the
	// report epsilon.
	Moved []orb.Point

	// DroppedPrimitives counts input primitives of kinds the flattener does
	// not recognize; they are skipped, not rejected.
	DroppedPrimitives int
}

// Run executes the full reconstruction pipeline: flatten curved primitives
// into straight segments, snap near-duplicate endpoints, deduplicate the
// rewritten segments, and walk the segment graph into closed and open paths.
// Every operation is total over well-formed geometric input; degenerate
// primitives pass through as degenerate data rather than failing.
func Run(prims []Primitive, cfg *Config) *Result {
	tolerance := cfg.Tolerance()

	segs, dropped := Flatten(prims, cfg.ArcSegments)
	if dropped > 0 {
		log.Printf("[FLATTEN] dropped %d unrecognized primitives", dropped)
	}
	log.Printf("[FLATTEN] %d primitives -> %d segments", len(prims), len(segs))

	set := newPointSet()
	edges := internSegments(segs, set)

	snap := SnapPoints(set.pts, tolerance)
	log.Printf("[SNAP] tolerance %g, %d points, %d snapping events", tolerance, len(set.pts), len(snap.Moved))

	canon := canonicalizeSegments(edges, snap.Rep)
	log.Printf("[DEDUP] %d segments -> %d unique", len(edges), len(canon))

	closed, open := reconstructPaths(canon, set.pts, tolerance)
	log.Printf("[WALK] %d closed shapes, %d open paths", len(closed), len(open))

	out := make([]Segment, len(canon))
	for i, e := range canon {
		out[i] = Segment{A: set.pts[e[0]], B: set.pts[e[1]]}
	}

	return &Result{
		Closed:            closed,
		Open:              open,
		Segments:          out,
		Moved:             snap.Moved,
		DroppedPrimitives: dropped,
	}
}
