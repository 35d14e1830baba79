package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestFlattenArcDeterminism(t *testing.T) {
	center := orb.Point{3.5, -2.25}
	a := FlattenArc(center, 7.125, 33, 290, 100)
	b := FlattenArc(center, 7.125, 33, 290, 100)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("segment %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFlattenArcSegmentCount(t *testing.T) {
	segs := FlattenArc(orb.Point{0, 0}, 1, 0, 90, 10)
	if len(segs) != 10 {
		t.Fatalf("expected 10 segments, got %d", len(segs))
	}

	// Consecutive segments share endpoints exactly.
	for i := 1; i < len(segs); i++ {
		if segs[i].A != segs[i-1].B {
			t.Errorf("segment %d does not continue segment %d", i, i-1)
		}
	}
}

func TestFlattenArcFullCircleClosure(t *testing.T) {
	segs := FlattenArc(orb.Point{2, 3}, 5, 0, 360, 100)
	if len(segs) != 100 {
		t.Fatalf("expected 100 segments, got %d", len(segs))
	}

	first := segs[0].A
	last := segs[len(segs)-1].B
	if d := math.Hypot(first[0]-last[0], first[1]-last[1]); d > 1e-9 {
		t.Errorf("full circle does not close: first %v, last %v, gap %g", first, last, d)
	}
}

func TestFlattenArcWrapsNegativeSweep(t *testing.T) {
	// End angle below start angle sweeps through a full turn, never backwards.
	segs := FlattenArc(orb.Point{0, 0}, 1, 270, 90, 4)
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}

	// 270 -> 450 degrees: midpoint of the sweep is 0 degrees, i.e. (1, 0).
	mid := segs[1].B
	if math.Abs(mid[0]-1) > 1e-9 || math.Abs(mid[1]) > 1e-9 {
		t.Errorf("sweep midpoint = %v, want (1,0)", mid)
	}
}

func TestFlattenArcDegenerate(t *testing.T) {
	// Radius <= 0 is not an error: every point collapses onto the center.
	segs := FlattenArc(orb.Point{1, 1}, 0, 0, 360, 8)
	if len(segs) != 8 {
		t.Fatalf("expected 8 degenerate segments, got %d", len(segs))
	}
	for _, s := range segs {
		if s.A != (orb.Point{1, 1}) || s.B != (orb.Point{1, 1}) {
			t.Fatalf("degenerate segment not at center: %v", s)
		}
	}

	if segs := FlattenArc(orb.Point{0, 0}, 1, 0, 90, 0); segs != nil {
		t.Errorf("zero segment count should yield no segments, got %v", segs)
	}
}

func TestFlattenPolyline(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}}

	open := FlattenPolyline(pts, false)
	if len(open) != 2 {
		t.Fatalf("open polyline: expected 2 segments, got %d", len(open))
	}

	closed := FlattenPolyline(pts, true)
	if len(closed) != 3 {
		t.Fatalf("closed polyline: expected 3 segments, got %d", len(closed))
	}
	last := closed[len(closed)-1]
	if last.A != pts[2] || last.B != pts[0] {
		t.Errorf("closing segment = %v, want last->first", last)
	}

	// A two-vertex "closed" polyline gets no closing segment.
	two := FlattenPolyline(pts[:2], true)
	if len(two) != 1 {
		t.Errorf("two-vertex closed polyline: expected 1 segment, got %d", len(two))
	}

	if segs := FlattenPolyline(pts[:1], false); segs != nil {
		t.Errorf("single vertex should yield no segments, got %v", segs)
	}
}

// unknownPrimitive stands in for an entity kind the flattener has no case for.
type unknownPrimitive struct{}

func (unknownPrimitive) isPrimitive() {}

func TestFlattenDropsUnrecognizedKinds(t *testing.T) {
	prims := []Primitive{
		Line{Start: orb.Point{0, 0}, End: orb.Point{1, 0}},
		unknownPrimitive{},
		Circle{Center: orb.Point{0, 0}, Radius: 1},
		unknownPrimitive{},
	}

	segs, dropped := Flatten(prims, 10)
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if len(segs) != 11 {
		t.Errorf("expected 1 line + 10 circle segments, got %d", len(segs))
	}
}
