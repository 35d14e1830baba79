package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// FlattenArc discretizes a counter-clockwise arc into the given number of
// straight segments, in angular order from start to end. Angles are in
// degrees; an end angle below the start angle sweeps through a full turn.
// A nonpositive radius is not rejected: it yields degenerate segments that
// simply never extend a reconstructed path.
func FlattenArc(center orb.Point, radius, startAngle, endAngle float64, segments int) []Segment {
	if segments <= 0 {
		return nil
	}
	start := startAngle * math.Pi / 180
	end := endAngle * math.Pi / 180
	if end < start {
		end += 2 * math.Pi
	}
	step := (end - start) / float64(segments)

	prev := arcPoint(center, radius, start)
	segs := make([]Segment, 0, segments)
	for i := 1; i <= segments; i++ {
		next := arcPoint(center, radius, start+float64(i)*step)
		segs = append(segs, Segment{A: prev, B: next})
		prev = next
	}
	return segs
}

func arcPoint(center orb.Point, radius, angle float64) orb.Point {
	return orb.Point{
		center[0] + radius*math.Cos(angle),
		center[1] + radius*math.Sin(angle),
	}
}

// FlattenPolyline emits one segment per consecutive vertex pair, plus a
// closing segment from last to first vertex when the polyline is closed and
// has at least three vertices. Fewer than two vertices yield no segments.
func FlattenPolyline(vertices []orb.Point, closed bool) []Segment {
	if len(vertices) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(vertices))
	for i := 0; i+1 < len(vertices); i++ {
		segs = append(segs, Segment{A: vertices[i], B: vertices[i+1]})
	}
	if closed && len(vertices) > 2 {
		segs = append(segs, Segment{A: vertices[len(vertices)-1], B: vertices[0]})
	}
	return segs
}

// Flatten converts a primitive list into straight segments. Arcs and circles
// are discretized with arcSegments steps; a full circle is the arc 0..360.
// A primitive kind the flattener does not recognize is dropped, not rejected;
// the returned count reports how many were dropped.
func Flatten(prims []Primitive, arcSegments int) (segs []Segment, dropped int) {
	for _, p := range prims {
		switch v := p.(type) {
		case Line:
			segs = append(segs, Segment{A: v.Start, B: v.End})
		case Arc:
			segs = append(segs, FlattenArc(v.Center, v.Radius, v.StartAngle, v.EndAngle, arcSegments)...)
		case Circle:
			segs = append(segs, FlattenArc(v.Center, v.Radius, 0, 360, arcSegments)...)
		case Polyline:
			segs = append(segs, FlattenPolyline(v.Vertices, v.Closed)...)
		default:
			dropped++
		}
	}
	return segs, dropped
}
