package geom

import "github.com/paulmach/orb"

// Primitive is a raw drawing entity handed to the pipeline by the format
// reader. The concrete types below mirror the entity kinds the reader
// recognizes; the pipeline consumes them read-only and ignores any other
// entity attributes (layers, colors, line styles).
type Primitive interface {
	isPrimitive()
}

// Line is a straight segment between two endpoints.
type Line struct {
	Start orb.Point
	End   orb.Point
}

// Arc is a circular arc swept counter-clockwise from StartAngle to EndAngle.
// Angles are in degrees; an end angle numerically below the start angle means
// the sweep wraps through a full turn.
type Arc struct {
	Center     orb.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Circle is a full circle, equivalent to an Arc sweeping 0 to 360 degrees.
type Circle struct {
	Center orb.Point
	Radius float64
}

// Polyline is an ordered vertex chain, optionally closed back to its first
// vertex.
type Polyline struct {
	Vertices []orb.Point
	Closed   bool
}

func (Line) isPrimitive()     {}
func (Arc) isPrimitive()      {}
func (Circle) isPrimitive()   {}
func (Polyline) isPrimitive() {}

// Segment is an undirected straight segment between two endpoints. Endpoint
// order carries no meaning; two segments with swapped endpoints are the same
// segment.
type Segment struct {
	A orb.Point
	B orb.Point
}

// Path is an ordered point sequence produced by walking the segment graph.
// A closed path has its last point forced equal to its first.
type Path []orb.Point

// Closed reports whether the path is a closed loop: more than two points with
// first and last exactly equal (the walk forces this equality on closure).
func (p Path) Closed() bool {
	return len(p) > 2 && p[0] == p[len(p)-1]
}
