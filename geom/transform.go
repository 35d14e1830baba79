package geom

import "github.com/paulmach/orb"

// AffineMatrix for 2D transforms: x' = ax + by + tx, y' = cx + dy + ty
type AffineMatrix struct {
	A  float64
	B  float64
	Tx float64
	C  float64
	D  float64
	Ty float64
}

// Identity returns an identity matrix (no transformation)
func Identity() AffineMatrix {
	return AffineMatrix{A: 1, B: 0, Tx: 0, C: 0, D: 1, Ty: 0}
}

// OutputTransform builds the post-reconstruction output transform: uniform
// scaling, optionally mirrored about the X axis. It applies to output
// coordinates only and never feeds back into reconstruction.
func OutputTransform(scale float64, flipY bool) AffineMatrix {
	d := scale
	if flipY {
		d = -scale
	}
	return AffineMatrix{A: scale, D: d}
}

// Apply transforms a single point.
func (m AffineMatrix) Apply(p orb.Point) orb.Point {
	return orb.Point{
		m.A*p[0] + m.B*p[1] + m.Tx,
		m.C*p[0] + m.D*p[1] + m.Ty,
	}
}

// TransformPath applies an affine transform to every point of a path.
func TransformPath(p Path, m AffineMatrix) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = m.Apply(pt)
	}
	return out
}

// TransformPaths applies an affine transform to a path list.
func TransformPaths(paths []Path, m AffineMatrix) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = TransformPath(p, m)
	}
	return out
}
