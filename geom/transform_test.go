package geom

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestOutputTransformIdentity(t *testing.T) {
	m := OutputTransform(1.0, false)
	assert.Equal(t, Identity(), m)

	p := orb.Point{2.5, -3}
	assert.Equal(t, p, m.Apply(p))
}

func TestOutputTransformScale(t *testing.T) {
	m := OutputTransform(0.5, false)
	assert.Equal(t, orb.Point{1, 2}, m.Apply(orb.Point{2, 4}))
}

func TestOutputTransformFlipY(t *testing.T) {
	m := OutputTransform(2, true)
	assert.Equal(t, orb.Point{4, -8}, m.Apply(orb.Point{2, 4}))
}

func TestTransformPaths(t *testing.T) {
	paths := []Path{
		{{0, 0}, {1, 0}},
		{{1, 1}, {2, 2}, {3, 3}},
	}

	out := TransformPaths(paths, OutputTransform(2, false))
	assert.Equal(t, []Path{
		{{0, 0}, {2, 0}},
		{{2, 2}, {4, 4}, {6, 6}},
	}, out)

	// Input untouched.
	assert.Equal(t, Path{{0, 0}, {1, 0}}, paths[0])
}
