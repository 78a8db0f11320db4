package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapToViewport(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 3}}

	t.Run("fits within the padded surface and is centered", func(t *testing.T) {
		vt := MapToViewport(tri, 400, 400, 50)
		bounds := vt.Bounds()
		assert.GreaterOrEqual(t, bounds.MinX, 50.0)
		assert.GreaterOrEqual(t, bounds.MinY, 50.0)
		assert.LessOrEqual(t, bounds.MaxX, 350.0)
		assert.LessOrEqual(t, bounds.MaxY, 350.0)
		assert.InDelta(t, 200, bounds.Center().X, Epsilon)
		assert.InDelta(t, 200, bounds.Center().Y, Epsilon)

		// The wider axis limits the scale: 300 / 4.
		assert.InDelta(t, 75, vt.Scale, Epsilon)
		assert.InDelta(t, 50, vt.A.X, Epsilon)
		assert.InDelta(t, 87.5, vt.A.Y, Epsilon)
		assert.InDelta(t, 350, vt.B.X, Epsilon)
		assert.InDelta(t, 312.5, vt.C.Y, Epsilon)
	})

	t.Run("tall triangle is limited by height", func(t *testing.T) {
		tall := Triangle{Point{0, 0}, Point{1, 0}, Point{0, 10}}
		vt := MapToViewport(tall, 400, 300, 50)
		assert.InDelta(t, 20, vt.Scale, Epsilon)
		bounds := vt.Bounds()
		assert.InDelta(t, 50, bounds.MinY, Epsilon)
		assert.InDelta(t, 250, bounds.MaxY, Epsilon)
		assert.InDelta(t, 200, bounds.Center().X, Epsilon)
	})

	t.Run("preserves labels", func(t *testing.T) {
		vt := MapToViewport(tri, 400, 400, 50)
		// A stays bottom left, B bottom right, C top left.
		assert.Less(t, vt.A.X, vt.B.X)
		assert.Equal(t, vt.A.Y, vt.B.Y)
		assert.Equal(t, vt.A.X, vt.C.X)
		assert.Greater(t, vt.C.Y, vt.A.Y)
	})

	t.Run("preserves angles", func(t *testing.T) {
		triangles := []Triangle{
			tri,
			{Point{50, 280}, Point{300, 51}, Point{123, 99}},
			{Point{-7, 2}, Point{3.5, -8}, Point{0.25, 11}},
			{Point{0, 0}, Point{2, 0}, Point{1, 1.732}},
		}
		for _, source := range triangles {
			vt := MapToViewport(source, 640, 480, 20)
			assert.InDeltaSlice(t, CalculateAngles(source).slice(), CalculateAngles(vt.Triangle).slice(), 1e-9)
		}
	})

	t.Run("does not modify the source", func(t *testing.T) {
		source := tri
		MapToViewport(source, 400, 400, 50)
		assert.Equal(t, tri, source)
	})
}
