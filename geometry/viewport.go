package geometry

import "math"

// MapToViewport fits the triangle into a surfaceWidth x surfaceHeight region,
// leaving padding on every side. The same scale is used on both axes, so
// angles are preserved, and the bounding box of the result is centered on the
// surface. The source triangle is left untouched.
//
// A bounding box with zero width or height yields an infinite scale. That only
// happens for triangles IsValidTriangle already rejects, so it isn't guarded
// here.
func MapToViewport(t Triangle, surfaceWidth, surfaceHeight, padding float64) ViewportTriangle {
	bounds := t.Bounds()
	scaleX := (surfaceWidth - 2*padding) / bounds.Width()
	scaleY := (surfaceHeight - 2*padding) / bounds.Height()
	scale := math.Min(scaleX, scaleY)

	surfaceCenter := Point{X: surfaceWidth / 2, Y: surfaceHeight / 2}
	boundsCenter := bounds.Center()

	mapPoint := func(p Point) Point {
		return surfaceCenter.Add(p.Sub(boundsCenter).Scale(scale))
	}

	return ViewportTriangle{
		Triangle: Triangle{
			A: mapPoint(t.A),
			B: mapPoint(t.B),
			C: mapPoint(t.C),
		},
		Scale: scale,
	}
}
