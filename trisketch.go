// Measure and draw a triangle given by three points.
//
// The geometry is a handful of pure functions over plain coordinates: a
// validity test, the interior angles at each vertex, and a mapping that fits
// the triangle onto a fixed size drawing surface. Render combines them with
// the default style to produce an image.
package trisketch

import (
	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/render"
)

type Point = geometry.Point
type Vector = geometry.Vector
type Triangle = geometry.Triangle
type AngleSet = geometry.AngleSet
type ViewportTriangle = geometry.ViewportTriangle

// Collinear and coincident points do not form a triangle. Check this before
// calling CalculateAngles.
func IsValidTriangle(t Triangle) bool {
	return geometry.IsValidTriangle(t)
}

// Interior angles in degrees, indexed by geometry.A, geometry.B and
// geometry.C. The triangle must be valid.
func CalculateAngles(t Triangle) AngleSet {
	return geometry.CalculateAngles(t)
}

func AngleBetweenVectors(v1, v2 Vector) float64 {
	return geometry.AngleBetweenVectors(v1, v2)
}

// A diagnostic only: false means the angles drifted from summing to 180
// degrees, and a warning was logged.
func ValidateAngles(angles AngleSet) bool {
	return geometry.ValidateAngles(angles)
}

func MapToViewport(t Triangle, surfaceWidth, surfaceHeight, padding float64) ViewportTriangle {
	return geometry.MapToViewport(t, surfaceWidth, surfaceHeight, padding)
}

// Draw the triangle on a default 400x400 canvas. Degenerate triangles return
// render.ErrDegenerate.
func Render(t Triangle) (*render.Result, error) {
	r, err := render.New(render.DefaultCanvas(), render.DefaultStyle())
	if err != nil {
		return nil, err
	}
	return r.Render(t)
}
