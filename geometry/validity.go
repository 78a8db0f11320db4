package geometry

import "math"

// IsValidTriangle reports whether the three points enclose a non-zero area.
// Collinear or coincident points are rejected, since they would make the angle
// computation divide by zero.
func IsValidTriangle(t Triangle) bool {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	return math.Abs(ab.Cross(ac)) > CollinearEpsilon
}
