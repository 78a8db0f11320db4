package geometry

import "math"

type Kind int

const (
	Acute Kind = iota
	Right
	Obtuse
)

// Angles closer than this to 90 degrees count as right angles.
const RightAngleTolerance = 1e-6

func (k Kind) String() string {
	switch k {
	case Acute:
		return "acute"
	case Right:
		return "right"
	case Obtuse:
		return "obtuse"
	}
	return "unknown"
}

// AngleBetweenVectors returns the unsigned angle between v1 and v2 in degrees,
// in [0, 180]. The cosine is clamped before acos so that rounding can't push
// it outside the function's domain. Zero length vectors give NaN.
func AngleBetweenVectors(v1, v2 Vector) float64 {
	cos := v1.Dot(v2) / (v1.Length() * v2.Length())
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// CalculateAngles measures the interior angle at each vertex. The triangle must
// be valid (see IsValidTriangle); this is not checked.
func CalculateAngles(t Triangle) AngleSet {
	var angles AngleSet
	for _, label := range Labels {
		vertex := t.Vertex(label)
		p1, p2 := t.Others(label)
		angles[label] = AngleBetweenVectors(p1.Sub(vertex), p2.Sub(vertex))
	}
	return angles
}

// ValidateAngles is a diagnostic for floating point drift. It returns false and
// logs a warning when the angles don't sum to 180 within AngleSumTolerance, or
// when an angle is outside the open interval (0, 180). It never fails harder
// than that.
func ValidateAngles(angles AngleSet) bool {
	sum := angles.Sum()
	if math.Abs(sum-180) > AngleSumTolerance {
		Logger().Warn("angle validation failed",
			"sum", math.Round(sum*100)/100,
			"expected", 180.0,
		)
		return false
	}

	for _, label := range Labels {
		angle := angles[label]
		if angle <= 0 || angle >= 180 {
			Logger().Warn("invalid angle",
				"vertex", label.String(),
				"angle", math.Round(angle*100)/100,
			)
			return false
		}
	}
	return true
}

func (a AngleSet) At(l Label) float64 {
	return a[l]
}

func (a AngleSet) Sum() float64 {
	return a[A] + a[B] + a[C]
}

func (a AngleSet) Kind() Kind {
	largest := math.Max(a[A], math.Max(a[B], a[C]))
	if math.Abs(largest-90) < RightAngleTolerance {
		return Right
	}
	if largest > 90 {
		return Obtuse
	}
	return Acute
}
