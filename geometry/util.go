package geometry

import "math"

const (
	// Minimum absolute cross product of AB and AC for three points to count as
	// a triangle.
	CollinearEpsilon = 1e-3
	// Allowed drift of the angle sum away from 180 degrees.
	AngleSumTolerance = 0.1
)

func (p Point) Sub(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// The z component of the 3D cross product. Positive when other is
// counterclockwise from v.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Zero vectors stay zero rather than turning into NaN.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return v.Scale(1 / length)
}

// Direction of the vector in radians, measured counterclockwise from +X.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (t Triangle) Vertex(l Label) Point {
	switch l {
	case A:
		return t.A
	case B:
		return t.B
	case C:
		return t.C
	}
	panic("invalid label")
}

// The two vertices other than l, in label order.
func (t Triangle) Others(l Label) (Point, Point) {
	switch l {
	case A:
		return t.B, t.C
	case B:
		return t.A, t.C
	case C:
		return t.A, t.B
	}
	panic("invalid label")
}

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) Bounds() BoundingBox {
	return BoundingBox{
		MinX: math.Min(t.A.X, math.Min(t.B.X, t.C.X)),
		MinY: math.Min(t.A.Y, math.Min(t.B.Y, t.C.Y)),
		MaxX: math.Max(t.A.X, math.Max(t.B.X, t.C.X)),
		MaxY: math.Max(t.A.Y, math.Max(t.B.Y, t.C.Y)),
	}
}

func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}
