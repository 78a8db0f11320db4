package geometry

import "fmt"

type Point struct {
	X float64
	Y float64
}

// Vectors are kept distinct from points so that vertex positions and the
// differences between them can't be mixed up.
type Vector struct {
	X float64
	Y float64
}

type Label int

const (
	A Label = iota
	B
	C
)

var Labels = [3]Label{A, B, C}

func (l Label) String() string {
	switch l {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// A triangle is a value. Nothing in this package modifies a triangle in
// place; transformations return a new one.
type Triangle struct {
	A, B, C Point
}

// Interior angles in degrees, indexed by vertex label.
type AngleSet [3]float64

type BoundingBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// A triangle after it has been fitted onto a drawing surface. Scale is the
// uniform factor that was applied to the source coordinates.
type ViewportTriangle struct {
	Triangle
	Scale float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (t Triangle) String() string {
	return fmt.Sprintf("A%s B%s C%s", t.A, t.B, t.C)
}
