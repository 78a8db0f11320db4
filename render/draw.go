package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/internal"
)

// Stroke and fill the triangle, then draw its vertices on top.
func (r *Renderer) DrawTriangle(c *gg.Context, t geometry.Triangle) {
	c.NewSubPath()
	c.MoveTo(t.A.X, t.A.Y)
	c.LineTo(t.B.X, t.B.Y)
	c.LineTo(t.C.X, t.C.Y)
	c.ClosePath()

	c.SetHexColor(r.style.OutlineColor)
	c.SetLineWidth(r.style.OutlineWidth)
	c.StrokePreserve()
	c.SetHexColor(r.style.FillColor)
	c.Fill()

	for _, label := range geometry.Labels {
		r.DrawVertex(c, t.Vertex(label), label.String())
	}
}

// A filled dot at the vertex, with its label just below it.
func (r *Renderer) DrawVertex(c *gg.Context, p geometry.Point, label string) {
	c.NewSubPath()
	c.DrawCircle(p.X, p.Y, r.style.VertexRadius)
	c.SetHexColor(r.style.VertexColor)
	c.FillPreserve()
	c.SetHexColor(r.style.OutlineColor)
	c.SetLineWidth(r.style.VertexLineWidth)
	c.Stroke()

	x, y := c.TransformPoint(p.X, p.Y)
	drawText(c, r.vertexFace, r.style.OutlineColor, label, x, y+r.style.VertexLabelOffset)
}

// Arc around vertex spanning the interior angle between the edges to p1 and
// p2.
func (r *Renderer) DrawAngleArc(c *gg.Context, vertex, p1, p2 geometry.Point) {
	v1 := p1.Sub(vertex)
	v2 := p2.Sub(vertex)
	if v1.Length() == 0 || v2.Length() == 0 {
		internal.Fatalf("zero length edge at vertex %s", vertex)
	}

	start := v1.Angle()
	// Signed sweep from v1 to v2, always the short way round
	sweep := math.Atan2(v1.Cross(v2), v1.Dot(v2))

	c.NewSubPath()
	c.DrawArc(vertex.X, vertex.Y, r.style.AngleArcRadius, start, start+sweep)
	c.SetHexColor(r.style.AngleColor)
	c.SetLineWidth(r.style.AngleArcWidth)
	c.Stroke()
}

// Write the angle in degrees on the bisector of the angle at vertex.
func (r *Renderer) DrawAngleLabel(c *gg.Context, vertex, p1, p2 geometry.Point, degrees float64) {
	bisector := p1.Sub(vertex).Normalize().Add(p2.Sub(vertex).Normalize())
	if bisector.Length() == 0 {
		internal.Fatalf("no bisector at vertex %s", vertex)
	}
	position := vertex.Add(bisector.Normalize().Scale(r.style.AngleLabelRadius))

	x, y := c.TransformPoint(position.X, position.Y)
	drawText(c, r.angleFace, r.style.AngleColor, FormatAngle(degrees), x, y)
}

func FormatAngle(degrees float64) string {
	return fmt.Sprintf("%.1f°", degrees)
}

// Text has to be drawn with the identity matrix or it comes out upside down,
// so x and y are in native canvas coordinates.
func drawText(c *gg.Context, face font.Face, color, text string, x, y float64) {
	c.Push()
	defer c.Pop()
	c.Identity()
	c.SetFontFace(face)
	c.SetHexColor(color)
	c.DrawStringAnchored(text, x, y, 0.5, 0)
}
