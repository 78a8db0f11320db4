// Package render draws a triangle and its interior angles onto a raster
// canvas.
//
// Every draw helper takes the *gg.Context to draw on explicitly, so several
// renderings can be in flight without sharing state.
package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/internal"
)

var ErrDegenerate = errors.New("points are collinear and do not form a triangle")

type Renderer struct {
	canvas     Canvas
	style      Style
	vertexFace font.Face
	angleFace  font.Face
}

type Result struct {
	Viewport geometry.ViewportTriangle
	Angles   geometry.AngleSet
	// False when the angle diagnostics flagged floating point drift. The
	// drawing is still produced.
	AnglesValid bool

	context *gg.Context
}

func New(canvas Canvas, style Style) (*Renderer, error) {
	if err := canvas.Validate(); err != nil {
		return nil, err
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing bold font")
	}

	return &Renderer{
		canvas:     canvas,
		style:      style,
		vertexFace: truetype.NewFace(bold, &truetype.Options{Size: style.VertexFontSize}),
		angleFace:  truetype.NewFace(bold, &truetype.Options{Size: style.AngleLabelFontSize}),
	}, nil
}

func (r *Renderer) Canvas() Canvas {
	return r.canvas
}

// Render fits the triangle onto the canvas and draws it with its angles. A
// degenerate triangle is rejected with ErrDegenerate. Angle drift is only
// logged.
func (r *Renderer) Render(t geometry.Triangle) (result *Result, err error) {
	defer func() {
		recoveredErr := internal.HandleRenderPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if !geometry.IsValidTriangle(t) {
		return nil, errors.Wrapf(ErrDegenerate, "cannot render %s", t)
	}

	vt := geometry.MapToViewport(t,
		float64(r.canvas.Width),
		float64(r.canvas.Height),
		r.canvas.Padding,
	)
	angles := geometry.CalculateAngles(vt.Triangle)
	valid := geometry.ValidateAngles(angles)
	geometry.Logger().Debug("rendering triangle",
		"source", t.String(),
		"viewport", vt.Triangle.String(),
		"scale", vt.Scale,
	)

	c := gg.NewContext(r.canvas.Width, r.canvas.Height)
	r.Draw(c, vt.Triangle, angles)

	return &Result{
		Viewport:    vt,
		Angles:      angles,
		AnglesValid: valid,
		context:     c,
	}, nil
}

// Draw paints the background, the triangle, and the angle arcs and labels.
// The triangle is in canvas coordinates with Y pointing up.
func (r *Renderer) Draw(c *gg.Context, t geometry.Triangle, angles geometry.AngleSet) {
	c.SetHexColor(r.style.Background)
	c.Clear()

	c.Push()
	defer c.Pop()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(c.Height()))
	c.Scale(1, -1)

	r.DrawTriangle(c, t)
	for _, label := range geometry.Labels {
		vertex := t.Vertex(label)
		p1, p2 := t.Others(label)
		r.DrawAngleArc(c, vertex, p1, p2)
	}
	for _, label := range geometry.Labels {
		vertex := t.Vertex(label)
		p1, p2 := t.Others(label)
		r.DrawAngleLabel(c, vertex, p1, p2, angles.At(label))
	}
}

func (res *Result) Image() image.Image {
	return res.context.Image()
}

func (res *Result) SavePNG(path string) error {
	return errors.Wrapf(res.context.SavePNG(path), "saving %s", path)
}

func (res *Result) EncodePNG(w io.Writer) error {
	return errors.Wrap(res.context.EncodePNG(w), "encoding png")
}

// Print a saved PNG inline in the terminal. Only iTerm understands the escape
// sequence; other terminals show garbage.
func CatToTerminal(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "printing %s", path)
}
