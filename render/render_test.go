package render

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/trisketch/geometry"
)

var rightTriangle = geometry.Triangle{
	A: geometry.Point{X: 0, Y: 0},
	B: geometry.Point{X: 4, Y: 0},
	C: geometry.Point{X: 0, Y: 3},
}

func TestRenderQuietWhenValid(t *testing.T) {
	var logs bytes.Buffer
	geometry.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	defer geometry.SetLogger(nil)

	result, err := newTestRenderer(t).Render(rightTriangle)
	require.NoError(t, err)
	assert.True(t, result.AnglesValid)
	assert.Empty(t, logs.String())
}

func TestRender(t *testing.T) {
	r := newTestRenderer(t)

	result, err := r.Render(rightTriangle)
	require.NoError(t, err)

	assert.True(t, result.AnglesValid)
	assert.InDelta(t, 90, result.Angles.At(geometry.A), 0.01)
	assert.InDelta(t, 36.87, result.Angles.At(geometry.B), 0.01)
	assert.InDelta(t, 53.13, result.Angles.At(geometry.C), 0.01)
	assert.InDelta(t, 75, result.Viewport.Scale, 1e-9)

	img := result.Image()
	assert.Equal(t, image.Rect(0, 0, 400, 400), img.Bounds())

	t.Run("background away from the triangle", func(t *testing.T) {
		assertPixel(t, img, 2, 2, 0xff, 0xff, 0xff)
		assertPixel(t, img, 397, 397, 0xff, 0xff, 0xff)
	})

	t.Run("vertex dot", func(t *testing.T) {
		// A lands on (50, 87.5) with Y up, which is row 312.5 of the image.
		assertPixel(t, img, 50, 312, 0x66, 0x7e, 0xea)
	})

	t.Run("translucent fill inside", func(t *testing.T) {
		// The centroid, well away from the arcs and labels.
		r, g, b := rgb(img, 150, 237)
		assert.Less(t, r, uint32(0xff))
		assert.Less(t, g, uint32(0xff))
		assert.Greater(t, b, r)
	})

	t.Run("y axis points up", func(t *testing.T) {
		// C is above A, so the top left corner of the bounding box at row 87
		// holds C's vertex dot.
		assertPixel(t, img, 50, 87, 0x66, 0x7e, 0xea)
	})
}

func TestRenderDegenerate(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.Render(geometry.Triangle{
		A: geometry.Point{X: 0, Y: 0},
		B: geometry.Point{X: 2, Y: 0},
		C: geometry.Point{X: 4, Y: 0},
	})
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestDrawAngleArcZeroEdge(t *testing.T) {
	r := newTestRenderer(t)
	c := gg.NewContext(10, 10)
	p := geometry.Point{X: 1, Y: 1}
	assert.Panics(t, func() {
		r.DrawAngleArc(c, p, p, geometry.Point{X: 5, Y: 5})
	})
}

func TestResultOutput(t *testing.T) {
	r := newTestRenderer(t)
	result, err := r.Render(rightTriangle)
	require.NoError(t, err)

	t.Run("encode", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, result.EncodePNG(&buf))
		decoded, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, result.Image().Bounds(), decoded.Bounds())
	})

	t.Run("save", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "triangle.png")
		require.NoError(t, result.SavePNG(path))
		loaded, err := gg.LoadPNG(path)
		require.NoError(t, err)
		assert.Equal(t, 400, loaded.Bounds().Dx())
	})

	t.Run("save to a missing directory", func(t *testing.T) {
		err := result.SavePNG(filepath.Join(t.TempDir(), "nope", "triangle.png"))
		assert.Error(t, err)
	})
}

func TestNewValidates(t *testing.T) {
	t.Run("bad color", func(t *testing.T) {
		style := DefaultStyle()
		style.AngleColor = "red"
		_, err := New(DefaultCanvas(), style)
		assert.EqualError(t, err, `angle_color: invalid hex color "red"`)
	})

	t.Run("padding too large", func(t *testing.T) {
		_, err := New(Canvas{Width: 100, Height: 400, Padding: 50}, DefaultStyle())
		assert.Error(t, err)
	})

	t.Run("empty canvas", func(t *testing.T) {
		_, err := New(Canvas{}, DefaultStyle())
		assert.Error(t, err)
	})

	t.Run("custom canvas", func(t *testing.T) {
		r, err := New(Canvas{Width: 640, Height: 480, Padding: 20}, DefaultStyle())
		require.NoError(t, err)
		result, err := r.Render(rightTriangle)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 640, 480), result.Image().Bounds())
		assert.Equal(t, 640, r.Canvas().Width)
	})
}

func TestIsHexColor(t *testing.T) {
	for _, valid := range []string{"#fff", "#2d3748", "#667eea1a", "#ABCDEF"} {
		assert.True(t, isHexColor(valid), valid)
	}
	for _, invalid := range []string{"", "fff", "#ff", "#12345", "#ggg", "#2d37481"} {
		assert.False(t, isHexColor(invalid), invalid)
	}
}

func TestFormatAngle(t *testing.T) {
	assert.Equal(t, "36.9°", FormatAngle(36.8699))
	assert.Equal(t, "90.0°", FormatAngle(90))
}

// Helpers

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(DefaultCanvas(), DefaultStyle())
	require.NoError(t, err)
	return r
}

func rgb(img image.Image, x, y int) (uint32, uint32, uint32) {
	r, g, b, _ := img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func assertPixel(t *testing.T, img image.Image, x, y int, r, g, b uint32) {
	t.Helper()
	ar, ag, ab := rgb(img, x, y)
	assert.Equal(t, []uint32{r, g, b}, []uint32{ar, ag, ab}, "pixel at (%d, %d)", x, y)
}
