// Package report prints a triangle's vertices and interior angles as text.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/trisketch/geometry"
)

// Write prints one line per vertex followed by the angle sum and the kind of
// triangle. valid is the result of geometry.ValidateAngles; when false the sum
// is flagged as drifting, but it is not treated as an error.
func Write(w io.Writer, name string, t geometry.Triangle, angles geometry.AngleSet, valid, colors bool) error {
	au := aurora.NewAurora(colors)
	p := &printer{w: w}

	title := "Triangle"
	if name != "" {
		title += " " + name
	}
	p.printf("%s\n", au.Bold(title))
	for _, label := range geometry.Labels {
		p.printf("  %s %-24s %s\n",
			au.Cyan(label.String()),
			t.Vertex(label).String(),
			au.Bold(formatDegrees(angles.At(label))),
		)
	}

	sum := angles.Sum()
	status := au.Green("ok")
	if !valid {
		status = au.Red(fmt.Sprintf("drift %+.2f°", sum-180))
	}
	p.printf("  Sum %s [%s]\n", formatDegrees(sum), status)
	p.printf("  Kind %s, area %s\n", angles.Kind(), formatNumber(t.Area()))
	return p.err
}

// WriteInvalid explains why a triangle can't be shown.
func WriteInvalid(w io.Writer, t geometry.Triangle, colors bool) error {
	au := aurora.NewAurora(colors)
	p := &printer{w: w}
	p.printf("%s %s\n", au.Red("Invalid triangle:"), t)
	p.printf("The points are collinear. Enter three points that are not on one line.\n")
	return p.err
}

func formatDegrees(degrees float64) string {
	return fmt.Sprintf("%.1f°", degrees)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.4g", v)
}

// Keeps the first write error so the formatting code above can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprintf(p.w, format, args...)
	p.err = errors.Wrap(err, "writing report")
}
