// Package input turns user supplied coordinates into triangles.
package input

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/trisketch/geometry"
)

var ErrMissingCoordinate = errors.New("missing coordinate")

// Field names in the order ParseFields expects them.
var FieldNames = [6]string{"ax", "ay", "bx", "by", "cx", "cy"}

// Sample coordinates are drawn from this inclusive range.
const (
	SampleMin = 50
	SampleMax = 300
)

// ParseFields reads the six coordinate fields ax, ay, bx, by, cx, cy. A blank
// field is reported as ErrMissingCoordinate. Zero is an ordinary value.
func ParseFields(fields [6]string) (geometry.Triangle, error) {
	var values [6]float64
	for i, field := range fields {
		value, err := parseCoordinate(field)
		if err != nil {
			return geometry.Triangle{}, errors.Wrapf(err, "field %s", FieldNames[i])
		}
		values[i] = value
	}
	return geometry.Triangle{
		A: geometry.Point{X: values[0], Y: values[1]},
		B: geometry.Point{X: values[2], Y: values[3]},
		C: geometry.Point{X: values[4], Y: values[5]},
	}, nil
}

// ReadTriangle reads three newline separated points in the form "x y". Blank
// lines are skipped.
func ReadTriangle(in io.Reader) (geometry.Triangle, error) {
	var points []geometry.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return geometry.Triangle{}, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return geometry.Triangle{}, errors.Wrap(err, "reading points")
	}
	return fromPoints(points)
}

// Sample returns a triangle with random integer coordinates between SampleMin
// and SampleMax. The result may be degenerate.
func Sample(rng *rand.Rand) geometry.Triangle {
	coordinate := func() float64 {
		return float64(rng.Intn(SampleMax-SampleMin+1) + SampleMin)
	}
	return geometry.Triangle{
		A: geometry.Point{X: coordinate(), Y: coordinate()},
		B: geometry.Point{X: coordinate(), Y: coordinate()},
		C: geometry.Point{X: coordinate(), Y: coordinate()},
	}
}

func parsePoint(line string) (geometry.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geometry.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: x, Y: y}, nil
}

func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingCoordinate
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid coordinate %q", s)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, errors.Errorf("coordinate %q is not finite", s)
	}
	return value, nil
}

func fromPoints(points []geometry.Point) (geometry.Triangle, error) {
	if len(points) != 3 {
		return geometry.Triangle{}, errors.Errorf("expected 3 points, got %d", len(points))
	}
	return geometry.Triangle{A: points[0], B: points[1], C: points[2]}, nil
}
