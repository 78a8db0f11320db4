package input

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/trisketch/geometry"
)

// LoadSVG reads the first <polygon> element of an SVG document as a triangle.
// This is not a real SVG reader: transforms, viewBox and other shapes are
// ignored, and the polygon must list exactly three points.
func LoadSVG(in io.Reader) (geometry.Triangle, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return geometry.Triangle{}, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return geometry.Triangle{}, errors.New("no polygon found in svg")
	}

	pointString := polygons[0].Attributes["points"]
	var points []geometry.Point
	for _, pair := range strings.Fields(pointString) {
		coordinates := strings.Split(pair, ",")
		if len(coordinates) != 2 {
			return geometry.Triangle{}, errors.Errorf("invalid point string %q", pair)
		}
		x, err := parseCoordinate(coordinates[0])
		if err != nil {
			return geometry.Triangle{}, errors.Wrapf(err, "x of %q", pair)
		}
		y, err := parseCoordinate(coordinates[1])
		if err != nil {
			return geometry.Triangle{}, errors.Wrapf(err, "y of %q", pair)
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return fromPoints(points)
}
