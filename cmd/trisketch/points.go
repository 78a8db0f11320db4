package main

import (
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/input"
)

// Coordinates come either as six arguments or as "x y" lines on stdin.
func readPoints(args []string, stdin bool, in io.Reader) (geometry.Triangle, error) {
	if stdin {
		if len(args) > 0 {
			return geometry.Triangle{}, errors.New("give coordinates as arguments or on stdin, not both")
		}
		return input.ReadTriangle(in)
	}
	if len(args) != len(input.FieldNames) {
		return geometry.Triangle{}, errors.Errorf("expected %d coordinates (ax ay bx by cx cy), got %d", len(input.FieldNames), len(args))
	}
	var fields [6]string
	copy(fields[:], args)
	return input.ParseFields(fields)
}
