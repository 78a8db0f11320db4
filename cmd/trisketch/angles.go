package main

import (
	"os"

	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/report"
)

var (
	anglesCmd    = app.Command("angles", "Print the angles of a triangle without saving it.")
	anglesCoords = anglesCmd.Arg("coordinates", "ax ay bx by cx cy. Put -- first if any are negative.").Strings()
	anglesStdin  = anglesCmd.Flag("stdin", `Read "x y" lines from standard input.`).Bool()
)

func runAngles() error {
	tri, err := readPoints(*anglesCoords, *anglesStdin, os.Stdin)
	if err != nil {
		return err
	}
	if !geometry.IsValidTriangle(tri) {
		if err := report.WriteInvalid(os.Stderr, tri, useColor(os.Stderr)); err != nil {
			return err
		}
		return errInvalidTriangle
	}
	angles := geometry.CalculateAngles(tri)
	return report.Write(os.Stdout, "", tri, angles, geometry.ValidateAngles(angles), useColor(os.Stdout))
}
