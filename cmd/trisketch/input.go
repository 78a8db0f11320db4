package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/input"
	"github.com/osuushi/trisketch/names"
	"github.com/osuushi/trisketch/session"
)

var (
	inputCmd    = app.Command("input", "Enter three points and keep them for show.")
	inputCoords = inputCmd.Arg("coordinates", "ax ay bx by cx cy. Put -- first if any are negative.").Strings()
	inputStdin  = inputCmd.Flag("stdin", `Read "x y" lines from standard input.`).Bool()
	inputSVG    = inputCmd.Flag("svg", "Read the first polygon of an SVG file.").ExistingFile()
	inputSample = inputCmd.Flag("sample", "Use random sample coordinates.").Bool()
	inputName   = inputCmd.Flag("name", "Name for the triangle. A random one is picked by default.").String()
)

// Where the points of a new triangle come from. At most one of Stdin, SVG and
// Sample may be set, and only when Coords is empty.
type inputSources struct {
	Coords []string
	Stdin  bool
	SVG    string
	Sample bool
}

func runInput() error {
	tri, err := inputTriangle(inputSources{
		Coords: *inputCoords,
		Stdin:  *inputStdin,
		SVG:    *inputSVG,
		Sample: *inputSample,
	}, os.Stdin, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	store, err := sessionStore()
	if err != nil {
		return err
	}
	return saveInput(store, tri, *inputName, os.Stdout)
}

func saveInput(store session.Store, tri geometry.Triangle, name string, stdout io.Writer) error {
	if name == "" {
		name = names.New()
	}
	if err := store.Save(session.Session{Name: name, Triangle: tri}); err != nil {
		return err
	}
	logger.Debug("saved session", "path", store.Path, "name", name, "triangle", tri.String())

	fmt.Fprintf(stdout, "Saved triangle %s: %s\n", name, tri)
	fmt.Fprintln(stdout, `Run "trisketch show" to draw it.`)
	return nil
}

func inputTriangle(src inputSources, stdin io.Reader, rng *rand.Rand) (geometry.Triangle, error) {
	sources := 0
	for _, set := range []bool{src.Stdin, src.SVG != "", src.Sample} {
		if set {
			sources++
		}
	}
	if sources > 1 || (sources == 1 && len(src.Coords) > 0) {
		return geometry.Triangle{}, errors.New("use only one of coordinates, --stdin, --svg and --sample")
	}

	switch {
	case src.Sample:
		return input.Sample(rng), nil
	case src.SVG != "":
		f, err := os.Open(src.SVG)
		if err != nil {
			return geometry.Triangle{}, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		return input.LoadSVG(f)
	}
	return readPoints(src.Coords, src.Stdin, stdin)
}
