package input

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osuushi/trisketch/geometry"
)

// SVG fixtures live in fixtures/, and are loaded by name sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) (geometry.Triangle, error) {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()
	return LoadSVG(fixture)
}
