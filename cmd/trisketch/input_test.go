package main

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/trisketch/geometry"
)

func TestInputTriangle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("coordinates", func(t *testing.T) {
		tri, err := inputTriangle(inputSources{
			Coords: []string{"0", "0", "4", "0", "0", "3"},
		}, nil, rng)
		require.NoError(t, err)
		assert.Equal(t, geometry.Point{X: 4, Y: 0}, tri.B)
	})

	t.Run("stdin", func(t *testing.T) {
		tri, err := inputTriangle(inputSources{Stdin: true}, strings.NewReader("1 1\n5 1\n1 4\n"), rng)
		require.NoError(t, err)
		assert.Equal(t, geometry.Point{X: 1, Y: 4}, tri.C)
	})

	t.Run("svg", func(t *testing.T) {
		tri, err := inputTriangle(inputSources{
			SVG: filepath.Join("..", "..", "input", "fixtures", "right.svg"),
		}, nil, rng)
		require.NoError(t, err)
		assert.True(t, geometry.IsValidTriangle(tri))
	})

	t.Run("missing svg", func(t *testing.T) {
		_, err := inputTriangle(inputSources{SVG: filepath.Join(t.TempDir(), "nope.svg")}, nil, rng)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening svg")
	})

	t.Run("sample", func(t *testing.T) {
		tri, err := inputTriangle(inputSources{Sample: true}, nil, rng)
		require.NoError(t, err)
		for _, label := range geometry.Labels {
			p := tri.Vertex(label)
			assert.True(t, p.X >= 50 && p.X <= 300, "x out of range: %v", p.X)
			assert.True(t, p.Y >= 50 && p.Y <= 300, "y out of range: %v", p.Y)
		}
	})

	conflicting := map[string]inputSources{
		"coordinates and sample": {Coords: []string{"0", "0", "4", "0", "0", "3"}, Sample: true},
		"coordinates and svg":    {Coords: []string{"0", "0", "4", "0", "0", "3"}, SVG: "x.svg"},
		"stdin and sample":       {Stdin: true, Sample: true},
		"svg and stdin":          {SVG: "x.svg", Stdin: true},
	}
	for name, src := range conflicting {
		src := src
		t.Run(name, func(t *testing.T) {
			_, err := inputTriangle(src, strings.NewReader(""), rng)
			assert.EqualError(t, err, "use only one of coordinates, --stdin, --svg and --sample")
		})
	}
}

func TestSaveInput(t *testing.T) {
	store := newTestStore(t)
	tri := geometry.Triangle{
		A: geometry.Point{X: 0, Y: 0},
		B: geometry.Point{X: 4, Y: 0},
		C: geometry.Point{X: 0, Y: 3},
	}
	var stdout bytes.Buffer

	require.NoError(t, saveInput(store, tri, "quiet-finch", &stdout))
	assert.Contains(t, stdout.String(), "Saved triangle quiet-finch")

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "quiet-finch", s.Name)
	assert.Equal(t, tri, s.Triangle)
}
