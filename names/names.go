// Package names generates short readable identifiers, such as "wise-lemur",
// for saved triangles and the images rendered from them.
package names

import (
	"path/filepath"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

func init() {
	// petname draws from math/rand, which is deterministic unless seeded. Two
	// sessions should not keep getting the same name.
	petname.NonDeterministicMode()
}

func New() string {
	return petname.Generate(2, "-")
}

// FileName builds a file name in dir from a readable name. Anything that isn't
// a letter, digit or dash becomes a dash.
func FileName(dir, name, ext string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '-'
	}, name)
	if clean == "" {
		clean = "triangle"
	}
	return filepath.Join(dir, clean+ext)
}
