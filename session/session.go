// Package session keeps the most recently entered triangle between commands,
// so that points entered with one invocation can be shown by the next.
package session

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/trisketch/geometry"
)

var ErrNoSession = errors.New("no triangle has been entered")

type Session struct {
	Name     string
	Triangle geometry.Triangle
}

// A session file on disk. The zero value is not usable; set Path.
type Store struct {
	Path string
}

// On-disk layout. Kept separate from the geometry types so they don't need
// serialization tags.
type record struct {
	Name   string `yaml:"name"`
	Points struct {
		A point `yaml:"A"`
		B point `yaml:"B"`
		C point `yaml:"C"`
	} `yaml:"points"`
}

type point struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// DefaultPath is trisketch/session.yaml in the user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, "locating cache directory")
	}
	return filepath.Join(dir, "trisketch", "session.yaml"), nil
}

func (s Store) Save(session Session) error {
	var r record
	r.Name = session.Name
	r.Points.A = fromPoint(session.Triangle.A)
	r.Points.B = fromPoint(session.Triangle.B)
	r.Points.C = fromPoint(session.Triangle.C)

	data, err := yaml.Marshal(&r)
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return errors.Wrap(err, "creating session directory")
	}
	// Write then rename, so a crash never leaves half a session behind
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "writing session")
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "writing session")
	}
	return nil
}

// Load returns ErrNoSession when nothing has been saved, or the last save was
// cleared.
func (s Store) Load() (Session, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, errors.Wrap(err, "reading session")
	}

	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Session{}, errors.Wrapf(err, "decoding session %s", s.Path)
	}

	var tri geometry.Triangle
	for _, p := range []struct {
		label  geometry.Label
		stored point
		dest   *geometry.Point
	}{
		{geometry.A, r.Points.A, &tri.A},
		{geometry.B, r.Points.B, &tri.B},
		{geometry.C, r.Points.C, &tri.C},
	} {
		if p.stored.X == nil || p.stored.Y == nil {
			return Session{}, errors.Errorf("session %s: point %s is incomplete", s.Path, p.label)
		}
		*p.dest = geometry.Point{X: *p.stored.X, Y: *p.stored.Y}
	}

	return Session{Name: r.Name, Triangle: tri}, nil
}

// Clear removes the saved session. Clearing an empty store is not an error.
func (s Store) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}

func fromPoint(p geometry.Point) point {
	x, y := p.X, p.Y
	return point{X: &x, Y: &y}
}
