// Package config loads drawing settings from a YAML file.
//
// A file only needs to name the settings it changes:
//
//	canvas:
//	  width: 800
//	  height: 600
//	style:
//	  angle_color: "#1a202c"
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/trisketch/render"
)

type Config struct {
	Canvas render.Canvas `yaml:"canvas"`
	Style  render.Style  `yaml:"style"`
}

func Default() Config {
	return Config{
		Canvas: render.DefaultCanvas(),
		Style:  render.DefaultStyle(),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	if err := cfg.Parse(data); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg and validates the result. Unknown keys are
// rejected so that typos don't go unnoticed.
func (cfg *Config) Parse(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document decodes to io.EOF, which just means no overrides
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decoding")
	}
	if err := cfg.Canvas.Validate(); err != nil {
		return err
	}
	return cfg.Style.Validate()
}
