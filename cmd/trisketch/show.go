package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/names"
	"github.com/osuushi/trisketch/render"
	"github.com/osuushi/trisketch/report"
	"github.com/osuushi/trisketch/session"
)

var (
	showCmd     = app.Command("show", "Draw the entered triangle and print its angles.")
	showOut     = showCmd.Flag("out", "PNG file to write. Defaults to the triangle's name in the current directory.").Short('o').String()
	showImgcat  = showCmd.Flag("imgcat", "Also print the image inline (iTerm only).").Bool()
	showWidth   = showCmd.Flag("width", "Canvas width in pixels, overriding the config.").Int()
	showHeight  = showCmd.Flag("height", "Canvas height in pixels, overriding the config.").Int()
	showPadding = showCmd.Flag("padding", "Canvas padding in pixels, overriding the config.").Default("-1").Float64()
)

type showOptions struct {
	ConfigPath string
	Out        string
	Imgcat     bool
	// Zero width or height, or negative padding, keeps the configured value.
	Width   int
	Height  int
	Padding float64
	Colors  bool
}

func runShow() error {
	store, err := sessionStore()
	if err != nil {
		return err
	}
	return show(store, showOptions{
		ConfigPath: *configPath,
		Out:        *showOut,
		Imgcat:     *showImgcat,
		Width:      *showWidth,
		Height:     *showHeight,
		Padding:    *showPadding,
		Colors:     useColor(os.Stdout) && useColor(os.Stderr),
	}, os.Stdout, os.Stderr)
}

func show(store session.Store, opts showOptions, stdout, stderr io.Writer) error {
	s, err := store.Load()
	if errors.Is(err, session.ErrNoSession) {
		return errors.New(`no triangle entered, run "trisketch input" first`)
	}
	if err != nil {
		return err
	}

	// Same recovery as a rejected form: explain, forget the points, start over.
	if !geometry.IsValidTriangle(s.Triangle) {
		if err := report.WriteInvalid(stderr, s.Triangle, opts.Colors); err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		return errors.Wrap(errInvalidTriangle, "session cleared")
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Width > 0 {
		cfg.Canvas.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Canvas.Height = opts.Height
	}
	if opts.Padding >= 0 {
		cfg.Canvas.Padding = opts.Padding
	}

	renderer, err := render.New(cfg.Canvas, cfg.Style)
	if err != nil {
		return err
	}
	result, err := renderer.Render(s.Triangle)
	if err != nil {
		return err
	}
	logger.Debug("rendered", "viewport", pretty.Sprint(result.Viewport))

	out := opts.Out
	if out == "" {
		out = names.FileName(".", s.Name, ".png")
	}
	if err := result.SavePNG(out); err != nil {
		return err
	}

	if err := report.Write(stdout, s.Name, s.Triangle, result.Angles, result.AnglesValid, opts.Colors); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", out)

	if opts.Imgcat {
		return render.CatToTerminal(out, stdout)
	}
	return nil
}
