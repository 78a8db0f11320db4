// Command trisketch draws a triangle from three points and prints its
// interior angles.
//
// Points are entered with "trisketch input" and kept in a session file until
// "trisketch show" draws them or "trisketch reset" forgets them:
//
//	trisketch input 0 0 4 0 0 3
//	trisketch show --out triangle.png
package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/trisketch/config"
	"github.com/osuushi/trisketch/geometry"
	"github.com/osuushi/trisketch/session"
)

var (
	app = kingpin.New("trisketch", "Draw a triangle from three points and measure its angles.")

	configPath  = app.Flag("config", "YAML file with canvas and style settings.").Short('c').String()
	sessionPath = app.Flag("session", "File holding the entered triangle between commands.").Envar("TRISKETCH_SESSION").String()
	verbose     = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	noColor     = app.Flag("no-color", "Disable colored output.").Bool()

	logger = slog.Default()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	setupLogging()

	var err error
	switch command {
	case inputCmd.FullCommand():
		err = runInput()
	case showCmd.FullCommand():
		err = runShow()
	case resetCmd.FullCommand():
		err = runReset()
	case anglesCmd.FullCommand():
		err = runAngles()
	}
	app.FatalIfError(err, "")
}

func setupLogging() {
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	geometry.SetLogger(logger)
}

func sessionStore() (session.Store, error) {
	if *sessionPath != "" {
		return session.Store{Path: *sessionPath}, nil
	}
	path, err := session.DefaultPath()
	if err != nil {
		return session.Store{}, err
	}
	return session.Store{Path: path}, nil
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("loaded config", "path", path, "canvas", cfg.Canvas)
	return cfg, nil
}

// Colors only go to a terminal.
func useColor(f *os.File) bool {
	if *noColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var errInvalidTriangle = errors.New("the points do not form a triangle")
