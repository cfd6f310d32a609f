package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/config"
	"github.com/dunossauro/dunoslide/theme"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	slogmulti "github.com/samber/slog-multi"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("reported")

func newLogger(extra ...slog.Handler) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(colorable.NewColorableStderr(), &slog.HandlerOptions{Level: level}),
	}
	handlers = append(handlers, extra...)
	return slog.New(slogmulti.Fanout(handlers...))
}

// newRegistry returns the built-in themes followed by the themes listed in
// the config file.
func newRegistry(cfg *config.Config) *theme.Registry {
	r := theme.Default()
	for _, t := range cfg.Themes {
		r.Register(&theme.Dir{ThemeName: t.Name, TemplatesDir: t.Templates, StaticDir: t.Static})
	}
	return r
}

func newEngine(cfg *config.Config, logger *slog.Logger, themeOverride string) (*dunoslide.Engine, error) {
	return dunoslide.New(
		dunoslide.WithRegistry(newRegistry(cfg)),
		dunoslide.WithLogger(logger),
		dunoslide.WithDefaultTheme(cfg.Theme),
		dunoslide.WithTheme(themeOverride),
		dunoslide.WithDefaults(cfg.Defaults...),
	)
}

func listenAddr(cfg *config.Config, bindFlag string, portFlag int, bindChanged, portChanged bool) (string, int) {
	bind, port := bindFlag, portFlag
	if !bindChanged && cfg.Server.Bind != "" {
		bind = cfg.Server.Bind
	}
	if !portChanged && cfg.Server.Port != 0 {
		port = cfg.Server.Port
	}
	return bind, port
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
