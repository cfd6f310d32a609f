package dunoslide

import (
	"io"
	"log/slog"

	"github.com/dunossauro/dunoslide/config"
	"github.com/dunossauro/dunoslide/theme"
	"github.com/k1LoW/errors"
)

// Engine loads presentation documents and renders them with a theme.
// It keeps no state between calls; every Load reads the document again.
type Engine struct {
	registry      *theme.Registry
	defaults      []*defaultCondition
	themeOverride string
	defaultTheme  string
	logger        *slog.Logger
}

type Option func(*Engine) error

func WithRegistry(r *theme.Registry) Option {
	return func(e *Engine) error {
		e.registry = r
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithTheme overrides the theme set in the document.
func WithTheme(name string) Option {
	return func(e *Engine) error {
		e.themeOverride = name
		return nil
	}
}

// WithDefaultTheme sets the theme used when the document does not set one.
func WithDefaultTheme(name string) Option {
	return func(e *Engine) error {
		e.defaultTheme = name
		return nil
	}
}

// WithDefaults sets conditions that fill in missing slide fields.
func WithDefaults(conds ...config.DefaultCondition) Option {
	return func(e *Engine) error {
		for _, c := range conds {
			dc, err := compileDefault(c)
			if err != nil {
				return err
			}
			e.defaults = append(e.defaults, dc)
		}
		return nil
	}
}

// New creates a new Engine.
func New(opts ...Option) (_ *Engine, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	e := &Engine{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.registry == nil {
		e.registry = theme.Default()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e, nil
}

// Registry returns the theme registry used by the engine.
func (e *Engine) Registry() *theme.Registry {
	return e.registry
}
