// Package theme provides the registry of presentation themes.
//
// A theme is a base template (base.html under its template root) and a static
// root holding styles.css plus optional fonts and vendor assets.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/dunossauro/dunoslide/theme/dunossauro"
)

const (
	BaseTemplate = "base.html"
	Stylesheet   = "styles.css"
)

var ErrThemeNotFound = errors.New("theme not found")

// Provider is implemented by every theme.
type Provider interface {
	Name() string
	Templates() (fs.FS, error)
	Static() (fs.FS, error)
}

// Theme is a resolved theme.
type Theme struct {
	Name      string
	Templates fs.FS
	Static    fs.FS
}

// NotFoundError is returned by Resolve for an unregistered name. It matches
// ErrThemeNotFound.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme '%s' not found. Available themes: %s", e.Name, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrThemeNotFound }

// Registry maps theme names to providers. When two providers report the same
// name the first registered one wins.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
}

// New returns a registry holding providers in order.
func New(providers ...Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Default returns a registry holding the built-in themes.
func Default() *Registry {
	return New(dunossauro.Theme{})
}

// Register appends p. A nil provider is ignored.
func (r *Registry) Register(p Provider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

// Names returns registered theme names in registration order, each once.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	seen := map[string]struct{}{}
	for _, p := range r.providers {
		if _, ok := seen[p.Name()]; ok {
			continue
		}
		seen[p.Name()] = struct{}{}
		names = append(names, p.Name())
	}
	return names
}

func (r *Registry) lookup(name string) Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Resolve returns the template and static roots of the named theme.
func (r *Registry) Resolve(name string) (*Theme, error) {
	p := r.lookup(name)
	if p == nil {
		return nil, &NotFoundError{Name: name, Available: r.Names()}
	}
	templates, err := p.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to open templates of theme %s: %w", name, err)
	}
	static, err := p.Static()
	if err != nil {
		return nil, fmt.Errorf("failed to open static files of theme %s: %w", name, err)
	}
	return &Theme{
		Name:      name,
		Templates: templates,
		Static:    static,
	}, nil
}
