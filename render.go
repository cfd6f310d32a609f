package dunoslide

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/dunossauro/dunoslide/theme"
	"github.com/k1LoW/errors"
)

// DefaultStaticURL is the path the server mounts theme static files on.
const DefaultStaticURL = "/static"

// The base stylesheet of a theme is written for a 4:3 slide.
const (
	placeholderWidth  = "width: 1024px;"
	placeholderHeight = "height: 768px;"
	placeholderSize   = "size: 1024px 768px;"
	vendorURL         = "url('vendor/"
)

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

type renderData struct {
	Title       string
	Slides      []Slide
	InlineCSS   template.CSS
	StaticURL   string
	AspectRatio AspectRatio
	SlideWidth  int
	SlideHeight int
}

// Render renders p with its theme into a single HTML document.
func (e *Engine) Render(p *Presentation, staticURL string) (_ string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	w, h, err := p.Size()
	if err != nil {
		return "", err
	}
	t, err := e.registry.Resolve(p.Theme)
	if err != nil {
		return "", err
	}
	css, err := LoadCSS(t, w, h, staticURL)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(theme.BaseTemplate).Funcs(funcs).ParseFS(t.Templates, theme.BaseTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s of theme %s: %w", theme.BaseTemplate, t.Name, err)
	}
	data := &renderData{
		Title:       p.Title,
		Slides:      p.Slides,
		InlineCSS:   template.CSS(css), //nolint:gosec
		StaticURL:   strings.TrimSuffix(staticURL, "/"),
		AspectRatio: p.AspectRatio,
		SlideWidth:  w,
		SlideHeight: h,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render presentation: %w", err)
	}
	return buf.String(), nil
}

// LoadCSS reads the theme stylesheet and resizes it to width x height.
func LoadCSS(t *theme.Theme, width, height int, staticURL string) (string, error) {
	b, err := fs.ReadFile(t.Static, theme.Stylesheet)
	if err != nil {
		return "", fmt.Errorf("failed to read %s of theme %s: %w", theme.Stylesheet, t.Name, err)
	}
	rep := strings.NewReplacer(
		placeholderWidth, fmt.Sprintf("width: %dpx;", width),
		placeholderHeight, fmt.Sprintf("height: %dpx;", height),
		placeholderSize, fmt.Sprintf("size: %dpx %dpx;", width, height),
		vendorURL, fmt.Sprintf("url('%s/vendor/", strings.TrimSuffix(staticURL, "/")),
	)
	return rep.Replace(string(b)), nil
}
