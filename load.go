package dunoslide

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dunossauro/dunoslide/md"
	"github.com/goccy/go-yaml"
	"github.com/k1LoW/errors"
)

// Format of a presentation document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the document format from the file extension.
// Anything other than .yml/.yaml is read as TOML.
func FormatFromPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseDocument decodes a document into a generic value without validating it.
func ParseDocument(name string, b []byte, format Format) (map[string]any, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(b, &raw)
	case FormatTOML:
		err = toml.Unmarshal(b, &raw)
	default:
		return nil, fmt.Errorf("unsupported document format: %s", format)
	}
	if err != nil {
		return nil, &SyntaxError{Path: name, Format: string(format), Err: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// ReadDocument reads and decodes the document at path without validating it.
func ReadDocument(path string) (_ map[string]any, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, err
	}
	return ParseDocument(path, b, FormatFromPath(path))
}

// Load reads the document at path, converts slide content from Markdown to
// HTML and validates the result.
func (e *Engine) Load(path string) (_ *Presentation, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	raw, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("loaded document", slog.String("path", path))
	return e.build(raw)
}

// LoadBytes is Load for an in-memory document.
func (e *Engine) LoadBytes(b []byte, format Format) (_ *Presentation, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	raw, err := ParseDocument("<memory>", b, format)
	if err != nil {
		return nil, err
	}
	return e.build(raw)
}

func (e *Engine) build(raw map[string]any) (*Presentation, error) {
	if _, ok := raw["title"]; !ok {
		raw["title"] = DefaultTitle
	}
	if _, ok := raw["aspect_ratio"]; !ok {
		raw["aspect_ratio"] = string(DefaultAspectRatio)
	}
	if v, ok := raw["theme"]; (!ok || v == nil) && e.defaultTheme != "" {
		raw["theme"] = e.defaultTheme
	}
	if e.themeOverride != "" {
		raw["theme"] = e.themeOverride
	}
	if _, ok := raw["slides"]; !ok {
		raw["slides"] = []any{}
	}
	if slides, ok := toList(raw["slides"]); ok {
		if err := e.applyDefaults(slides); err != nil {
			return nil, err
		}
		for i, s := range slides {
			rs, ok := toMap(s)
			if !ok {
				continue
			}
			content, ok := rs["content"].(string)
			if !ok || content == "" {
				continue
			}
			html, err := md.Render(content)
			if err != nil {
				return nil, fmt.Errorf("failed to render content of slide %d: %w", i+1, err)
			}
			rs["content"] = html
			slides[i] = rs
		}
		raw["slides"] = slides
	}
	return Decode(raw)
}
