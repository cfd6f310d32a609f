// Package dunossauro embeds the built-in theme.
package dunossauro

import (
	"embed"
	"io/fs"
)

const Name = "dunossauro"

//go:generate go run ./internal/fetchvendor templates/static/vendor

//go:embed templates
var assets embed.FS

type Theme struct{}

func (Theme) Name() string { return Name }

func (Theme) Templates() (fs.FS, error) {
	return fs.Sub(assets, "templates")
}

func (Theme) Static() (fs.FS, error) {
	return fs.Sub(assets, "templates/static")
}

// VendorAssets are the scripts the base template loads from the static root.
var VendorAssets = []string{
	"vendor/highlight.min.js",
	"vendor/github-dark.min.css",
	"vendor/mermaid.min.js",
}

// MissingVendorAssets lists the VendorAssets not embedded in this build.
func MissingVendorAssets() []string {
	static, err := Theme{}.Static()
	if err != nil {
		return VendorAssets
	}
	var missing []string
	for _, name := range VendorAssets {
		if _, err := fs.Stat(static, name); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}
