package theme

import (
	"fmt"
	"io/fs"
	"os"
)

var _ Provider = (*Dir)(nil)

// Dir is a theme stored on disk.
type Dir struct {
	ThemeName    string
	TemplatesDir string
	StaticDir    string
}

func (d *Dir) Name() string { return d.ThemeName }

func (d *Dir) Templates() (fs.FS, error) {
	return dirFS(d.TemplatesDir)
}

func (d *Dir) Static() (fs.FS, error) {
	return dirFS(d.StaticDir)
}

func dirFS(dir string) (fs.FS, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
