// Package export writes a presentation to PDF or PNG files by driving a
// headless Chrome against a temporary local server.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is an export output format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

var Formats = []Format{FormatPDF, FormatPNG}

// ParseFormat parses s case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %s. Use 'pdf' or 'png'", ErrUnsupportedFormat, s)
}

// PDFPath returns out with its extension replaced by .pdf.
func PDFPath(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".pdf"
}

// PNGDir returns the directory slide images are written to: a sibling of
// out named after its stem.
func PNGDir(out string) string {
	base := filepath.Base(out)
	return filepath.Join(filepath.Dir(out), strings.TrimSuffix(base, filepath.Ext(base)))
}

// PNGPath returns the image path of the 1-indexed slide n.
func PNGPath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("slide_%03d.png", n))
}
