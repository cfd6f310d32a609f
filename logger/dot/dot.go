// Package dot prints export progress as one mark per exported file.
package dot

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-colorable"
)

var (
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var _ slog.Handler = (*dotHandler)(nil)

type dotHandler struct {
	handler slog.Handler
	spinner *spinner.Spinner
	stdout  io.Writer
	prefix  *[]byte
}

// New returns a handler that writes progress marks to stdout. Records are
// not forwarded to h; it only decides which levels are enabled.
func New(h slog.Handler) (*dotHandler, error) {
	return newHandler(h, colorable.NewColorableStdout())
}

func newHandler(h slog.Handler, stdout io.Writer) (_ *dotHandler, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(stdout))
	if err := s.Color("yellow"); err != nil {
		return nil, err
	}
	s.Start()
	s.Disable()
	return &dotHandler{
		handler: h,
		spinner: s,
		stdout:  stdout,
		prefix:  &[]byte{},
	}, nil
}

func (h *dotHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *dotHandler) Handle(ctx context.Context, r slog.Record) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	// The readiness probe logs "retrying ..." while the server starts.
	if strings.HasPrefix(r.Message, "retrying") {
		if !h.spinner.Enabled() {
			h.spinner.Enable()
		}
		return nil
	}
	if h.spinner.Enabled() {
		h.spinner.Disable()
		_, _ = h.stdout.Write(*h.prefix)
	}
	switch {
	case r.Message == "exported slide":
		return h.write([]byte(yellow(".")))
	case r.Message == "exported pdf":
		return h.write([]byte(green("✓")))
	case strings.HasPrefix(r.Message, "failed to"):
		return h.write([]byte(red("!")))
	case r.Message == "export completed":
		*h.prefix = (*h.prefix)[:0]
		_, _ = h.stdout.Write([]byte("\n"))
	}
	return nil
}

func (h *dotHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dotHandler{handler: h.handler.WithAttrs(attrs), spinner: h.spinner, stdout: h.stdout, prefix: h.prefix}
}

func (h *dotHandler) WithGroup(name string) slog.Handler {
	return &dotHandler{handler: h.handler.WithGroup(name), spinner: h.spinner, stdout: h.stdout, prefix: h.prefix}
}

// Stop stops the spinner goroutine.
func (h *dotHandler) Stop() {
	h.spinner.Stop()
}

func (h *dotHandler) write(s []byte) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	_, err = h.stdout.Write(s)
	if err != nil {
		return err
	}
	*h.prefix = append(*h.prefix, s...)
	return nil
}
