package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/server"
	"github.com/k1LoW/errors"
	"golang.org/x/sync/errgroup"
)

const (
	cssPixelsPerInch = 96.0
	slideSelector    = ".slide"
	loopback         = "127.0.0.1"
)

// Exporter writes presentations to PDF or PNG through a headless browser.
type Exporter struct {
	engine  *dunoslide.Engine
	browser string
	width   int
	height  int
	wait    time.Duration
	pages   Selection
	logger  *slog.Logger
}

type Option func(*Exporter)

// WithBrowser sets the Chrome executable, skipping the lookup.
func WithBrowser(path string) Option {
	return func(x *Exporter) {
		x.browser = path
	}
}

// WithViewport overrides the viewport size. Zero keeps the size of the
// presentation's aspect ratio.
func WithViewport(width, height int) Option {
	return func(x *Exporter) {
		x.width = width
		x.height = height
	}
}

// WithWait sets how long to wait after the page is ready before capturing,
// giving client-side scripts such as diagram rendering time to finish.
func WithWait(d time.Duration) Option {
	return func(x *Exporter) {
		x.wait = d
	}
}

// WithPages limits the export to the selected slides.
func WithPages(pages Selection) Option {
	return func(x *Exporter) {
		x.pages = pages
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(x *Exporter) {
		x.logger = l
	}
}

// New returns an Exporter loading and rendering with e.
func New(e *dunoslide.Engine, opts ...Option) *Exporter {
	x := &Exporter{engine: e}
	for _, opt := range opts {
		opt(x)
	}
	if x.logger == nil {
		x.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return x
}

// Export serves src on a loopback port, loads it in a headless browser and
// writes it in format f. For PDF the file is out with a .pdf extension; for
// PNG one image per slide is written under PNGDir(out). It returns the
// written paths.
func (x *Exporter) Export(ctx context.Context, src server.Source, out string, f Format) (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}
	browser, err := FindBrowser(x.browser)
	if err != nil {
		return nil, err
	}
	p, err := src()
	if err != nil {
		return nil, err
	}
	w, h, err := p.Size()
	if err != nil {
		return nil, err
	}
	if x.width > 0 {
		w = x.width
	}
	if x.height > 0 {
		h = x.height
	}

	srv, err := server.New(x.engine, src, server.WithAddr(loopback, 0), server.WithLogger(x.logger))
	if err != nil {
		return nil, err
	}
	if err := srv.Start(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var written []string
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return srv.Serve(egCtx)
	})
	eg.Go(func() error {
		defer cancel()
		if err := waitReady(egCtx, srv.URL(), x.logger); err != nil {
			return err
		}
		var err error
		written, err = x.capture(egCtx, browser, srv.URL(), out, f, w, h)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	x.logger.Info("export completed", slog.Int("files", len(written)))
	return written, nil
}

func (x *Exporter) capture(ctx context.Context, browser, url, out string, f Format, w, h int) (_ []string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(browser),
		chromedp.WindowSize(w, h),
	)
	aCtx, aCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer aCancel()
	bCtx, bCancel := chromedp.NewContext(aCtx)
	defer bCancel()

	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(w), int64(h)),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	if x.wait > 0 {
		tasks = append(tasks, chromedp.Sleep(x.wait))
	}
	if err := chromedp.Run(bCtx, tasks); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", url, err)
	}

	switch f {
	case FormatPDF:
		path, err := x.printPDF(bCtx, out, w, h)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	default:
		return x.screenshotSlides(bCtx, out)
	}
}

func (x *Exporter) printPDF(ctx context.Context, out string, w, h int) (string, error) {
	var buf []byte
	if err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		params := page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(float64(w) / cssPixelsPerInch).
			WithPaperHeight(float64(h) / cssPixelsPerInch).
			WithMarginTop(0).
			WithMarginBottom(0).
			WithMarginLeft(0).
			WithMarginRight(0)
		if len(x.pages) > 0 {
			params = params.WithPageRanges(x.pages.String())
		}
		b, _, err := params.Do(ctx)
		if err != nil {
			return err
		}
		buf = b
		return nil
	})); err != nil {
		return "", fmt.Errorf("failed to print pdf: %w", err)
	}
	path := PDFPath(out)
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		return "", err
	}
	x.logger.Info("exported pdf", slog.String("path", path))
	return path, nil
}

func (x *Exporter) screenshotSlides(ctx context.Context, out string) ([]string, error) {
	var count int
	if err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf("document.querySelectorAll(%q).length", slideSelector), &count)); err != nil {
		return nil, fmt.Errorf("failed to count slides: %w", err)
	}
	dir := PNGDir(out)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	var nodes []*cdp.Node
	if err := chromedp.Run(ctx, chromedp.Nodes(slideSelector, &nodes, chromedp.ByQueryAll)); err != nil {
		return nil, fmt.Errorf("failed to find slides: %w", err)
	}
	written := make([]string, 0, len(nodes))
	for i, n := range nodes {
		if !x.pages.Contains(i + 1) {
			continue
		}
		var buf []byte
		if err := chromedp.Run(ctx, chromedp.Screenshot([]cdp.NodeID{n.NodeID}, &buf, chromedp.ByNodeID)); err != nil {
			x.logger.Error("failed to capture slide", slog.Int("page", i+1), slog.String("error", err.Error()))
			return nil, err
		}
		path := PNGPath(dir, i+1)
		if err := os.WriteFile(path, buf, 0o600); err != nil {
			return nil, err
		}
		x.logger.Info("exported slide", slog.Int("page", i+1), slog.String("path", path))
		written = append(written, path)
	}
	return written, nil
}
