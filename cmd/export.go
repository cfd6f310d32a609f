/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dunossauro/dunoslide/config"
	"github.com/dunossauro/dunoslide/export"
	"github.com/dunossauro/dunoslide/logger/dot"
	"github.com/dunossauro/dunoslide/server"
	"github.com/spf13/cobra"
)

var (
	out    string
	format string
	width  int
	height int
	wait   time.Duration
	page   string
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "export a presentation to PDF or PNG",
	Long: `export a presentation to PDF or PNG.

A headless Chrome or Chromium is required. It is looked up in the config file,
CHROME_PATH and then PATH.
PDF is written to the output path with a .pdf extension.
PNG writes one image per slide into a directory named after the output file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := args[0]
		fm, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		// Browser is checked before anything is loaded or served.
		browserPath, err := export.FindBrowser(cfg.Browser)
		if err != nil {
			return err
		}
		h, err := dot.New(slog.NewTextHandler(os.Stdout, nil))
		if err != nil {
			return err
		}
		defer h.Stop()
		logger := newLogger(h)
		e, err := newEngine(cfg, logger, "")
		if err != nil {
			return err
		}
		p, err := e.Load(f)
		if err != nil {
			return err
		}
		pages, err := export.ParseSelection(page, len(p.Slides))
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		x := export.New(e,
			export.WithBrowser(browserPath),
			export.WithViewport(width, height),
			export.WithWait(wait),
			export.WithPages(pages),
			export.WithLogger(logger),
		)
		written, err := x.Export(ctx, server.FromFile(e, f), out, fm)
		if err != nil {
			return err
		}
		for _, w := range written {
			cmd.PrintErrf("Exported %s\n", w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&out, "output", "o", "presentation.pdf", "output file")
	exportCmd.Flags().StringVarP(&format, "format", "f", string(export.FormatPDF), "export format: pdf or png")
	exportCmd.Flags().IntVarP(&width, "width", "", 0, "viewport width in pixels (default: width of the aspect ratio)")
	exportCmd.Flags().IntVarP(&height, "height", "", 0, "viewport height in pixels (default: height of the aspect ratio)")
	exportCmd.Flags().DurationVarP(&wait, "wait", "", 500*time.Millisecond, "time to wait for scripts such as diagrams after the page is ready")
	exportCmd.Flags().StringVarP(&page, "page", "", "", "slides to export (e.g. 1,3-5)")
}
