// Command fetchvendor downloads the pinned browser scripts of the built-in
// theme into its static vendor directory.
//
//	go run ./internal/fetchvendor templates/static/vendor
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/k1LoW/errors"
)

type asset struct {
	name string
	url  string
}

var assets = []asset{
	{"highlight.min.js", "https://cdn.jsdelivr.net/gh/highlightjs/cdn-release@11.9.0/build/highlight.min.js"},
	{"github-dark.min.css", "https://cdn.jsdelivr.net/gh/highlightjs/cdn-release@11.9.0/build/styles/github-dark.min.css"},
	{"mermaid.min.js", "https://cdn.jsdelivr.net/npm/mermaid@10.9.1/dist/mermaid.min.js"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fetchvendor DIR")
		os.Exit(2)
	}
	if err := run(context.Background(), os.Args[1], logger); err != nil {
		logger.Error("failed to fetch vendor assets", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, dir string, logger *slog.Logger) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.HTTPClient.Timeout = time.Minute
	c.Logger = logger
	for _, a := range assets {
		if err := fetch(ctx, c, a.url, filepath.Join(dir, a.name)); err != nil {
			return err
		}
		logger.Info("fetched", slog.String("name", a.name))
	}
	return nil
}

func fetch(ctx context.Context, c *retryablehttp.Client, url, path string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := c.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: %s", url, res.Status)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, res.Body); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
