package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/k1LoW/errors"
)

const healthzPath = "/healthz"

var _ retryablehttp.LeveledLogger = (*probeLogger)(nil)

type probeLogger struct {
	l *slog.Logger
}

func (l *probeLogger) Error(msg string, keysAndValues ...any) {
	l.l.Error(msg, keysAndValues...)
}

func (l *probeLogger) Info(msg string, keysAndValues ...any) {
	l.l.Info(msg, keysAndValues...)
}

func (l *probeLogger) Debug(msg string, keysAndValues ...any) {
	if strings.HasPrefix(msg, "retrying") {
		// Raised to info so the console handler can show a spinner.
		l.l.Info(msg, keysAndValues...)
		return
	}
	l.l.Debug(msg, keysAndValues...)
}

func (l *probeLogger) Warn(msg string, keysAndValues ...any) {
	l.l.Warn(msg, keysAndValues...)
}

// waitReady polls the health endpoint of baseURL until it answers 200.
func waitReady(ctx context.Context, baseURL string, logger *slog.Logger) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	c := retryablehttp.NewClient()
	c.RetryMax = 20
	c.RetryWaitMin = 50 * time.Millisecond
	c.RetryWaitMax = 500 * time.Millisecond
	c.Logger = &probeLogger{l: logger.WithGroup("probe")}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, baseURL+healthzPath, nil)
	if err != nil {
		return err
	}
	res, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("server at %s did not become ready: %w", baseURL, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("server at %s is not healthy: %s", baseURL, res.Status)
	}
	return nil
}
