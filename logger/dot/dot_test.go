package dot

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
)

func TestHandle(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	h, err := newHandler(slog.NewTextHandler(&bytes.Buffer{}, nil), buf)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(h.Stop)
	logger := slog.New(h).With(slog.String("file", "talk.toml"))

	logger.Info("serving presentation", slog.String("url", "http://127.0.0.1:1234"))
	logger.Debug("exported slide", slog.Int("page", 0))
	for i := range 3 {
		logger.Info("exported slide", slog.Int("page", i+1))
	}
	logger.Error("failed to capture slide", slog.Int("page", 4))
	logger.Info("export completed")
	logger.Info("exported pdf")
	logger.Info("export completed")

	want := "...!\n✓\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
