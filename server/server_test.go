package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/theme"
)

const doc = `title = "Live"

[[slides]]
layout = "cover_title_right"
background = "red"
title = "%s"
`

func writeDoc(t *testing.T, path, title string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Replace(doc, "%s", title, 1)), 0o600); err != nil {
		t.Fatal(err)
	}
}

func newEngine(t *testing.T) *dunoslide.Engine {
	t.Helper()
	e, err := dunoslide.New()
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndexReloadsOnEveryRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.toml")
	writeDoc(t, path, "First")
	e := newEngine(t)
	s, err := New(e, FromFile(e, path))
	if err != nil {
		t.Fatal(err)
	}
	h := s.Handler()

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "First") {
		t.Error("response should contain the first title")
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("got content type %q", got)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("response should carry a request id")
	}

	writeDoc(t, path, "Second")
	rec = get(t, h, "/")
	if !strings.Contains(rec.Body.String(), "Second") {
		t.Error("response should reflect the edited document")
	}
}

func TestIndexLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.toml")
	writeDoc(t, path, "First")
	e := newEngine(t)
	s, err := New(e, FromFile(e, path))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("title = \"Live\"\n[[slides]]\nlayout = \"nope\"\nbackground = \"red\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	rec := get(t, s.Handler(), "/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "nope") {
		t.Errorf("body should describe the error: %s", rec.Body)
	}
}

func TestRequestIDIsKept(t *testing.T) {
	e := newEngine(t)
	s, err := New(e, FromBytes(e, dunoslide.Sample, dunoslide.FormatTOML))
	if err != nil {
		t.Fatal(err)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc")
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("got %q", got)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("got %q", rec.Body)
	}
}

func TestStatic(t *testing.T) {
	e := newEngine(t)
	s, err := New(e, FromBytes(e, dunoslide.Sample, dunoslide.FormatTOML))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want int
	}{
		{"/static/styles.css", http.StatusOK},
		{"/static/vendor/grain.svg", http.StatusOK},
		{"/static/missing.css", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := get(t, s.Handler(), tt.path).Code; got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewFailsFast(t *testing.T) {
	e := newEngine(t)
	if _, err := New(e, FromFile(e, filepath.Join(t.TempDir(), "missing.toml"))); !errors.Is(err, dunoslide.ErrDocumentNotFound) {
		t.Errorf("got %v", err)
	}
	b := []byte("title = \"t\"\ntheme = \"missing\"\nslides = []\n")
	if _, err := New(e, FromBytes(e, b, dunoslide.FormatTOML)); !errors.Is(err, theme.ErrThemeNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestServe(t *testing.T) {
	e := newEngine(t)
	s, err := New(e, FromBytes(e, dunoslide.Sample, dunoslide.FormatTOML), WithAddr("127.0.0.1", 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx)
	}()

	res, err := http.Get(s.URL() + "/")
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<title>dunoslide</title>") {
		t.Errorf("unexpected body: %.200s", b)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Error(err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
