package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitarena/internal/xhttp"
)

func TestGzip(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("deficit ", 512)

	handler := Gzip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))

	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/api/score", nil)
	req.Header.Set(xhttp.AcceptEncoding, gzipEncoding)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close() //nolint:errcheck

	if got := resp.Header.Get(xhttp.ContentEncoding); got != gzipEncoding {
		t.Fatalf("Content-Encoding = %q, want %q", got, gzipEncoding)
	}
	if got := resp.Header.Get(xhttp.Vary); got != xhttp.AcceptEncoding {
		t.Errorf("Vary = %q, want %q", got, xhttp.AcceptEncoding)
	}

	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("failed to open gzip reader: %v", err)
	}
	defer reader.Close() //nolint:errcheck

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to decompress: %v", err)
	}
	if !bytes.Equal(decompressed, []byte(body)) {
		t.Errorf("decompressed body length = %d, want %d", len(decompressed), len(body))
	}
}

func TestGzipSkippedWithoutAcceptEncoding(t *testing.T) {
	t.Parallel()

	const body = "plain"

	handler := Gzip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))

	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/api/score", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close() //nolint:errcheck

	if got := resp.Header.Get(xhttp.ContentEncoding); got != "" {
		t.Errorf("Content-Encoding = %q, want empty", got)
	}
	got, _ := io.ReadAll(resp.Body)
	if string(got) != body {
		t.Errorf("body = %q, want %q", got, body)
	}
}
