package webpage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayush078/content-sumarizer/internal/logger"
)

func newTestExtractor(t *testing.T, handler http.HandlerFunc) (Extractor, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithClient(srv.Client(), logger.New("error")), srv.URL
}

func TestExtractVisibleText(t *testing.T) {
	page := `<html>
<head>
  <title>Test Page</title>
  <style>body { color: red; }</style>
  <script>console.log("should not appear");</script>
</head>
<body>
  <h1>Heading</h1>
  <p>First    paragraph
     spanning lines.</p>
  <script>var hidden = "nope";</script>
  <div><span>nested</span><span>text</span></div>
</body>
</html>`

	extractor, url := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	})

	got, err := extractor.Extract(context.Background(), url)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if strings.Contains(got, "should not appear") || strings.Contains(got, "color: red") {
		t.Errorf("Extract() kept script/style content: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("Extract() contains whitespace runs: %q", got)
	}
	for _, want := range []string{"Heading", "First paragraph spanning lines.", "nested text"} {
		if !strings.Contains(got, want) {
			t.Errorf("Extract() = %q, missing %q", got, want)
		}
	}
}

func TestExtractSendsUserAgent(t *testing.T) {
	var gotUA string
	extractor, url := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html><body>ok</body></html>")
	})

	if _, err := extractor.Extract(context.Background(), url); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("User-Agent = %q, want browser-like header", gotUA)
	}
}

func TestExtractHTTPError(t *testing.T) {
	extractor, url := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	_, err := extractor.Extract(context.Background(), url)
	if err == nil {
		t.Fatal("Extract() expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Extract() error = %v, want status in message", err)
	}
}

func TestExtractUnreachableHost(t *testing.T) {
	extractor := NewWithClient(http.DefaultClient, logger.New("error"))

	_, err := extractor.Extract(context.Background(), "http://127.0.0.1:1/unreachable")
	if err == nil {
		t.Fatal("Extract() expected error for unreachable host")
	}
}
