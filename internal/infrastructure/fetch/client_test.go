package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"NewsMoodBot/internal/config"
)

func testConfig() config.CrawlerConfig {
	return config.CrawlerConfig{
		UserAgent:         "test-agent",
		RequestsPerSecond: 100,
		TimeoutSeconds:    5,
	}
}

func TestClientFetch(t *testing.T) {
	t.Parallel()

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html>ок</html>"))
	}))
	defer server.Close()

	client := NewClient(testConfig())
	html, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if html != "<html>ок</html>" {
		t.Fatalf("unexpected body: %q", html)
	}
	if gotUA != "test-agent" {
		t.Fatalf("unexpected user agent: %q", gotUA)
	}
}

func TestClientFetchNon200(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testConfig())
	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestClientFetchInvalidUTF8(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer server.Close()

	client := NewClient(testConfig())
	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for non-UTF-8 body")
	}
}
