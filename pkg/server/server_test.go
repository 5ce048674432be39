package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snippetdocs/pkg/observability"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>hi</h1>"), 0644); err != nil {
		t.Fatal(err)
	}
	return &Server{Root: root, Addr: "127.0.0.1:0", Logger: log.New(io.Discard)}
}

func TestHandler(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/healthz", http.StatusOK, "ok"},
		{"/index.html", http.StatusMovedPermanently, ""},
		{"/", http.StatusOK, "<h1>hi</h1>"},
		{"/missing.html", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("GET %s body = %q, want %q", tt.path, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandlerNoCache(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
}

func TestServeShutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error after cancel: %v", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

type statusHooks struct {
	observability.NoopHTTPHooks
	statuses map[string]int
}

func (h *statusHooks) OnResponse(_ context.Context, _, path string, status int, _ time.Duration) {
	h.statuses[path] = status
}

func TestHandlerEmitsHTTPHooks(t *testing.T) {
	hooks := &statusHooks{statuses: make(map[string]int)}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	h := newTestServer(t).Handler()
	for _, path := range []string{"/healthz", "/missing.html"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if hooks.statuses["/healthz"] != http.StatusOK {
		t.Errorf("/healthz status = %d, want 200", hooks.statuses["/healthz"])
	}
	if hooks.statuses["/missing.html"] != http.StatusNotFound {
		t.Errorf("/missing.html status = %d, want 404", hooks.statuses["/missing.html"])
	}
}
