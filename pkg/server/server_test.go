package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sugiyama/pkg/cache"
	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, log.New(bytes.NewBuffer(nil)))
	return New(runner, log.New(bytes.NewBuffer(nil)))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequestIDEchoedInResponseHeader(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Header().Get(requestIDHeader) == "" {
		t.Error("response missing X-Request-Id header")
	}
}

func TestRequestIDPropagatesCallerValue(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "caller-supplied-id")
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "caller-supplied-id" {
		t.Errorf("X-Request-Id = %q, want %q", got, "caller-supplied-id")
	}
}

func TestHandleLayoutComputesResult(t *testing.T) {
	srv := newTestServer(t)

	body := `{"graph":{"nodes":["a","b","c"],"edges":[{"from":"a","to":"b"},{"from":"b","to":"c"}]}}`
	req := httptest.NewRequest(http.MethodPost, "/layout", strings.NewReader(body))
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}

	var resp layoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Layout.Positions) != 3 {
		t.Errorf("Positions len = %d, want 3", len(resp.Layout.Positions))
	}
	if resp.RequestID == "" {
		t.Error("response missing request_id")
	}
}

func TestHandleLayoutRejectsEmptyGraph(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/layout", strings.NewReader(`{"graph":{}}`))
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "EMPTY_GRAPH" {
		t.Errorf("code = %q, want EMPTY_GRAPH", resp.Code)
	}
}

func TestHandleLayoutRejectsInvalidNodeLabel(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/layout", strings.NewReader(`{"graph":{"nodes":[""],"edges":[]}}`))
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}

	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", resp.Code)
	}
}

func TestHandleLayoutRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/layout", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
