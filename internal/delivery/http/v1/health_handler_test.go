package v1

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error { return s.err }

func TestHealthCheckHealthy(t *testing.T) {
	handler := NewHealthHandler(&stubPinger{})

	rec := httptest.NewRecorder()
	handler.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"connected"`) {
		t.Fatalf("body = %s, want db connected", rec.Body.String())
	}
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	handler := NewHealthHandler(&stubPinger{err: fmt.Errorf("dial tcp: connection refused")})

	rec := httptest.NewRecorder()
	handler.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"unreachable"`) {
		t.Fatalf("body = %s, want db unreachable", rec.Body.String())
	}
}
