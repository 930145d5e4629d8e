package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-client/internal/adapters/http/middleware"
)

func serveIDs(t *testing.T, req *http.Request) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
	}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := serveIDs(t, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	parsed, err := uuid.Parse(reqID)
	if err != nil {
		t.Fatalf("generated ID %q is not a UUID: %v", reqID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if corrID != reqID {
		t.Errorf("correlation ID = %q, want fallback to request ID %q", corrID, reqID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("response X-Request-ID = %q, want %q", got, reqID)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != reqID {
		t.Errorf("response X-Correlation-ID = %q, want %q", got, reqID)
	}
}

func TestRequestID_ReusesIncomingHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "incoming-123")
	req.Header.Set("X-Correlation-ID", "flow-9")

	reqID, corrID, rec := serveIDs(t, req)

	if reqID != "incoming-123" {
		t.Errorf("RequestIDFromContext = %q, want %q", reqID, "incoming-123")
	}
	if corrID != "flow-9" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", corrID, "flow-9")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "flow-9" {
		t.Errorf("response X-Correlation-ID = %q, want %q", got, "flow-9")
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 100 {
		id, _, _ := serveIDs(t, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		ids[id] = true
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestIDsFromContext_NotFound(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty string", id)
	}
	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty string", id)
	}
}
