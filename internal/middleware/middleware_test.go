package middleware

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// captureHandler records whether it was called and the request context it saw.
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func markerMiddleware(marker string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(marker))
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain_Empty_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("vaults"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/treasury-vaults", nil)
	rr := httptest.NewRecorder()
	Chain(handler).ServeHTTP(rr, req)

	if rr.Body.String() != "vaults" {
		t.Errorf("expected untouched handler body, got %q", rr.Body.String())
	}
}

func TestChain_OrdersOutermostFirst(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("H"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/treasury-vaults", nil)
	rr := httptest.NewRecorder()
	Chain(handler, markerMiddleware("1"), markerMiddleware("2"), markerMiddleware("3")).ServeHTTP(rr, req)

	// First argument is the outermost wrapper.
	if rr.Body.String() != "123H" {
		t.Errorf("expected middleware order '123H', got %q", rr.Body.String())
	}
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	req := httptest.NewRequest(http.MethodGet, "/api/treasury-vaults", nil)
	rr := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rr, req)

	id := rr.Header().Get("X-Request-ID")
	if len(id) != 36 || strings.Count(id, "-") != 4 {
		t.Errorf("expected a generated UUID in X-Request-ID, got %q", id)
	}
	if GetRequestID(handler.ctx) != id {
		t.Errorf("context id %q does not match response header %q", GetRequestID(handler.ctx), id)
	}
}

func TestRequestID_KeepsClientProvidedID(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	req := httptest.NewRequest(http.MethodGet, "/api/treasury-vaults", nil)
	req.Header.Set("X-Request-ID", "client-chosen-id")
	rr := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "client-chosen-id" {
		t.Errorf("expected client id echoed back, got %q", got)
	}
	if got := GetRequestID(handler.ctx); got != "client-chosen-id" {
		t.Errorf("expected client id in context, got %q", got)
	}
}

func TestGetRequestID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"present", context.WithValue(context.Background(), RequestIDKey, "req-12345"), "req-12345"},
		{"missing", context.Background(), ""},
		{"wrong type", context.WithValue(context.Background(), RequestIDKey, 12345), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetRequestID(tc.ctx); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRecovery_NoPanic_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/evolvers-scenes", nil)
	rr := httptest.NewRecorder()
	Recovery(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != `[]` {
		t.Errorf("expected handler body untouched, got %q", rr.Body.String())
	}
}

func TestRecovery_Panic_WritesErrorEnvelope(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("fixture table corrupted")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/treasury-vaults", nil)
	rr := httptest.NewRecorder()
	Recovery(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("recovery body is not valid JSON: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Errorf("expected failure envelope message, got %q", body["error"])
	}
}

func TestRecovery_NilPanic_WritesErrorEnvelope(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/treasury-vaults", nil)
	rr := httptest.NewRecorder()

	// panic(nil) surfaces as *runtime.PanicNilError and is recovered
	Recovery(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("recovery body is not valid JSON: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Errorf("expected failure envelope message, got %q", body["error"])
	}
}

func TestCORS_OriginAllowList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"listed origin", []string{"http://localhost:3000", "https://treasury.example"}, "https://treasury.example", "https://treasury.example"},
		{"unlisted origin", []string{"http://localhost:3000"}, "https://elsewhere.example", ""},
		{"wildcard", []string{"*"}, "https://anywhere.example", "https://anywhere.example"},
		{"no origin header", []string{"http://localhost:3000"}, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/treasury-vaults", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			CORS(tc.allowed)(handler).ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Errorf("expected Allow-Origin %q, got %q", tc.want, got)
			}
			if rr.Code != http.StatusOK {
				t.Errorf("expected request to proceed, got status %d", rr.Code)
			}
		})
	}
}

func TestCORS_Preflight_ShortCircuits(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	req := httptest.NewRequest(http.MethodOptions, "/api/hidden-societies/x/status", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()

	CORS([]string{"http://localhost:3000"})(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status %d for preflight, got %d", http.StatusNoContent, rr.Code)
	}
	if handler.called {
		t.Error("preflight must not reach the route handler")
	}
	if methods := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(methods, "PATCH") {
		t.Errorf("expected PATCH among allowed methods, got %q", methods)
	}
	if rr.Header().Get("Access-Control-Max-Age") == "" {
		t.Error("expected Access-Control-Max-Age header")
	}
	if expose := rr.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(expose, "X-Request-ID") {
		t.Errorf("expected X-Request-ID exposed, got %q", expose)
	}
}

func TestCompress_GzipAccepted(t *testing.T) {
	t.Parallel()

	const payload = `{"vaultName":"MetaVault 5100","totalCapCeiling":"$51T"}`
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/metavault-summary", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := httptest.NewRecorder()
	Compress(handler).ServeHTTP(rr, req)

	if enc := rr.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", enc)
	}

	reader, err := gzip.NewReader(rr.Body)
	if err != nil {
		t.Fatalf("response is not valid gzip: %v", err)
	}
	defer func() { _ = reader.Close() }()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if string(decompressed) != payload {
		t.Errorf("round trip mismatch: %q", string(decompressed))
	}
}

func TestCompress_GzipNotAccepted(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/evolvers-scenes", nil)
	rr := httptest.NewRecorder()
	Compress(handler).ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") == "gzip" {
		t.Error("must not compress without gzip in Accept-Encoding")
	}
	if rr.Body.String() != `[]` {
		t.Errorf("expected plain body, got %q", rr.Body.String())
	}
}

func TestResponseWriter_CapturesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusCreated)

	if rw.statusCode != http.StatusCreated {
		t.Errorf("expected captured status %d, got %d", http.StatusCreated, rw.statusCode)
	}
	if rr.Code != http.StatusCreated {
		t.Errorf("expected forwarded status %d, got %d", http.StatusCreated, rr.Code)
	}
}

func TestResponseWriter_BodyWriteKeepsDefaultStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	_, _ = rw.Write([]byte(`[]`))

	if rw.statusCode != http.StatusOK {
		t.Errorf("expected default status %d, got %d", http.StatusOK, rw.statusCode)
	}
}

func TestLogger_ForwardsResponse(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"x"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/mall-nodes", nil)
	rr := httptest.NewRecorder()
	Logger(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}
	if rr.Body.String() != `{"id":"x"}` {
		t.Errorf("expected body forwarded unchanged, got %q", rr.Body.String())
	}
}
