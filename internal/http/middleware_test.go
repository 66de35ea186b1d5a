package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medtrack/internal/contextutil"
)

// captureDefaultLogger routes slog.Default into a buffer for the test.
func captureDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggerMiddleware(t *testing.T) {
	buf := captureDefaultLogger(t)

	var capturedCtx context.Context
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedCtx = r.Context()
		contextutil.LoggerFromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	LoggerMiddleware(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("LoggerMiddleware() status = %v, want %v", w.Code, http.StatusOK)
	}
	if capturedCtx == nil {
		t.Fatal("LoggerMiddleware() should capture context")
	}
	if capturedCtx.Value(contextutil.LoggerKey()) == nil {
		t.Error("LoggerMiddleware() should add logger to context")
	}

	requestID := w.Header().Get(RequestIDHeader)
	if len(requestID) != 36 {
		t.Errorf("request id = %q, want a UUID", requestID)
	}
	if !strings.Contains(buf.String(), "request_id="+requestID) {
		t.Errorf("log output %q missing request id", buf.String())
	}
}

func TestLoggerMiddleware_KeepsClientRequestID(t *testing.T) {
	captureDefaultLogger(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()

	LoggerMiddleware(handler).ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want client value", got)
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		shouldLog  bool
	}{
		{
			name:       "regular request",
			method:     http.MethodPost,
			path:       "/api/medications",
			statusCode: http.StatusCreated,
			shouldLog:  true,
		},
		{
			name:       "health check skipped",
			method:     http.MethodGet,
			path:       "/api/health",
			statusCode: http.StatusOK,
			shouldLog:  false,
		},
		{
			name:       "non-200 health check logged",
			method:     http.MethodGet,
			path:       "/api/health",
			statusCode: http.StatusServiceUnavailable,
			shouldLog:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureDefaultLogger(t)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			RequestLogger(handler).ServeHTTP(w, req)

			if w.Code != tt.statusCode {
				t.Errorf("RequestLogger() status = %v, want %v", w.Code, tt.statusCode)
			}
			logged := strings.Contains(buf.String(), "request completed")
			if logged != tt.shouldLog {
				t.Errorf("RequestLogger() logged = %v, want %v (output %q)", logged, tt.shouldLog, buf.String())
			}
		})
	}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() statusCode = %v, want %v", rw.statusCode, http.StatusNotFound)
	}

	if w.Code != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() underlying status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestResponseWriter_Flush(t *testing.T) {
	w := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	var _ http.Flusher = rw
	rw.Flush()

	if !w.Flushed {
		t.Error("responseWriter.Flush() did not reach the underlying writer")
	}
}

func TestCORS(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := CORS(handler)

	tests := []struct {
		name            string
		method          string
		origin          string
		preflightMethod string
		wantStatusCode  int
		wantAllowOrigin string
	}{
		{
			name:            "loopback preflight",
			method:          http.MethodOptions,
			origin:          "http://localhost:3000",
			preflightMethod: http.MethodDelete,
			wantStatusCode:  http.StatusNoContent,
			wantAllowOrigin: "http://localhost:3000",
		},
		{
			name:            "loopback ip request",
			method:          http.MethodPut,
			origin:          "http://127.0.0.1:8080",
			wantStatusCode:  http.StatusOK,
			wantAllowOrigin: "http://127.0.0.1:8080",
		},
		{
			name:            "ipv6 loopback request",
			method:          http.MethodGet,
			origin:          "http://[::1]:5173",
			wantStatusCode:  http.StatusOK,
			wantAllowOrigin: "http://[::1]:5173",
		},
		{
			name:           "request without origin",
			method:         http.MethodPost,
			wantStatusCode: http.StatusOK,
		},
		{
			name:            "foreign preflight refused",
			method:          http.MethodOptions,
			origin:          "https://evil.example",
			preflightMethod: http.MethodDelete,
			wantStatusCode:  http.StatusForbidden,
		},
		{
			name:           "foreign simple post refused",
			method:         http.MethodPost,
			origin:         "https://evil.example",
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "lookalike host refused",
			method:         http.MethodDelete,
			origin:         "http://localhost.evil.example",
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "opaque origin refused",
			method:         http.MethodPost,
			origin:         "null",
			wantStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/medications/1", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflightMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.preflightMethod)
			}
			w := httptest.NewRecorder()

			middleware.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("CORS() status = %v, want %v", w.Code, tt.wantStatusCode)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowOrigin {
				t.Errorf("CORS() Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllowOrigin)
			}
			if tt.wantAllowOrigin == "" && w.Header().Get("Access-Control-Allow-Methods") != "" {
				t.Error("CORS() advertised methods to a refused or same-origin request")
			}
		})
	}
}

func TestCORS_Headers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	CORS(handler).ServeHTTP(w, req)

	headers := map[string]string{
		"Access-Control-Allow-Origin":  "http://localhost:3000",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization, X-Request-ID",
		"Access-Control-Max-Age":       "3600",
	}

	for header, wantValue := range headers {
		gotValue := w.Header().Get(header)
		if gotValue != wantValue {
			t.Errorf("CORS() header %s = %v, want %v", header, gotValue, wantValue)
		}
	}
}
