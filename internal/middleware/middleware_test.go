package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alovak/paystack-gateway/internal/middleware"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	middleware.NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Cannot find the requested resource"}`, w.Body.String())
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestRequestID(t *testing.T) {
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimw.GetReqID(r.Context())
	}))

	t.Run("minted", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotEmpty(t, seen)
		require.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		require.Equal(t, "abc-123", seen)
		require.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.RequestID(middleware.NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/transaction/initialize", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, `"msg":"request completed"`)
	require.Contains(t, out, `"status":418`)
	require.Contains(t, out, `"path":"/transaction/initialize"`)
	require.Contains(t, out, `"req_id":"req-1"`)
	require.Contains(t, out, `"bytes":15`)
}

func TestCORS(t *testing.T) {
	h := middleware.CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/transaction/customers", nil)
	req.Header.Set("Origin", "http://shop.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>shop</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("api"))
	})
	h := middleware.Static(dir)(next)

	serve := func(method, target, accept string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	t.Run("asset", func(t *testing.T) {
		w := serve(http.MethodGet, "/app.js", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "console.log(1)", w.Body.String())
	})

	t.Run("client route falls back to index", func(t *testing.T) {
		w := serve(http.MethodGet, "/checkout/success", "text/html,application/xhtml+xml")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "<html>shop</html>", w.Body.String())
	})

	t.Run("api call passes through", func(t *testing.T) {
		w := serve(http.MethodGet, "/transaction/verify?reference=x", "application/json")
		require.Equal(t, "api", w.Body.String())
	})

	t.Run("missing asset passes through", func(t *testing.T) {
		w := serve(http.MethodGet, "/missing.css", "text/html")
		require.Equal(t, "api", w.Body.String())
	})

	t.Run("post passes through", func(t *testing.T) {
		w := serve(http.MethodPost, "/app.js", "")
		require.Equal(t, "api", w.Body.String())
	})

	t.Run("disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		middleware.Static("")(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))
		require.Equal(t, "api", w.Body.String())
	})
}
