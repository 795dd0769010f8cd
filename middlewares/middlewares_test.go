package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRecoveryReturnsEnvelope(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/boom")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, w.Body.String())
	require.Equal(t, 1, logs.FilterMessage("panic in handler").Len())
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := serve(r, http.MethodGet, "/ok")
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	serve(r, http.MethodGet, "/missing")
	serve(r, http.MethodGet, "/fail")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}

func TestMetricsLabels(t *testing.T) {
	m := NewMetrics()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/items/1")
	serve(r, http.MethodGet, "/items/2")
	serve(r, http.MethodGet, "/nowhere")
	serve(r, http.MethodGet, "/metrics")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))

	body := serve(r, http.MethodGet, "/metrics").Body.String()
	assert.False(t, strings.Contains(body, `route="/metrics"`))
	assert.Contains(t, body, "lifeyears_http_request_duration_seconds")
}

func TestCORSAndNoStore(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/x")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/x")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
}
