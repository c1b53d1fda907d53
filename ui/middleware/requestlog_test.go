package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"heartdash/internal"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := internal.NewLoggerTo(&buf, internal.LogLevelDebug).With("HTTP")

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?raw=1", nil))
	assert.Contains(t, buf.String(), "[DEBUG] [HTTP] GET /ok?raw=1 -> 200")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), "[ERROR] [HTTP] GET /boom -> 500")
}
