package ui

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"html"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"

	"heartdash/domain/core"
	"heartdash/domain/dataset"
	"heartdash/internal"
	"heartdash/internal/report"
	"heartdash/internal/testkit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, records [][]string, target string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds, err := dataset.FromRecords("heart.csv", records)
	require.NoError(t, err)

	logger := internal.NewLoggerTo(&bytes.Buffer{}, internal.LogLevelError)
	s := NewServer(os.DirFS(".."))
	require.NoError(t, s.Initialize(report.NewRenderer(ds, target, logger), logger))
	return s
}

func get(s *Server, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

var imgSrc = regexp.MustCompile(`<img src="([^"]*)"`)

// inlineFigures decodes every inlined SVG image on the page
func inlineFigures(t *testing.T, body string) []string {
	t.Helper()
	const prefix = "data:image/svg+xml;base64,"

	var out []string
	for _, m := range imgSrc.FindAllStringSubmatch(body, -1) {
		src := html.UnescapeString(m[1])
		require.True(t, strings.HasPrefix(src, prefix), src)
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(src, prefix))
		require.NoError(t, err)
		out = append(out, string(raw))
	}
	return out
}

func heartRecords() [][]string {
	return testkit.NewHeartDataGenerator(testkit.DefaultHeartConfig()).Records()
}

func TestIndex_RendersSectionsInOrder(t *testing.T) {
	s := newTestServer(t, heartRecords(), "target")

	w := get(s, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "<title>Heart Disease EDA Dashboard</title>")
	assert.Contains(t, body, "Shape: <code>(303, 14)</code>")
	assert.NotContains(t, body, "Dataset Preview")

	order := []string{
		"Show Raw Data",
		"Dataset Info",
		"Missing Values",
		"Summary Statistics",
		"Distributions of Numerical Features",
		"Boxplots of Numerical Features",
		"Correlation Heatmap",
		"Categorical Feature Distributions",
		"Insights",
	}
	last := -1
	for _, heading := range order {
		idx := strings.Index(body, heading)
		require.True(t, idx > last, "%q out of order", heading)
		last = idx
	}

	figures := inlineFigures(t, body)
	require.Len(t, figures, 4)
	for _, svg := range figures {
		assert.True(t, strings.HasPrefix(svg, "<?xml"))
		assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
	}
	assert.Contains(t, body, "<strong>no missing values</strong>")
	assert.Contains(t, body, "</html>")
}

func TestIndex_RenderIDHeader(t *testing.T) {
	s := newTestServer(t, heartRecords(), "target")

	id := core.NewRenderID()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RenderIDHeader, id.String())
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), w.Header().Get(RenderIDHeader))
	assert.Contains(t, w.Body.String(), "render "+id.Short())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RenderIDHeader, "not-a-uuid")
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	got, err := core.ParseRenderID(w.Header().Get(RenderIDHeader))
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", got.String())
}

func TestIndex_RawToggle(t *testing.T) {
	s := newTestServer(t, heartRecords(), "target")

	for _, q := range []string{"1", "true", "on"} {
		w := get(s, "/?raw="+q)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Dataset Preview")
		assert.Contains(t, body, " checked>")

		start := strings.Index(body, `id="preview"`)
		require.True(t, start >= 0)
		section := body[start:]
		section = section[:strings.Index(section, "</section>")]
		// one header row plus the preview rows
		assert.Equal(t, report.PreviewRows+1, strings.Count(section, "<tr>"))
	}

	w := get(s, "/?raw=0")
	assert.NotContains(t, w.Body.String(), "Dataset Preview")
}

func TestIndex_MissingTargetIsServerError(t *testing.T) {
	s := newTestServer(t, heartRecords(), "label")

	w := get(s, "/")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_COLUMN", body["code"])
	assert.NotContains(t, w.Body.String(), "<html")
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, heartRecords(), "target")

	w := get(s, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string `json:"status"`
		Rows   int    `json:"rows"`
		Cols   int    `json:"cols"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 303, body.Rows)
	assert.Equal(t, 14, body.Cols)
}

func TestStaticCSS(t *testing.T) {
	s := newTestServer(t, heartRecords(), "target")

	w := get(s, "/static/css/dashboard.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".sidebar")
}

func TestParseToggle(t *testing.T) {
	for _, v := range []string{"1", "true", "ON", " yes "} {
		assert.True(t, parseToggle(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "maybe"} {
		assert.False(t, parseToggle(v), v)
	}
}

func TestFormatStat(t *testing.T) {
	assert.Equal(t, "54.366337", formatStat(54.366336633663366))
	assert.Equal(t, "NaN", formatStat(math.NaN()))
}
