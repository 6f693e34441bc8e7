package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotchart/render"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(render.New(render.Options{Sink: logger}), logger)
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	reqBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ChartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Result
}

func TestService_Handlers(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()

	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		body       any
		wantStatus int
		want       string
	}{
		{
			name:       "bar success",
			handler:    svc.handleBar,
			body:       ChartRequest{Labels: []string{"a", "b"}, Values: []float64{1, 2}, Title: "T", Filename: filepath.Join(dir, "out.png")},
			wantStatus: http.StatusOK,
			want:       "Chart 'T' saved to " + filepath.Join(dir, "out.png"),
		},
		{
			name:       "line success",
			handler:    svc.handleLine,
			body:       ChartRequest{Labels: []string{"a", "b"}, Values: []float64{3, 1}, Title: "L", Filename: filepath.Join(dir, "line.png")},
			wantStatus: http.StatusOK,
			want:       "Chart 'L' saved to " + filepath.Join(dir, "line.png"),
		},
		{
			name:       "pie success",
			handler:    svc.handlePie,
			body:       PieRequest{Labels: []string{"a", "b"}, Sizes: []float64{1, 1}, Title: "P", Filename: filepath.Join(dir, "pie.png")},
			wantStatus: http.StatusOK,
			want:       "Chart 'P' saved to " + filepath.Join(dir, "pie.png"),
		},
		{
			name:       "bar empty",
			handler:    svc.handleBar,
			body:       ChartRequest{},
			wantStatus: http.StatusBadRequest,
			want:       "Error: Labels and values cannot be empty.",
		},
		{
			name:       "pie negative",
			handler:    svc.handlePie,
			body:       PieRequest{Labels: []string{"a", "b"}, Sizes: []float64{1, -1}},
			wantStatus: http.StatusBadRequest,
			want:       "Error: Sizes for a pie chart cannot be negative.",
		},
		{
			name:       "render failure",
			handler:    svc.handleLine,
			body:       ChartRequest{Labels: []string{"a"}, Values: []float64{1}, Filename: filepath.Join(dir, "chart.bmp")},
			wantStatus: http.StatusInternalServerError,
			want:       `Error: could not generate line chart: unsupported output format ".bmp"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, tt.handler, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.want, decodeResult(t, rec))
		})
	}
}

func TestService_MalformedBody(t *testing.T) {
	svc := newTestService(t)

	req := httptest.NewRequest(http.MethodPost, "/charts/bar", bytes.NewReader([]byte(`{"labels":`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error: invalid request", decodeResult(t, rec))
}

func TestService_Routes(t *testing.T) {
	svc := newTestService(t)
	e := svc.Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	body, _ := json.Marshal(PieRequest{Labels: []string{"a"}, Sizes: []float64{1, 2}})
	req = httptest.NewRequest(http.MethodPost, "/charts/pie", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error: The number of labels must match the number of sizes.", decodeResult(t, rec))
}
