package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexiusacademia/gosection/internal/config"
	"github.com/alexiusacademia/gosection/internal/section"
)

const teeJSON = `{
  "name": "Tee",
  "shapes": [
    {"kind": "bar", "label": "flange", "width": 100, "height": 20, "y": 90},
    {"kind": "bar", "label": "stem", "width": 20, "height": 80, "y": 40}
  ]
}`

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Rate = 1000
	cfg.Burst = 1000
	return cfg
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestShapes(t *testing.T) {
	h := New(testConfig()).Handler()
	rec := do(t, h, http.MethodGet, "/api/shapes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var kinds []section.KindInfo
	if err := json.NewDecoder(rec.Body).Decode(&kinds); err != nil {
		t.Fatal(err)
	}
	if len(kinds) != len(section.Catalog) {
		t.Fatalf("kinds = %d, want %d", len(kinds), len(section.Catalog))
	}
	if kinds[0].Kind != "rod" || kinds[0].Parameters[0] != "radius" {
		t.Errorf("first kind = %+v", kinds[0])
	}
}

func TestProperties(t *testing.T) {
	h := New(testConfig()).Handler()
	rec := do(t, h, http.MethodPost, "/api/section/properties", teeJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var result section.AnalysisResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Unit != "mm" {
		t.Errorf("unit = %q, want default mm", result.Unit)
	}
	if result.Properties.Area != 3600 {
		t.Errorf("area = %v", result.Properties.Area)
	}
	wantY := (2000*90.0 + 1600*40.0) / 3600
	if math.Abs(result.Properties.CentroidY-wantY) > 1e-9 {
		t.Errorf("centroid y = %v, want %v", result.Properties.CentroidY, wantY)
	}
	if len(result.Members) != 2 || result.Members[0].Label != "flange" {
		t.Errorf("members = %+v", result.Members)
	}
}

func TestPropertiesErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"shapes": [`, http.StatusBadRequest},
		{"wrong type", `{"shapes": "rod"}`, http.StatusBadRequest},
		{"no shapes", `{"name": "empty"}`, http.StatusUnprocessableEntity},
		{"unknown kind", `{"shapes": [{"kind": "hexagon"}]}`, http.StatusUnprocessableEntity},
		{"negative radius", `{"shapes": [{"kind": "rod", "radius": -1}]}`, http.StatusUnprocessableEntity},
		{"bore too large", `{"shapes": [{"kind": "pipe", "outer_radius": 1, "inner_radius": 2}]}`, http.StatusUnprocessableEntity},
		{"zero area", `{"shapes": [{"kind": "bar", "width": 0, "height": 5}]}`, http.StatusUnprocessableEntity},
		{"moment overflow", `{"shapes": [{"kind": "rod", "radius": 1e100}]}`, http.StatusUnprocessableEntity},
		{"negative thickness", `{"shapes": [{"kind": "pipe", "outer_radius": 2, "thickness": -1}]}`, http.StatusUnprocessableEntity},
	}

	h := New(testConfig()).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/section/properties", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body["error"] == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestWriteJSONEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"ix": math.Inf(1)})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Error("missing error message")
	}
}

func TestReport(t *testing.T) {
	h := New(testConfig()).Handler()

	rec := do(t, h, http.MethodPost, "/api/section/report/pdf", teeJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("pdf content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}

	rec = do(t, h, http.MethodPost, "/api/section/report/xlsx", teeJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("xlsx status = %d, body %s", rec.Code, rec.Body)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("body is not an xlsx archive")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "section.xlsx") {
		t.Errorf("content disposition = %q", cd)
	}

	rec = do(t, h, http.MethodPost, "/api/section/report/docx", teeJSON)
	if rec.Code != http.StatusNotFound {
		t.Errorf("docx status = %d, want 404", rec.Code)
	}

	rec = do(t, h, http.MethodPost, "/api/section/report/pdf", `{"shapes": []}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid section status = %d, want 422", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := New(testConfig()).Handler()
	rec := do(t, h, http.MethodGet, "/api/section/properties", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rate = 0.001
	cfg.Burst = 2
	h := New(cfg).Handler()

	for i := 0; i < 2; i++ {
		if rec := do(t, h, http.MethodGet, "/api/shapes", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	rec := do(t, h, http.MethodGet, "/api/shapes", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}

	// Another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/shapes", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	other := httptest.NewRecorder()
	h.ServeHTTP(other, req)
	if other.Code != http.StatusOK {
		t.Errorf("other client status = %d", other.Code)
	}
}

func TestStartShutsDownOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Addr = "127.0.0.1:0"
	s := New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
