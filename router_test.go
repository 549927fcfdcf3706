package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/yourorg/property-insight-api/internal/property"
)

type stubNormalizer struct{}

func (stubNormalizer) Normalize(_ context.Context, _ string) (property.SimplifiedProperty, error) {
	return property.SimplifiedProperty{City: "Test", Schools: []property.School{}}, nil
}

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, _ property.SimplifiedProperty) (string, error) {
	return "<p>ok</p>", nil
}

func newTestRouter(t *testing.T) http.Handler {
	return BuildRouter(RouterDeps{
		Normalizer: stubNormalizer{},
		Generator:  stubGenerator{},
		Logger:     zaptest.NewLogger(t),
	})
}

func TestRouter_Health(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
}

func TestRouter_RoutesMountedTwice(t *testing.T) {
	h := newTestRouter(t)
	for _, prefix := range []string{"", "/api"} {
		t.Run("fetch"+prefix, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, prefix+"/fetch-property",
				strings.NewReader(`{"address":"1 Main St"}`)))
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"city":"Test"`)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
		})
		t.Run("summary"+prefix, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, prefix+"/generate-summary",
				strings.NewReader(`{"property_info":{"city":"Test"}}`)))
			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"summary":"<p>ok</p>"}`, rr.Body.String())
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/fetch-property", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestRouter(t)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http_requests_total{method="GET",route="/health",status="200"}`)
}
