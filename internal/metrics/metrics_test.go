package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollapseIDSegments(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"product by id", "/api/products/123", "/api/products/{id}"},
		{"id followed by more segments", "/api/inventory/products/42/stock", "/api/inventory/products/{id}/stock"},
		{"history path", "/api/inventory/products/7/history", "/api/inventory/products/{id}/history"},
		{"no id segment", "/api/products", "/api/products"},
		{"non-numeric segment untouched", "/api/products/abc", "/api/products/abc"},
		{"root", "/", "/"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, collapseIDSegments(tc.path))
		})
	}
}

func TestMiddlewareBoundsPathLabels(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Distinct ids must land on the one collapsed label value, never on
	// per-record ones.
	for _, target := range []string{"/api/products/101", "/api/products/102"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	collapsed := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/api/products/{id}"))
	assert.Equal(t, 2.0, collapsed)

	perRecord := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("200", http.MethodGet, "/api/products/101"))
	assert.Equal(t, 0.0, perRecord)
}
