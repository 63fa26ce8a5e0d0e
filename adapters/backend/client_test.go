package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margin-optimizer/core/types"
	"margin-optimizer/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
}

func TestAnalyzeServiceDecodesPayload(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"service": {"service_id": "SVC-100", "customer": "Acme", "client_mrc": 1200.0, "currency": "USD"},
			"counts": {"associated": 1, "nearby": 0, "vpl": 0},
			"vendor_quotes": [{"vendor_name": "FiberCo", "mrc": 800.0, "gm": 33.3, "gm_status": "danger"}],
			"nearby_quotes": [],
			"vpl_options": []
		}`))
	})

	analysis, err := client.AnalyzeService(context.Background(), "SVC-100")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"service_id": "SVC-100"}, gotBody)
	assert.Equal(t, "SVC-100", analysis.Service.ServiceID)
	require.Len(t, analysis.VendorQuotes, 1)
	assert.Equal(t, "FiberCo", analysis.VendorQuotes[0].VendorName)
	assert.Equal(t, 1, analysis.Counts.Associated)
}

func TestErrorBodySurfacedVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "Service SVC-404 not found"}`))
	})

	_, err := client.AnalyzeService(context.Background(), "SVC-404")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeApplication))
	assert.Equal(t, "Service SVC-404 not found", errors.UserMessage(err))
}

func TestErrorBodyWinsOverStatusCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "analysis failed"}`))
	})

	_, err := client.AnalyzeRenewal(context.Background(), "SVC-1")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeApplication))
	assert.Equal(t, "analysis failed", errors.UserMessage(err))
}

func TestNonSuccessStatusIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.AnalyzeVendor(context.Background(), "FiberCo")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTransport))
	assert.Equal(t, errors.GenericMessage, errors.UserMessage(err))
}

func TestNetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(Config{BaseURL: srv.URL, Timeout: time.Second}, nil)

	_, err := client.AnalyzeService(context.Background(), "SVC-1")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTransport))
}

func TestFetchStrategyCarriesPriceListOptions(t *testing.T) {
	var gotBody struct {
		VPLOptions []types.VPLVendor `json:"vpl_options"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/strategy/SVC-7/42", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(`{
			"service": {"service_id": "SVC-7"},
			"vendor_quote": {"vendor_name": "FiberCo", "current_mrc": 900.0, "current_gm": 35.0, "gm_status": "danger"},
			"targets": {
				"gm_40": {"target_mrc": 720.0, "discount_needed": 20.0},
				"gm_50": {"target_mrc": 600.0, "discount_needed": 33.3}
			},
			"vendor_vpl": [],
			"alternatives": [],
			"recommendations": []
		}`))
	})

	vpl := []types.VPLVendor{{VendorName: "FiberCo", Options: []types.VPLOption{{MRC: 750}}}}
	strategy, err := client.FetchStrategy(context.Background(), "SVC-7", 42, vpl)
	require.NoError(t, err)
	require.Len(t, gotBody.VPLOptions, 1)
	assert.Equal(t, "FiberCo", gotBody.VPLOptions[0].VendorName)
	assert.Equal(t, 720.0, strategy.Targets.GM40.TargetMRC)
}

func TestVendorSuggestionsEscapesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vendor-autocomplete", r.URL.Path)
		assert.Equal(t, "fib co", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"vendors": ["FiberCo", "Fibria Communications"]}`))
	})

	vendors, err := client.VendorSuggestions(context.Background(), "fib co")
	require.NoError(t, err)
	assert.Equal(t, []string{"FiberCo", "Fibria Communications"}, vendors)
}
