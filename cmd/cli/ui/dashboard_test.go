package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"margin-optimizer/core/types"
	"margin-optimizer/internal/config"
	"margin-optimizer/internal/errors"
)

type stubBackend struct{}

func (stubBackend) AnalyzeService(context.Context, string) (*types.ServiceAnalysis, error) {
	return nil, errors.Transport("request failed", nil)
}

func (stubBackend) AnalyzeRenewal(context.Context, string) (*types.RenewalAnalysis, error) {
	return nil, errors.Transport("request failed", nil)
}

func (stubBackend) AnalyzeVendor(context.Context, string) (*types.VendorHistory, error) {
	return nil, errors.Transport("request failed", nil)
}

func (stubBackend) FetchStrategy(context.Context, string, int64, []types.VPLVendor) (*types.Strategy, error) {
	return nil, errors.Transport("request failed", nil)
}

func (stubBackend) VendorSuggestions(context.Context, string) ([]string, error) {
	return nil, nil
}

func TestStaleSessionIsDiscarded(t *testing.T) {
	m := NewDashboard(stubBackend{}, config.Default(), nil)
	m.requestSeq = 2

	vpl := []types.VPLVendor{{VendorName: "OldCo"}}
	updated, _ := m.Update(sessionMsg{seq: 1, serviceID: "SVC-OLD", vplOptions: vpl})
	m = updated.(Model)

	assert.Empty(t, m.sessionService, "superseded analysis must not seed the session")
	assert.Empty(t, m.sessionVPL)

	updated, _ = m.Update(sessionMsg{seq: 2, serviceID: "SVC-NEW", vplOptions: vpl})
	m = updated.(Model)

	assert.Equal(t, "SVC-NEW", m.sessionService)
}

func TestStaleAnalysisIsDiscarded(t *testing.T) {
	m := NewDashboard(stubBackend{}, config.Default(), nil)
	m.requestSeq = 2
	m.loading = true

	updated, _ := m.Update(analysisMsg{seq: 1, err: errors.Transport("request failed", nil)})
	m = updated.(Model)

	assert.True(t, m.loading, "stale response must not settle the newer request")
	assert.Empty(t, m.errMsg)
}
