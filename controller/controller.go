// Package controller coordinates backend calls with view rendering. It owns
// the loading/error lifecycle and the session state that later requests
// (strategy, in particular) depend on.
package controller

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"margin-optimizer/core/types"
	"margin-optimizer/core/view"
	"margin-optimizer/internal/errors"
)

// Backend is the API surface the controller drives.
type Backend interface {
	AnalyzeService(ctx context.Context, serviceID string) (*types.ServiceAnalysis, error)
	AnalyzeRenewal(ctx context.Context, serviceID string) (*types.RenewalAnalysis, error)
	AnalyzeVendor(ctx context.Context, vendorName string) (*types.VendorHistory, error)
	FetchStrategy(ctx context.Context, serviceID string, vqID int64, vplOptions []types.VPLVendor) (*types.Strategy, error)
}

// View receives the controller's output. Implementations render to a
// terminal, a TUI, or a test recorder.
type View interface {
	ShowLoading()
	HideLoading()
	ShowError(message string)
	ShowServiceAnalysis(doc *view.Document)
	ShowRenewalAnalysis(doc *view.Document)
	ShowVendorHistory(doc *view.Document)
	ShowStrategy(doc *view.Document)
}

// Session is what survives between requests: the last analyzed service and
// its price-list options, which a strategy request sends back to the server.
type Session struct {
	ServiceID  string
	VPLOptions []types.VPLVendor
}

// Controller dispatches analysis requests and renders results.
type Controller struct {
	backend Backend
	view    View
	log     *zap.Logger

	// seq orders requests so a slow response for an old input never
	// overwrites the view for a newer one.
	seq atomic.Uint64

	mu      sync.Mutex
	session Session
}

// New creates a controller.
func New(backend Backend, v View, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		backend: backend,
		view:    v,
		log:     log,
	}
}

// Session returns a copy of the current session state.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SubmitService runs a service analysis for the given identifier. Empty
// input is a no-op.
func (c *Controller) SubmitService(ctx context.Context, raw string) error {
	serviceID := strings.TrimSpace(raw)
	if serviceID == "" {
		return nil
	}

	seq := c.seq.Add(1)
	c.view.ShowLoading()

	payload, err := c.backend.AnalyzeService(ctx, serviceID)
	if c.stale(seq) {
		return nil
	}
	c.view.HideLoading()
	if err != nil {
		c.fail("service analysis", err)
		return err
	}

	c.mu.Lock()
	c.session = Session{ServiceID: serviceID, VPLOptions: payload.VPLOptions}
	c.mu.Unlock()

	c.view.ShowServiceAnalysis(view.BuildServiceAnalysis(payload))
	return nil
}

// SubmitRenewal runs a renewal analysis for the given identifier. Empty
// input is a no-op.
func (c *Controller) SubmitRenewal(ctx context.Context, raw string) error {
	serviceID := strings.TrimSpace(raw)
	if serviceID == "" {
		return nil
	}

	seq := c.seq.Add(1)
	c.view.ShowLoading()

	payload, err := c.backend.AnalyzeRenewal(ctx, serviceID)
	if c.stale(seq) {
		return nil
	}
	c.view.HideLoading()
	if err != nil {
		c.fail("renewal analysis", err)
		return err
	}

	c.mu.Lock()
	c.session = Session{ServiceID: serviceID, VPLOptions: payload.VPLOptions}
	c.mu.Unlock()

	c.view.ShowRenewalAnalysis(view.BuildRenewalAnalysis(payload))
	return nil
}

// SubmitVendor runs a vendor history lookup. Empty input is a no-op.
func (c *Controller) SubmitVendor(ctx context.Context, raw string) error {
	vendorName := strings.TrimSpace(raw)
	if vendorName == "" {
		return nil
	}

	seq := c.seq.Add(1)
	c.view.ShowLoading()

	payload, err := c.backend.AnalyzeVendor(ctx, vendorName)
	if c.stale(seq) {
		return nil
	}
	c.view.HideLoading()
	if err != nil {
		c.fail("vendor history", err)
		return err
	}

	c.view.ShowVendorHistory(view.BuildVendorHistory(payload))
	return nil
}

// SubmitStrategy fetches the negotiation strategy for one vendor quote of
// the session's service. It fails if no analysis has been run yet.
func (c *Controller) SubmitStrategy(ctx context.Context, vqID int64) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if session.ServiceID == "" {
		c.view.ShowError("Run a service analysis first.")
		return errors.Validation("no service analyzed yet")
	}

	seq := c.seq.Add(1)
	c.view.ShowLoading()

	payload, err := c.backend.FetchStrategy(ctx, session.ServiceID, vqID, session.VPLOptions)
	if c.stale(seq) {
		return nil
	}
	c.view.HideLoading()
	if err != nil {
		c.fail("strategy", err)
		return err
	}

	c.view.ShowStrategy(view.BuildStrategy(payload))
	return nil
}

// stale reports whether a newer request superseded seq while its response
// was in flight. Stale responses are dropped without touching the view.
func (c *Controller) stale(seq uint64) bool {
	return c.seq.Load() != seq
}

func (c *Controller) fail(op string, err error) {
	c.log.Warn("request failed", zap.String("op", op), zap.Error(err))
	c.view.ShowError(errors.UserMessage(err))
}
