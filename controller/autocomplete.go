package controller

import (
	"context"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MinQueryLength is the minimum number of trimmed characters before a
// suggestion lookup fires.
const MinQueryLength = 2

// DefaultDebounce is the pause after the last keystroke before a lookup.
const DefaultDebounce = 300 * time.Millisecond

// NoResultsLabel is the single non-selectable row shown when a lookup
// matches nothing.
const NoResultsLabel = "No vendors found"

// SuggestionSource looks up vendor names matching a partial input.
type SuggestionSource interface {
	VendorSuggestions(ctx context.Context, query string) ([]string, error)
}

// SuggestionPanel receives autocomplete output.
type SuggestionPanel interface {
	ShowSuggestions(vendors []string, selectable bool)
	HideSuggestions()
	SetInput(value string)
}

// Autocomplete debounces vendor-name keystrokes into suggestion lookups.
type Autocomplete struct {
	source   SuggestionSource
	panel    SuggestionPanel
	debounce *Debouncer
	log      *zap.Logger

	// seq orders lookups so a slow response for an earlier prefix never
	// replaces suggestions for the current one.
	seq atomic.Uint64

	// MinChars overrides MinQueryLength when positive.
	MinChars int

	// OnSelect runs after a suggestion fills the input, typically to
	// submit the vendor lookup immediately.
	OnSelect func(vendor string)
}

// NewAutocomplete creates an autocomplete controller. A non-positive
// debounce falls back to DefaultDebounce.
func NewAutocomplete(source SuggestionSource, panel SuggestionPanel, debounce time.Duration, log *zap.Logger) *Autocomplete {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Autocomplete{
		source:   source,
		panel:    panel,
		debounce: NewDebouncer(debounce),
		log:      log,
	}
}

// Input handles one keystroke's worth of input. Short inputs cancel any
// pending lookup and hide the panel; longer ones schedule a trailing-edge
// lookup for the latest value.
func (a *Autocomplete) Input(ctx context.Context, raw string) {
	minChars := a.MinChars
	if minChars <= 0 {
		minChars = MinQueryLength
	}
	query := strings.TrimSpace(raw)
	if utf8.RuneCountInString(query) < minChars {
		a.debounce.Cancel()
		a.seq.Add(1)
		a.panel.HideSuggestions()
		return
	}

	seq := a.seq.Add(1)
	a.debounce.Debounce(func() {
		a.lookup(ctx, query, seq)
	})
}

// Select fills the input with the chosen vendor, closes the panel, and
// triggers the follow-up submit.
func (a *Autocomplete) Select(vendor string) {
	a.debounce.Cancel()
	a.seq.Add(1)
	a.panel.SetInput(vendor)
	a.panel.HideSuggestions()
	if a.OnSelect != nil {
		a.OnSelect(vendor)
	}
}

// Dismiss closes the panel without touching the input.
func (a *Autocomplete) Dismiss() {
	a.debounce.Cancel()
	a.seq.Add(1)
	a.panel.HideSuggestions()
}

func (a *Autocomplete) lookup(ctx context.Context, query string, seq uint64) {
	vendors, err := a.source.VendorSuggestions(ctx, query)
	if a.seq.Load() != seq {
		return
	}
	if err != nil {
		// Suggestions are best-effort; a failed lookup just closes
		// the panel.
		a.log.Debug("suggestion lookup failed", zap.String("query", query), zap.Error(err))
		a.panel.HideSuggestions()
		return
	}
	if len(vendors) == 0 {
		a.panel.ShowSuggestions([]string{NoResultsLabel}, false)
		return
	}
	a.panel.ShowSuggestions(vendors, true)
}
