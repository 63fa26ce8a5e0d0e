// Package view transforms backend analysis payloads into a typed view-model
// tree. Builders are pure: no rendering environment, no network, no margin
// math. Renderers (terminal, dashboard) walk the tree and apply styling.
package view

import (
	"margin-optimizer/core/format"
)

// Document is the root of a rendered analysis.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
}

// Section is one display region. Exactly one content member is normally
// populated; Notice replaces content when a collection is empty so the
// renderer never produces an empty table or list.
type Section struct {
	Title  string
	Notice string

	Fields          []Field
	Cards           []Card
	Quotes          []QuoteCard
	Table           *Table
	Recommendations []RecommendationView

	// TalkingPoint is a suggested negotiation sentence elevated from the
	// section's data (cheapest price-list entry).
	TalkingPoint string
}

// Field is a labelled display value.
type Field struct {
	Label string
	Value string
	Tone  format.Tone
}

// Badge is a short tagged value with a color tone.
type Badge struct {
	Text string
	Tone format.Tone
}

// Card is a titled group of fields (margin targets, VPL vendors).
type Card struct {
	Title  string
	Badge  *Badge
	Fields []Field
}

// Table is a plain grid with per-row tones.
type Table struct {
	Headers []string
	Rows    []Row
}

// Row is one table row.
type Row struct {
	Cells []string
	Tone  format.Tone
}

// ProjectionCard shows a server-computed hypothetical outcome.
type ProjectionCard struct {
	Title    string
	MRC      string
	Margin   Badge
	Discount string
}

// QuoteCard is the rendered form of one vendor quote.
type QuoteCard struct {
	Vendor    string
	Reference string

	Margin      Badge
	MRC         string
	MRCOriginal string
	NRC         string

	Bandwidth string
	Status    string
	LeadTime  string

	// Nearby-quote extras
	Distance string
	Date     string

	HistoryBadge *Badge
	RenewalBadge *Badge
	Delivered    string

	Projection *ProjectionCard

	// BestCaseNote is present only when the vendor's best historical
	// discount exceeds the average one.
	BestCaseNote string
}

// RecommendationView is one ranked suggestion, in received order.
type RecommendationView struct {
	Icon        string
	Title       string
	Strength    Badge
	Description string
	Actions     []string
}

// marginBadge renders a margin percentage with its tier label. The margin
// value is the only input.
func marginBadge(gm float64) Badge {
	tier := format.ClassifyMargin(gm)
	return Badge{
		Text: format.Percent(gm, 1) + " · " + tier.Label(),
		Tone: tier.Tone(),
	}
}

// strengthBadge renders a recommendation strength tier.
func strengthBadge(token string) Badge {
	return Badge{
		Text: format.StrengthLabel(token),
		Tone: format.StrengthTone(token),
	}
}
