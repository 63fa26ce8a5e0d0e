// Package types defines the wire types returned by the margin-optimizer
// backend. All records are request-scoped: a payload is replaced wholesale
// on each new analysis, never merged incrementally.
package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text is a display field that the backend may send as a string, a number,
// or null. Missing and null values decode to the empty string so display
// derivations can substitute a placeholder instead of failing.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

// MarshalJSON implements json.Marshaler
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// Or returns the field value, or fallback when the field is empty.
func (t Text) Or(fallback string) string {
	if t == "" {
		return fallback
	}
	return string(t)
}

// Priority is a 1-based recommendation rank. Some endpoints rank with the
// tokens high/medium/low instead of integers; those decode to 1/2/3.
type Priority int

// UnmarshalJSON implements json.Unmarshaler
func (p *Priority) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(s) {
		case "high":
			*p = 1
		case "medium":
			*p = 2
		default:
			*p = 3
		}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = Priority(n)
	return nil
}

// NegotiationStats aggregates historical new-contract negotiation outcomes
// for a vendor. Rates and discounts arrive already computed (0-100); this
// layer only formats them.
type NegotiationStats struct {
	TotalNegotiations      int     `json:"total_negotiations"`
	SuccessfulNegotiations int     `json:"successful_negotiations"`
	SuccessRate            float64 `json:"success_rate"`
	AvgDiscount            float64 `json:"avg_discount"`
	BestDiscount           float64 `json:"best_discount,omitempty"`
}

// RenewalStats aggregates historical renewal outcomes for a vendor.
type RenewalStats struct {
	TotalRenewals      int     `json:"total_renewals"`
	SuccessfulRenewals int     `json:"successful_renewals"`
	SuccessRate        float64 `json:"success_rate"`
	AvgDiscount        float64 `json:"avg_discount"`
}

// Projection is a hypothetical outcome of applying a historical discount,
// derived server-side. Shown only when present.
type Projection struct {
	MRC      float64 `json:"mrc"`
	GM       float64 `json:"gm"`
	GMStatus string  `json:"gm_status"`
	Discount float64 `json:"discount"`
}

// Quote is one vendor's priced offer for a service. The margin percentage
// is the sole input to status classification.
type Quote struct {
	VendorName  string `json:"vendor_name"`
	QuickbaseID int64  `json:"quickbase_id"`

	// MRC is the recurring charge in the service currency; nil when the
	// backend could not price the quote.
	MRC                 *float64 `json:"mrc"`
	MRCCurrency         string   `json:"mrc_currency"`
	MRCOriginal         *float64 `json:"mrc_original"`
	MRCOriginalCurrency string   `json:"mrc_original_currency"`
	ExchangeRate        *float64 `json:"exchange_rate"`
	NRC                 *float64 `json:"nrc,omitempty"`

	GM       float64 `json:"gm"`
	GMStatus string  `json:"gm_status"`

	Bandwidth Text `json:"bandwidth"`
	Status    Text `json:"status"`
	LeadTime  Text `json:"lead_time"`

	// Nearby-quote fields
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DateCreated    Text     `json:"date_created,omitempty"`

	HasNegotiationHistory bool              `json:"has_negotiation_history"`
	NegotiationStats      *NegotiationStats `json:"negotiation_stats"`
	Projection            *Projection       `json:"projected_with_negotiation"`

	HasRenewalHistory bool          `json:"has_renewal_history"`
	RenewalStats      *RenewalStats `json:"renewal_stats"`

	HasDeliveredServices bool    `json:"has_delivered_services"`
	DeliveredMRCTotal    float64 `json:"delivered_mrc_total"`
	DeliveredCount       int     `json:"delivered_count"`
}

// VPLOption is one published price-list entry, already filtered server-side
// to the most relevant bandwidth per vendor.
type VPLOption struct {
	MRC          float64     `json:"mrc"`
	MRCCurrency  string      `json:"mrc_currency"`
	MRCUSD       *float64    `json:"mrc_usd"`
	NRC          float64     `json:"nrc"`
	NRCCurrency  string      `json:"nrc_currency"`
	NRCUSD       *float64    `json:"nrc_usd"`
	GM           float64     `json:"gm"`
	GMStatus     string      `json:"gm_status"`
	Bandwidth    Text        `json:"bandwidth"`
	BandwidthBPS *float64    `json:"bandwidth_bps"`
	ServiceType  Text        `json:"service_type"`
	Projection   *Projection `json:"projected_with_negotiation"`
}

// VPLVendor groups a vendor's price-list options.
type VPLVendor struct {
	VendorName       string            `json:"vendor_name"`
	Options          []VPLOption       `json:"options"`
	NegotiationStats *NegotiationStats `json:"negotiation_stats"`
}

// Action is one recommendation step. The backend sends either a bare string
// or a {text, value} object depending on the endpoint.
type Action struct {
	Text  string   `json:"text"`
	Value *float64 `json:"value"`
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Action) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Action{Text: s}
		return nil
	}
	type plain Action
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Action(p)
	return nil
}

// Recommendation is a ranked negotiation suggestion, displayed in list
// order with no client-side re-sorting.
type Recommendation struct {
	Priority    Priority `json:"priority"`
	Type        string   `json:"type"`
	Strength    string   `json:"strength"`
	Confidence  string   `json:"confidence"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []Action `json:"actions"`

	TargetDiscount   *float64 `json:"target_discount"`
	BestCaseDiscount *float64 `json:"best_case_discount"`
	SampleSize       int      `json:"sample_size"`
}

// StrengthTier returns the strength token, falling back to the confidence
// tier on endpoints that rank by confidence instead.
func (r Recommendation) StrengthTier() string {
	if r.Strength != "" {
		return r.Strength
	}
	return r.Confidence
}
