// Package format provides pure display formatting for pricing payloads:
// currency and percentage strings, margin-tier classification, badge labels
// and icons. No formatting function performs margin math; every number
// arrives already computed.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is the placeholder for missing numeric fields.
const NotAvailable = "N/A"

// Tone is a display color token.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
	ToneInfo    Tone = "info"
)

// Tier classifies a gross margin percentage.
type Tier int

const (
	// TierNeedsAction is a margin below 40%
	TierNeedsAction Tier = iota

	// TierAcceptable is a margin in [40, 50)
	TierAcceptable

	// TierExcellent is a margin of 50% or better
	TierExcellent
)

// ClassifyMargin maps a margin percentage to its tier. The margin is the
// sole input; no other quote field may influence the result.
func ClassifyMargin(gm float64) Tier {
	switch {
	case gm >= 50:
		return TierExcellent
	case gm >= 40:
		return TierAcceptable
	default:
		return TierNeedsAction
	}
}

// Label returns the human label for the tier
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent"
	case TierAcceptable:
		return "Acceptable"
	default:
		return "Needs Action"
	}
}

// Tone returns the display color token for the tier
func (t Tier) Tone() Tone {
	switch t {
	case TierExcellent:
		return ToneSuccess
	case TierAcceptable:
		return ToneWarning
	default:
		return ToneDanger
	}
}

// DiscountTier classifies a historical discount percentage for row-level
// coloring: high is 15% or more, medium is above 5%, anything else neutral.
func DiscountTier(discount float64) Tone {
	switch {
	case discount >= 15:
		return ToneSuccess
	case discount > 5:
		return ToneWarning
	default:
		return ToneNeutral
	}
}

// Currency formats a monetary amount as a fixed two-decimal dollar string
// with thousands separators. A nil amount yields the N/A marker; the
// function never panics on any input.
func Currency(amount *float64) string {
	if amount == nil {
		return NotAvailable
	}
	fixed := decimal.NewFromFloat(*amount).StringFixed(2)
	// The sign goes before the dollar prefix, not inside the digits.
	if strings.HasPrefix(fixed, "-") {
		return "-$" + groupThousands(fixed[1:])
	}
	return "$" + groupThousands(fixed)
}

// CurrencyValue is Currency for amounts that are always present.
func CurrencyValue(amount float64) string {
	return Currency(&amount)
}

// CurrencyIn formats an amount in the given currency code. USD and unknown
// codes render with the dollar prefix; other codes render as a suffix.
func CurrencyIn(amount *float64, code string) string {
	if amount == nil {
		return NotAvailable
	}
	if code == "" || code == "USD" {
		return Currency(amount)
	}
	return groupThousands(decimal.NewFromFloat(*amount).StringFixed(2)) + " " + code
}

// groupThousands inserts comma separators into the integer part of a
// fixed-decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Percent formats a percentage with a fixed number of decimals and a
// trailing percent sign. Rounding is half away from zero, same as Currency,
// so 42.15 renders as 42.2% regardless of its float64 representation.
func Percent(value float64, decimals int) string {
	return decimal.NewFromFloat(value).StringFixed(int32(decimals)) + "%"
}

// Distance formats a distance in meters, switching to kilometers with one
// decimal at 1000m.
func Distance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// StrengthLabel maps a recommendation strength token to a human label.
func StrengthLabel(strength string) string {
	switch strings.ToLower(strength) {
	case "very_high":
		return "Very High"
	case "high":
		return "High"
	case "medium":
		return "Medium"
	case "low":
		return "Low"
	default:
		return titleCase(strength)
	}
}

// StrengthTone maps a strength token to a display color token.
func StrengthTone(strength string) Tone {
	switch strings.ToLower(strength) {
	case "very_high":
		return ToneDanger
	case "high":
		return ToneWarning
	case "medium":
		return ToneInfo
	default:
		return ToneNeutral
	}
}

// PriorityIcon returns the icon for a 1-based recommendation priority.
// Only the top three priorities carry icons.
func PriorityIcon(priority int) string {
	switch priority {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five HTML-sensitive characters so untrusted vendor
// and quote text can be interpolated into markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
