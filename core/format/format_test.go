package format

import (
	"strings"
	"testing"
)

func TestClassifyMarginBoundaries(t *testing.T) {
	cases := []struct {
		gm   float64
		want Tier
	}{
		{50.0, TierExcellent},
		{72.3, TierExcellent},
		{49.99, TierAcceptable},
		{40.0, TierAcceptable},
		{39.99, TierNeedsAction},
		{0, TierNeedsAction},
		{-12.5, TierNeedsAction},
	}

	for _, tc := range cases {
		if got := ClassifyMargin(tc.gm); got != tc.want {
			t.Errorf("ClassifyMargin(%v) = %v (%s), want %v (%s)",
				tc.gm, got, got.Label(), tc.want, tc.want.Label())
		}
	}
}

func TestTierTones(t *testing.T) {
	if TierExcellent.Tone() != ToneSuccess {
		t.Errorf("Excellent tier should map to success tone")
	}
	if TierAcceptable.Tone() != ToneWarning {
		t.Errorf("Acceptable tier should map to warning tone")
	}
	if TierNeedsAction.Tone() != ToneDanger {
		t.Errorf("Needs Action tier should map to danger tone")
	}
}

func TestCurrencyNilYieldsPlaceholder(t *testing.T) {
	if got := Currency(nil); got != "N/A" {
		t.Errorf("Currency(nil) = %q, want N/A", got)
	}
	if got := CurrencyIn(nil, "BRL"); got != "N/A" {
		t.Errorf("CurrencyIn(nil) = %q, want N/A", got)
	}
}

func TestCurrencyFormatting(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1234.5, "$1,234.50"},
		{0, "$0.00"},
		{999.999, "$1,000.00"},
		{1000000, "$1,000,000.00"},
		{85, "$85.00"},
		{-4321.1, "-$4,321.10"},
	}

	for _, tc := range cases {
		if got := CurrencyValue(tc.amount); got != tc.want {
			t.Errorf("CurrencyValue(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestCurrencyIn(t *testing.T) {
	amount := 9876.5
	if got := CurrencyIn(&amount, "USD"); got != "$9,876.50" {
		t.Errorf("CurrencyIn(USD) = %q", got)
	}
	if got := CurrencyIn(&amount, "BRL"); got != "9,876.50 BRL" {
		t.Errorf("CurrencyIn(BRL) = %q", got)
	}
	negative := -9876.5
	if got := CurrencyIn(&negative, "BRL"); got != "-9,876.50 BRL" {
		t.Errorf("CurrencyIn(-BRL) = %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(42.15, 1); got != "42.2%" {
		t.Errorf("Percent(42.15, 1) = %q", got)
	}
	if got := Percent(42.25, 1); got != "42.3%" {
		t.Errorf("Percent(42.25, 1) = %q", got)
	}
	if got := Percent(100, 0); got != "100%" {
		t.Errorf("Percent(100, 0) = %q", got)
	}
	if got := Percent(18, 1); got != "18.0%" {
		t.Errorf("Percent(18, 1) = %q", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(500); got != "500 m" {
		t.Errorf("Distance(500) = %q", got)
	}
	if got := Distance(999); got != "999 m" {
		t.Errorf("Distance(999) = %q", got)
	}
	if got := Distance(1000); got != "1.0 km" {
		t.Errorf("Distance(1000) = %q", got)
	}
	if got := Distance(1250); got != "1.2 km" {
		t.Errorf("Distance(1250) = %q", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	escaped := EscapeHTML(`<a>&"'`)

	for _, forbidden := range []string{"<", ">", `"`, "'"} {
		if strings.Contains(escaped, forbidden) {
			t.Errorf("escaped output %q still contains literal %q", escaped, forbidden)
		}
	}
	// Every remaining ampersand must start an entity.
	for i := 0; i < len(escaped); i++ {
		if escaped[i] != '&' {
			continue
		}
		rest := escaped[i:]
		if !strings.HasPrefix(rest, "&amp;") && !strings.HasPrefix(rest, "&lt;") &&
			!strings.HasPrefix(rest, "&gt;") && !strings.HasPrefix(rest, "&quot;") &&
			!strings.HasPrefix(rest, "&#39;") {
			t.Errorf("bare ampersand in escaped output %q", escaped)
		}
	}

	if got := EscapeHTML("Acme & Sons <telecom>"); got != "Acme &amp; Sons &lt;telecom&gt;" {
		t.Errorf("EscapeHTML = %q", got)
	}
}

func TestStrengthLabels(t *testing.T) {
	cases := map[string]string{
		"very_high": "Very High",
		"high":      "High",
		"medium":    "Medium",
		"low":       "Low",
		"brand_new": "Brand New",
	}
	for token, want := range cases {
		if got := StrengthLabel(token); got != want {
			t.Errorf("StrengthLabel(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestPriorityIcons(t *testing.T) {
	for _, p := range []int{1, 2, 3} {
		if PriorityIcon(p) == "" {
			t.Errorf("priority %d should carry an icon", p)
		}
	}
	for _, p := range []int{0, 4, 99, -1} {
		if icon := PriorityIcon(p); icon != "" {
			t.Errorf("priority %d should render no icon, got %q", p, icon)
		}
	}
}

func TestDiscountTier(t *testing.T) {
	if DiscountTier(15) != ToneSuccess {
		t.Errorf("15%% discount should be high tier")
	}
	if DiscountTier(10) != ToneWarning {
		t.Errorf("10%% discount should be medium tier")
	}
	if DiscountTier(5) != ToneNeutral {
		t.Errorf("5%% discount should be neutral")
	}
	if DiscountTier(0) != ToneNeutral {
		t.Errorf("0%% discount should be neutral")
	}
}
