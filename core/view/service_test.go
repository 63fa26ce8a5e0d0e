package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margin-optimizer/core/format"
	"margin-optimizer/core/types"
)

func fptr(v float64) *float64 { return &v }

func analysisWith(vendorQuotes, nearbyQuotes []types.Quote) *types.ServiceAnalysis {
	return &types.ServiceAnalysis{
		Service: types.ServiceSummary{
			ServiceID: "SVC-1001",
			Customer:  "Globex",
			ClientMRC: 2000,
			Currency:  "USD",
		},
		Counts: types.Counts{
			Associated: len(vendorQuotes),
			Nearby:     len(nearbyQuotes),
		},
		VendorQuotes: vendorQuotes,
		NearbyQuotes: nearbyQuotes,
	}
}

func sectionByTitle(t *testing.T, doc *Document, prefix string) Section {
	t.Helper()
	for _, sec := range doc.Sections {
		if strings.HasPrefix(sec.Title, prefix) {
			return sec
		}
	}
	t.Fatalf("no section with title prefix %q in %+v", prefix, doc.Sections)
	return Section{}
}

func TestNearbySortSameVendorPrecedence(t *testing.T) {
	subjectQuote := types.Quote{VendorName: "Acme", MRC: fptr(1000), GM: 50}
	nearby := []types.Quote{
		{VendorName: "Acme", MRC: fptr(950), GM: 52.5, DistanceMeters: fptr(500)},
		{VendorName: "Other", MRC: fptr(800), GM: 60, DistanceMeters: fptr(100)},
	}

	doc := BuildServiceAnalysis(analysisWith([]types.Quote{subjectQuote}, nearby))
	sec := sectionByTitle(t, doc, "Nearby Quotes")

	require.Len(t, sec.Quotes, 2)
	assert.Equal(t, "Acme", sec.Quotes[0].Vendor, "subject-vendor quote must sort first despite greater distance")
	assert.Equal(t, "Other", sec.Quotes[1].Vendor)
}

func TestNearbySortAscendingDistanceWithinGroup(t *testing.T) {
	nearby := []types.Quote{
		{VendorName: "B", MRC: fptr(700), GM: 65, DistanceMeters: fptr(900)},
		{VendorName: "C", MRC: fptr(720), GM: 64, DistanceMeters: fptr(300)},
		{VendorName: "D", MRC: fptr(710), GM: 64.5, DistanceMeters: fptr(600)},
	}

	doc := BuildServiceAnalysis(analysisWith(nil, nearby))
	sec := sectionByTitle(t, doc, "Nearby Quotes")

	require.Len(t, sec.Quotes, 3)
	assert.Equal(t, "C", sec.Quotes[0].Vendor)
	assert.Equal(t, "D", sec.Quotes[1].Vendor)
	assert.Equal(t, "B", sec.Quotes[2].Vendor)
}

func TestEmptyCollectionsRenderNotices(t *testing.T) {
	doc := BuildServiceAnalysis(analysisWith(nil, nil))

	for _, prefix := range []string{"Vendor Quotes", "Nearby Quotes", "Vendor Price Lists"} {
		sec := sectionByTitle(t, doc, prefix)
		assert.NotEmpty(t, sec.Notice, "%s should carry a placeholder notice", prefix)
		assert.Empty(t, sec.Quotes, "%s should render no quote cards", prefix)
		assert.Nil(t, sec.Table, "%s should render no table", prefix)
	}
}

func TestBestCaseShownOnlyWhenExceedingAverage(t *testing.T) {
	base := types.Quote{
		VendorName:            "Acme",
		MRC:                   fptr(1200),
		GM:                    40,
		HasNegotiationHistory: true,
		Projection:            &types.Projection{MRC: 1080, GM: 46, Discount: 10},
	}

	equal := base
	equal.NegotiationStats = &types.NegotiationStats{TotalNegotiations: 8, AvgDiscount: 10, BestDiscount: 10}
	doc := BuildServiceAnalysis(analysisWith([]types.Quote{equal}, nil))
	card := sectionByTitle(t, doc, "Vendor Quotes").Quotes[0]
	require.NotNil(t, card.Projection)
	assert.Empty(t, card.BestCaseNote, "best == avg must not render a best-case block")

	better := base
	better.NegotiationStats = &types.NegotiationStats{TotalNegotiations: 8, AvgDiscount: 10, BestDiscount: 18}
	doc = BuildServiceAnalysis(analysisWith([]types.Quote{better}, nil))
	card = sectionByTitle(t, doc, "Vendor Quotes").Quotes[0]
	assert.NotEmpty(t, card.BestCaseNote, "best > avg must render the best-case block")
	assert.Contains(t, card.BestCaseNote, "18.0%")
}

func TestQuoteCardDefensiveDerivations(t *testing.T) {
	q := types.Quote{
		VendorName: `<b>Acme & Sons</b>`,
		GM:         52,
	}

	doc := BuildServiceAnalysis(analysisWith([]types.Quote{q}, nil))
	card := sectionByTitle(t, doc, "Vendor Quotes").Quotes[0]

	assert.NotContains(t, card.Vendor, "<", "vendor text must be escaped")
	assert.Equal(t, format.NotAvailable, card.MRC, "missing MRC renders the placeholder")
	assert.Equal(t, format.NotAvailable, card.Status)
	assert.Equal(t, format.NotAvailable, card.LeadTime)
}

func TestQuoteCardHistoryBadges(t *testing.T) {
	q := types.Quote{
		VendorName:            "Acme",
		MRC:                   fptr(1000),
		GM:                    48,
		HasNegotiationHistory: true,
		NegotiationStats:      &types.NegotiationStats{TotalNegotiations: 12, SuccessRate: 75, AvgDiscount: 11},
		HasRenewalHistory:     true,
		RenewalStats:          &types.RenewalStats{TotalRenewals: 4, SuccessRate: 50, AvgDiscount: 6},
	}

	doc := BuildServiceAnalysis(analysisWith([]types.Quote{q}, nil))
	card := sectionByTitle(t, doc, "Vendor Quotes").Quotes[0]

	require.NotNil(t, card.HistoryBadge)
	assert.Contains(t, card.HistoryBadge.Text, "12")
	require.NotNil(t, card.RenewalBadge)
	assert.Contains(t, card.RenewalBadge.Text, "4")

	assert.Equal(t, format.ToneWarning, card.Margin.Tone, "48%% margin is the acceptable tier")
}

func TestNearbyCardCarriesDistanceBadge(t *testing.T) {
	nearby := []types.Quote{
		{VendorName: "Far", MRC: fptr(700), GM: 65, DistanceMeters: fptr(1250)},
		{VendorName: "Near", MRC: fptr(720), GM: 64, DistanceMeters: fptr(400)},
	}

	doc := BuildServiceAnalysis(analysisWith(nil, nearby))
	sec := sectionByTitle(t, doc, "Nearby Quotes")

	require.Len(t, sec.Quotes, 2)
	assert.Equal(t, "400 m", sec.Quotes[0].Distance)
	assert.Equal(t, "1.2 km", sec.Quotes[1].Distance)
}
