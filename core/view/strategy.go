package view

import (
	"fmt"

	"margin-optimizer/core/format"
	"margin-optimizer/core/types"
)

// BuildStrategy maps the /api/strategy payload onto a fixed-order document:
// current situation, negotiation history, margin targets, price-list
// leverage, alternatives, recommendations.
func BuildStrategy(p *types.Strategy) *Document {
	doc := &Document{
		Title:    fmt.Sprintf("Negotiation Strategy · %s", vendorOrUnknown(p.VendorQuote.VendorName)),
		Subtitle: p.Service.ServiceID,
	}

	doc.Sections = append(doc.Sections,
		currentSituationSection(p),
		negotiationHistorySection(p.NegotiationHistory),
		targetsSection(p.Targets),
	)

	if len(p.VendorVPL) > 0 {
		doc.Sections = append(doc.Sections, vendorVPLSection(p.VendorVPL, p.VendorQuote))
	}
	if len(p.Alternatives) > 0 {
		doc.Sections = append(doc.Sections, alternativesSection(p.Alternatives))
	}

	recs := Section{Title: "Recommendations"}
	if len(p.Recommendations) == 0 {
		recs.Notice = "No recommendations were generated."
	} else {
		recs.Recommendations = buildRecommendations(p.Recommendations)
	}
	doc.Sections = append(doc.Sections, recs)

	return doc
}

func currentSituationSection(p *types.Strategy) Section {
	vq := p.VendorQuote
	currentMRC := vq.CurrentMRC
	clientMRC := p.Service.ClientMRC

	return Section{
		Title: "Current Situation",
		Fields: []Field{
			{Label: "Customer", Value: format.EscapeHTML(stringOr(p.Service.Customer, format.NotAvailable))},
			{Label: "Vendor", Value: format.EscapeHTML(vendorOrUnknown(vq.VendorName))},
			{Label: "Client MRC", Value: format.Currency(&clientMRC)},
			{Label: "Vendor MRC", Value: format.Currency(&currentMRC)},
			{Label: "Gross Margin", Value: marginBadge(vq.CurrentGM).Text, Tone: format.ClassifyMargin(vq.CurrentGM).Tone()},
			{Label: "Lead Time", Value: vq.LeadTime.Or(format.NotAvailable)},
			{Label: "Status", Value: format.EscapeHTML(vq.Status.Or(format.NotAvailable))},
		},
	}
}

func negotiationHistorySection(h *types.NegotiationHistory) Section {
	sec := Section{Title: "Negotiation History"}
	if h == nil {
		sec.Notice = "No negotiation history available for this vendor."
		return sec
	}

	projected := h.ProjectedMRC
	sec.Fields = []Field{
		{Label: "Total Negotiations", Value: fmt.Sprintf("%d", h.TotalNegotiations)},
		{Label: "Successful", Value: fmt.Sprintf("%d", h.SuccessfulNegotiations)},
		{Label: "Success Rate", Value: format.Percent(h.SuccessRate, 1)},
		{Label: "Average Discount", Value: format.Percent(h.AvgDiscount, 1), Tone: format.DiscountTier(h.AvgDiscount)},
		{Label: "Projected MRC", Value: format.Currency(&projected)},
		{Label: "Projected GM", Value: marginBadge(h.ProjectedGM).Text, Tone: format.ClassifyMargin(h.ProjectedGM).Tone()},
	}
	return sec
}

// targetsSection renders the two fixed margin thresholds as cards.
func targetsSection(t types.Targets) Section {
	return Section{
		Title: "Margin Targets",
		Cards: []Card{
			targetCard("40% GM · Minimum Acceptable", t.GM40, format.ToneWarning),
			targetCard("50% GM · Target", t.GM50, format.ToneSuccess),
		},
	}
}

func targetCard(title string, target types.Target, tone format.Tone) Card {
	mrc := target.TargetMRC
	return Card{
		Title: title,
		Badge: &Badge{Text: format.Percent(target.DiscountNeeded, 1) + " discount needed", Tone: tone},
		Fields: []Field{
			{Label: "Required MRC", Value: format.Currency(&mrc)},
		},
	}
}

// vendorVPLSection compares published price-list entries against the
// current quote and elevates the cheapest one into a talking point.
func vendorVPLSection(entries []types.VPLComparison, vq types.StrategyQuote) Section {
	table := &Table{
		Headers: []string{"Bandwidth", "Type", "MRC", "NRC", "GM", "Savings"},
	}

	cheapest := entries[0]
	for _, e := range entries {
		if e.MRC < cheapest.MRC {
			cheapest = e
		}
		mrc := e.MRC
		table.Rows = append(table.Rows, Row{
			Cells: []string{
				e.Bandwidth.Or(format.NotAvailable),
				e.ServiceType.Or(format.NotAvailable),
				format.CurrencyIn(&mrc, e.MRCCurrency),
				format.CurrencyValue(e.NRC),
				format.Percent(e.GM, 1),
				fmt.Sprintf("%s (%s)", format.CurrencyValue(e.Savings), format.Percent(e.SavingsPercent, 1)),
			},
			Tone: format.ClassifyMargin(e.GM).Tone(),
		})
	}

	cheapestMRC := cheapest.MRC
	return Section{
		Title: "Vendor Price List",
		Table: table,
		TalkingPoint: fmt.Sprintf(
			"Your published price list shows %s for this service, %s below the current quote.",
			format.CurrencyIn(&cheapestMRC, cheapest.MRCCurrency),
			format.Percent(cheapest.SavingsPercent, 1)),
	}
}

func alternativesSection(alts []types.Alternative) Section {
	table := &Table{
		Headers: []string{"Vendor", "Bandwidth", "Type", "MRC", "GM"},
	}
	for _, alt := range alts {
		mrc := alt.MRC
		table.Rows = append(table.Rows, Row{
			Cells: []string{
				format.EscapeHTML(vendorOrUnknown(alt.VendorName)),
				alt.Bandwidth.Or(format.NotAvailable),
				alt.ServiceType.Or(format.NotAvailable),
				format.CurrencyIn(&mrc, alt.MRCCurrency),
				format.Percent(alt.GM, 1),
			},
			Tone: format.ClassifyMargin(alt.GM).Tone(),
		})
	}
	return Section{Title: "Alternative Vendors", Table: table}
}
