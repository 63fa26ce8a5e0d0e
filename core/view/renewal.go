package view

import (
	"fmt"

	"margin-optimizer/core/format"
	"margin-optimizer/core/types"
)

// BuildRenewalAnalysis maps the /api/analyze-renewal payload: the current
// vendor line, the vendor's renewal track record, market context and the
// server's renewal recommendations.
func BuildRenewalAnalysis(p *types.RenewalAnalysis) *Document {
	doc := &Document{
		Title:    "Renewal Analysis",
		Subtitle: p.Service.ServiceID,
	}

	doc.Sections = append(doc.Sections, serviceSection(p.Service))
	doc.Sections = append(doc.Sections, vocLineSection(p.VOCLine))
	doc.Sections = append(doc.Sections, renewalStatsSection(p.VOCLine, p.CurrentVendorStats))

	subject := map[string]bool{}
	if p.VOCLine != nil && p.VOCLine.VendorName != "" {
		subject[p.VOCLine.VendorName] = true
	}
	nearby := Section{Title: "Nearby Quotes"}
	if len(p.NearbyQuotes) == 0 {
		nearby.Notice = "No nearby quotes found within the search radius."
	} else {
		for _, q := range sortNearby(p.NearbyQuotes, subject) {
			nearby.Quotes = append(nearby.Quotes, buildQuoteCard(q, true))
		}
	}
	doc.Sections = append(doc.Sections, nearby)

	recs := Section{Title: "Recommendations"}
	if len(p.Recommendations) == 0 {
		recs.Notice = "No renewal recommendations were generated."
	} else {
		recs.Recommendations = buildRecommendations(p.Recommendations)
	}
	doc.Sections = append(doc.Sections, recs)

	vpl := Section{Title: "Vendor Price Lists"}
	if len(p.VPLOptions) == 0 {
		vpl.Notice = "No published price lists found for this service."
	} else {
		vpl.Cards = buildVPLCards(p.VPLOptions)
	}
	doc.Sections = append(doc.Sections, vpl)

	return doc
}

func vocLineSection(voc *types.VOCLine) Section {
	sec := Section{Title: "Current Vendor Line"}
	if voc == nil {
		sec.Notice = "No current vendor order line found for this service."
		return sec
	}

	mrc := voc.MRCUSD
	nrc := voc.NRCUSD
	sec.Fields = []Field{
		{Label: "Vendor", Value: format.EscapeHTML(vendorOrUnknown(voc.VendorName))},
		{Label: "MRC", Value: format.Currency(&mrc)},
		{Label: "NRC", Value: format.Currency(&nrc)},
		{Label: "Gross Margin", Value: marginBadge(voc.GMPercent).Text, Tone: format.ClassifyMargin(voc.GMPercent).Tone()},
		{Label: "Bandwidth", Value: voc.Bandwidth.Or(format.NotAvailable)},
		{Label: "Service Type", Value: voc.ServiceType.Or(format.NotAvailable)},
		{Label: "Status", Value: format.EscapeHTML(voc.Status.Or(format.NotAvailable))},
		{Label: "Lead Time", Value: voc.LeadTime.Or(format.NotAvailable)},
	}
	return sec
}

func renewalStatsSection(voc *types.VOCLine, stats *types.RenewalStats) Section {
	vendor := "current vendor"
	if voc != nil && voc.VendorName != "" {
		vendor = voc.VendorName
	}

	sec := Section{Title: "Renewal Track Record"}
	if stats == nil || stats.TotalRenewals == 0 {
		sec.Notice = fmt.Sprintf("No renewal history available for %s.", format.EscapeHTML(vendor))
		return sec
	}

	sec.Fields = []Field{
		{Label: "Total Renewals", Value: fmt.Sprintf("%d", stats.TotalRenewals)},
		{Label: "Successful", Value: fmt.Sprintf("%d", stats.SuccessfulRenewals)},
		{Label: "Success Rate", Value: format.Percent(stats.SuccessRate, 1)},
		{Label: "Average Discount", Value: format.Percent(stats.AvgDiscount, 1), Tone: format.DiscountTier(stats.AvgDiscount)},
	}
	return sec
}
