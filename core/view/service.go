package view

import (
	"fmt"

	"margin-optimizer/core/format"
	"margin-optimizer/core/types"
)

// BuildServiceAnalysis maps the /api/analyze payload onto a document:
// service summary, associated vendor quotes, nearby quotes, price lists.
func BuildServiceAnalysis(p *types.ServiceAnalysis) *Document {
	doc := &Document{
		Title:    "Service Analysis",
		Subtitle: p.Service.ServiceID,
	}

	doc.Sections = append(doc.Sections, serviceSection(p.Service))

	quotes := Section{Title: fmt.Sprintf("Vendor Quotes (%d)", p.Counts.Associated)}
	if len(p.VendorQuotes) == 0 {
		quotes.Notice = "No vendor quotes associated with this service."
	} else {
		for _, q := range p.VendorQuotes {
			quotes.Quotes = append(quotes.Quotes, buildQuoteCard(q, false))
		}
	}
	doc.Sections = append(doc.Sections, quotes)

	subject := subjectVendors(p.VendorQuotes)
	nearby := Section{Title: fmt.Sprintf("Nearby Quotes (%d)", p.Counts.Nearby)}
	if len(p.NearbyQuotes) == 0 {
		nearby.Notice = "No nearby quotes found within the search radius."
	} else {
		for _, q := range sortNearby(p.NearbyQuotes, subject) {
			nearby.Quotes = append(nearby.Quotes, buildQuoteCard(q, true))
		}
	}
	doc.Sections = append(doc.Sections, nearby)

	vpl := Section{Title: fmt.Sprintf("Vendor Price Lists (%d)", p.Counts.VPL)}
	if len(p.VPLOptions) == 0 {
		vpl.Notice = "No published price lists found for this service."
	} else {
		vpl.Cards = buildVPLCards(p.VPLOptions)
	}
	doc.Sections = append(doc.Sections, vpl)

	return doc
}

// serviceSection summarizes the analyzed service.
func serviceSection(s types.ServiceSummary) Section {
	clientMRC := s.ClientMRC
	sec := Section{
		Title: "Service",
		Fields: []Field{
			{Label: "Service ID", Value: format.EscapeHTML(s.ServiceID)},
			{Label: "Customer", Value: format.EscapeHTML(stringOr(s.Customer, format.NotAvailable))},
			{Label: "Bandwidth", Value: s.BandwidthDisplay.Or(format.NotAvailable)},
			{Label: "Client MRC", Value: format.CurrencyIn(&clientMRC, s.Currency)},
		},
	}
	if addr := s.Address.Or(""); addr != "" {
		sec.Fields = append(sec.Fields, Field{Label: "Address", Value: format.EscapeHTML(addr)})
	}
	return sec
}

// subjectVendors collects the vendors quoting the subject service; nearby
// quotes from these vendors sort first.
func subjectVendors(quotes []types.Quote) map[string]bool {
	vendors := make(map[string]bool, len(quotes))
	for _, q := range quotes {
		if q.VendorName != "" {
			vendors[q.VendorName] = true
		}
	}
	return vendors
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
