package view

import (
	"fmt"

	"margin-optimizer/core/format"
	"margin-optimizer/core/types"
)

// BuildVendorHistory maps the /api/analyze-vendor payload onto two
// independent history tables, each with its own empty state.
func BuildVendorHistory(p *types.VendorHistory) *Document {
	doc := &Document{
		Title:    "Vendor History",
		Subtitle: p.VendorName,
	}

	if p.Summary != nil {
		doc.Sections = append(doc.Sections, Section{
			Title: "Summary",
			Fields: []Field{
				{Label: "Renewals", Value: fmt.Sprintf("%d (%s success, avg discount %s)",
					p.Summary.TotalRenewals,
					format.Percent(p.Summary.RenewalSuccessRate, 1),
					format.Percent(p.Summary.AvgRenewalDiscount, 1))},
				{Label: "New Contracts", Value: fmt.Sprintf("%d (%s success, avg discount %s)",
					p.Summary.TotalNewContracts,
					format.Percent(p.Summary.NewContractSuccessRate, 1),
					format.Percent(p.Summary.AvgNewContractDiscount, 1))},
			},
		})
	}

	doc.Sections = append(doc.Sections,
		historySection("Renewal History", p.RenewalHistory,
			"No renewal history recorded for this vendor."),
		historySection("New Contract History", p.NewContractHistory,
			"No new-contract negotiations recorded for this vendor."),
	)

	return doc
}

// historySection renders one history table. Row tone follows the discount
// tier so large concessions stand out.
func historySection(title string, records []types.HistoryRecord, emptyNotice string) Section {
	sec := Section{Title: title}
	if len(records) == 0 {
		sec.Notice = emptyNotice
		return sec
	}

	table := &Table{
		Headers: []string{"Service", "Date", "Initial MRC", "Final MRC", "Discount", "Outcome"},
	}
	for _, rec := range records {
		outcome := "no discount"
		if rec.WasSuccessful {
			outcome = "successful"
		}
		table.Rows = append(table.Rows, Row{
			Cells: []string{
				format.EscapeHTML(rec.ServiceID.Or(format.NotAvailable)),
				rec.DateCreated.Or(format.NotAvailable),
				format.Currency(rec.InitialMRC),
				format.Currency(rec.FinalMRC),
				format.Percent(rec.DiscountPercent, 1),
				outcome,
			},
			Tone: format.DiscountTier(rec.DiscountPercent),
		})
	}
	sec.Table = table
	return sec
}
