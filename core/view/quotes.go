package view

import (
	"fmt"
	"sort"

	"margin-optimizer/core/format"
	"margin-optimizer/core/types"
)

// buildQuoteCard maps one quote onto its display card. Every derivation
// substitutes a placeholder for a missing field rather than failing.
func buildQuoteCard(q types.Quote, nearby bool) QuoteCard {
	card := QuoteCard{
		Vendor:    format.EscapeHTML(vendorOrUnknown(q.VendorName)),
		Margin:    marginBadge(q.GM),
		MRC:       format.CurrencyIn(q.MRC, q.MRCCurrency),
		Bandwidth: q.Bandwidth.Or(format.NotAvailable),
		Status:    format.EscapeHTML(q.Status.Or(format.NotAvailable)),
		LeadTime:  q.LeadTime.Or(format.NotAvailable),
	}

	if q.QuickbaseID != 0 {
		card.Reference = fmt.Sprintf("VQ #%d", q.QuickbaseID)
	}
	if q.MRCOriginal != nil && q.MRCOriginalCurrency != "" {
		card.MRCOriginal = format.CurrencyIn(q.MRCOriginal, q.MRCOriginalCurrency)
	}
	if q.NRC != nil {
		card.NRC = format.CurrencyIn(q.NRC, q.MRCCurrency)
	}

	if nearby {
		if q.DistanceMeters != nil {
			card.Distance = format.Distance(*q.DistanceMeters)
		}
		card.Date = q.DateCreated.Or("")
	}

	if q.HasNegotiationHistory && q.NegotiationStats != nil {
		card.HistoryBadge = statsBadge("History", q.NegotiationStats.TotalNegotiations,
			q.NegotiationStats.SuccessRate, q.NegotiationStats.AvgDiscount)
	}
	if q.HasRenewalHistory && q.RenewalStats != nil {
		card.RenewalBadge = statsBadge("Renewals", q.RenewalStats.TotalRenewals,
			q.RenewalStats.SuccessRate, q.RenewalStats.AvgDiscount)
	}
	if q.HasDeliveredServices && q.DeliveredCount > 0 {
		card.Delivered = fmt.Sprintf("%d delivered services · %s total MRC",
			q.DeliveredCount, format.CurrencyValue(q.DeliveredMRCTotal))
	}

	if q.Projection != nil {
		card.Projection = &ProjectionCard{
			Title:    "Projected with negotiation",
			MRC:      format.CurrencyValue(q.Projection.MRC),
			Margin:   marginBadge(q.Projection.GM),
			Discount: format.Percent(q.Projection.Discount, 1),
		}
		// Best case is redundant display unless it beats the average.
		if q.NegotiationStats != nil && q.NegotiationStats.BestDiscount > q.NegotiationStats.AvgDiscount {
			card.BestCaseNote = fmt.Sprintf("Best historical discount: %s",
				format.Percent(q.NegotiationStats.BestDiscount, 1))
		}
	}

	return card
}

// sortNearby orders nearby quotes with subject-vendor quotes first, then by
// ascending distance. The two-key sort is stable.
func sortNearby(quotes []types.Quote, subjectVendors map[string]bool) []types.Quote {
	sorted := make([]types.Quote, len(quotes))
	copy(sorted, quotes)

	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := subjectVendors[sorted[i].VendorName], subjectVendors[sorted[j].VendorName]
		if si != sj {
			return si
		}
		return distanceOf(sorted[i]) < distanceOf(sorted[j])
	})
	return sorted
}

func distanceOf(q types.Quote) float64 {
	if q.DistanceMeters == nil {
		return 0
	}
	return *q.DistanceMeters
}

func statsBadge(label string, total int, successRate, avgDiscount float64) *Badge {
	return &Badge{
		Text: fmt.Sprintf("%s: %d · %s success · avg discount %s",
			label, total, format.Percent(successRate, 1), format.Percent(avgDiscount, 1)),
		Tone: format.ToneInfo,
	}
}

func vendorOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

// buildVPLCards renders per-vendor price-list groups.
func buildVPLCards(vendors []types.VPLVendor) []Card {
	cards := make([]Card, 0, len(vendors))
	for _, v := range vendors {
		card := Card{Title: format.EscapeHTML(vendorOrUnknown(v.VendorName))}
		if v.NegotiationStats != nil {
			card.Badge = statsBadge("History", v.NegotiationStats.TotalNegotiations,
				v.NegotiationStats.SuccessRate, v.NegotiationStats.AvgDiscount)
		}
		for _, opt := range v.Options {
			mrc := opt.MRC
			tier := format.ClassifyMargin(opt.GM)
			card.Fields = append(card.Fields, Field{
				Label: fmt.Sprintf("%s %s", opt.Bandwidth.Or(format.NotAvailable), opt.ServiceType.Or("")),
				Value: fmt.Sprintf("MRC %s · NRC %s · GM %s",
					format.CurrencyIn(&mrc, opt.MRCCurrency),
					format.CurrencyValue(opt.NRC),
					format.Percent(opt.GM, 1)),
				Tone: tier.Tone(),
			})
			if opt.Projection != nil {
				card.Fields = append(card.Fields, Field{
					Label: "  projected",
					Value: fmt.Sprintf("MRC %s · GM %s (%s discount)",
						format.CurrencyValue(opt.Projection.MRC),
						format.Percent(opt.Projection.GM, 1),
						format.Percent(opt.Projection.Discount, 1)),
					Tone: format.ClassifyMargin(opt.Projection.GM).Tone(),
				})
			}
		}
		cards = append(cards, card)
	}
	return cards
}

// buildRecommendations maps server recommendations in received order.
func buildRecommendations(recs []types.Recommendation) []RecommendationView {
	views := make([]RecommendationView, 0, len(recs))
	for _, rec := range recs {
		rv := RecommendationView{
			Icon:        format.PriorityIcon(int(rec.Priority)),
			Title:       format.EscapeHTML(rec.Title),
			Strength:    strengthBadge(rec.StrengthTier()),
			Description: format.EscapeHTML(rec.Description),
		}
		for _, action := range rec.Actions {
			rv.Actions = append(rv.Actions, format.EscapeHTML(action.Text))
		}
		views = append(views, rv)
	}
	return views
}
