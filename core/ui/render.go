package ui

import (
	"margin-optimizer/core/view"
)

// Render walks a view-model document and writes it to the terminal.
func Render(w *Writer, doc *view.Document) {
	title := doc.Title
	if doc.Subtitle != "" {
		title += " · " + doc.Subtitle
	}
	w.Header(title)

	for _, sec := range doc.Sections {
		renderSection(w, sec)
	}
}

func renderSection(w *Writer, sec view.Section) {
	w.SubHeader(sec.Title)

	if sec.Notice != "" {
		w.Info("%s", sec.Notice)
		w.Println("")
		return
	}

	for _, f := range sec.Fields {
		renderField(w, f, "  ")
	}

	for _, card := range sec.Cards {
		renderCard(w, card)
	}

	for _, q := range sec.Quotes {
		renderQuote(w, q)
	}

	if sec.Table != nil {
		table := w.NewTable(sec.Table.Headers...)
		for _, row := range sec.Table.Rows {
			table.AddRow(row.Tone, row.Cells...)
		}
		table.Render()
	}

	if sec.TalkingPoint != "" {
		w.Println("")
		w.Success("Talking point: %s", sec.TalkingPoint)
	}

	for i, rec := range sec.Recommendations {
		renderRecommendation(w, i+1, rec)
	}

	w.Println("")
}

func renderField(w *Writer, f view.Field, indent string) {
	value := f.Value
	if f.Tone != "" && f.Tone != "neutral" {
		value = w.Tone(f.Tone, value)
	}
	w.Println("%s%-16s %s", indent, f.Label+":", value)
}

func renderCard(w *Writer, card view.Card) {
	title := w.color(Bold, card.Title)
	if card.Badge != nil {
		title += "  " + w.Tone(card.Badge.Tone, "["+card.Badge.Text+"]")
	}
	w.Println("  %s", title)
	for _, f := range card.Fields {
		renderField(w, f, "    ")
	}
}

func renderQuote(w *Writer, q view.QuoteCard) {
	header := w.color(Bold, q.Vendor)
	if q.Reference != "" {
		header += " " + w.color(Dim, q.Reference)
	}
	header += "  " + w.Tone(q.Margin.Tone, "["+q.Margin.Text+"]")
	if q.Distance != "" {
		header += " " + w.color(Dim, "("+q.Distance+")")
	}
	w.Println("  %s", header)

	mrc := q.MRC
	if q.MRCOriginal != "" {
		mrc += " (" + q.MRCOriginal + ")"
	}
	w.Println("    MRC %s · BW %s · Lead %s · %s", mrc, q.Bandwidth, q.LeadTime, q.Status)
	if q.NRC != "" {
		w.Println("    NRC %s", q.NRC)
	}
	if q.Date != "" {
		w.Println("    %s", w.color(Dim, "Quoted "+q.Date))
	}

	if q.HistoryBadge != nil {
		w.Println("    %s", w.Tone(q.HistoryBadge.Tone, q.HistoryBadge.Text))
	}
	if q.RenewalBadge != nil {
		w.Println("    %s", w.Tone(q.RenewalBadge.Tone, q.RenewalBadge.Text))
	}
	if q.Delivered != "" {
		w.Println("    %s", w.color(Dim, q.Delivered))
	}

	if q.Projection != nil {
		w.Println("    %s: MRC %s · %s (%s discount)",
			q.Projection.Title,
			q.Projection.MRC,
			w.Tone(q.Projection.Margin.Tone, q.Projection.Margin.Text),
			q.Projection.Discount)
	}
	if q.BestCaseNote != "" {
		w.Println("    %s", w.color(Cyan, q.BestCaseNote))
	}
	w.Println("")
}

func renderRecommendation(w *Writer, n int, rec view.RecommendationView) {
	title := rec.Title
	if rec.Icon != "" {
		title = rec.Icon + " " + title
	}
	w.Println("  %d. %s %s", n, title, w.Tone(rec.Strength.Tone, "["+rec.Strength.Text+"]"))
	if rec.Description != "" {
		w.Println("     %s", rec.Description)
	}
	for _, action := range rec.Actions {
		w.Println("     • %s", action)
	}
}
