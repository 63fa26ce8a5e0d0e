package ui

import (
	"strings"
	"testing"

	"margin-optimizer/core/format"
)

func TestTableRendersPercentLiterally(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf, true)

	table := w.NewTable("Discount %", "Vendor")
	table.AddRow(format.ToneNeutral, "12.5%", "FiberCo")
	table.AddRow(format.ToneSuccess, "20.0%", "WaveNet")
	table.Render()

	out := buf.String()
	if !strings.Contains(out, "Discount %") {
		t.Errorf("header lost its percent sign: %q", out)
	}
	if !strings.Contains(out, "12.5%") {
		t.Errorf("cell lost its percent sign: %q", out)
	}
	if strings.Contains(out, "%!") {
		t.Errorf("format verb corruption in table output: %q", out)
	}
}

func TestHeadersRenderPercentLiterally(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf, true)

	w.Header("Margin 40% Targets")
	w.SubHeader("Quotes under 50%")
	w.Info("%s", "success rate 85%")

	out := buf.String()
	if !strings.Contains(out, "Margin 40% Targets") {
		t.Errorf("document header mangled: %q", out)
	}
	if !strings.Contains(out, "Quotes under 50%") {
		t.Errorf("section header mangled: %q", out)
	}
	if strings.Contains(out, "%!") {
		t.Errorf("format verb corruption in output: %q", out)
	}
}
