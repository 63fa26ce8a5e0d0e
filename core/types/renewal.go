package types

// VOCLine is the current vendor order line for a service under renewal.
type VOCLine struct {
	RecordID    int64   `json:"record_id"`
	ServiceID   Text    `json:"service_id"`
	VendorName  string  `json:"vendor_name"`
	MRCUSD      float64 `json:"mrc_usd"`
	NRCUSD      float64 `json:"nrc_usd"`
	GMPercent   float64 `json:"gm_percent"`
	GMUSD       float64 `json:"gm_usd"`
	Status      Text    `json:"status"`
	Bandwidth   Text    `json:"bandwidth"`
	ServiceType Text    `json:"service_type"`
	LeadTime    Text    `json:"lead_time"`
}

// RenewalAnalysis is the /api/analyze-renewal payload: the current vendor
// line, that vendor's renewal track record, market context, and
// server-generated renewal recommendations.
type RenewalAnalysis struct {
	Service            ServiceSummary   `json:"service"`
	VOCLine            *VOCLine         `json:"voc_line"`
	CurrentVendorStats *RenewalStats    `json:"current_vendor_stats"`
	NearbyQuotes       []Quote          `json:"nearby_quotes"`
	Recommendations    []Recommendation `json:"recommendations"`
	VPLOptions         []VPLVendor      `json:"vpl_options"`
}
