package types

// StrategyQuote is the vendor quote a negotiation strategy targets.
type StrategyQuote struct {
	VendorName  string  `json:"vendor_name"`
	QuickbaseID int64   `json:"quickbase_id"`
	CurrentMRC  float64 `json:"current_mrc"`
	CurrentGM   float64 `json:"current_gm"`
	GMStatus    string  `json:"gm_status"`
	LeadTime    Text    `json:"lead_time"`
	Status      Text    `json:"status"`
}

// NegotiationHistory is the target vendor's track record plus the projected
// outcome of applying their historical average discount.
type NegotiationHistory struct {
	TotalNegotiations      int     `json:"total_negotiations"`
	SuccessfulNegotiations int     `json:"successful_negotiations"`
	SuccessRate            float64 `json:"success_rate"`
	AvgDiscount            float64 `json:"avg_discount"`
	ProjectedMRC           float64 `json:"projected_mrc"`
	ProjectedGM            float64 `json:"projected_gm"`
	ProjectedGMStatus      string  `json:"projected_gm_status"`
}

// Target is a margin goal: the vendor MRC that reaches it and the discount
// required to get there.
type Target struct {
	TargetMRC      float64 `json:"target_mrc"`
	DiscountNeeded float64 `json:"discount_needed"`
}

// Targets holds the two fixed margin thresholds.
type Targets struct {
	GM40 Target `json:"gm_40"`
	GM50 Target `json:"gm_50"`
}

// VPLComparison compares one published price-list entry against the current
// quote.
type VPLComparison struct {
	MRC            float64 `json:"mrc"`
	MRCCurrency    string  `json:"mrc_currency"`
	NRC            float64 `json:"nrc"`
	NRCCurrency    string  `json:"nrc_currency"`
	GM             float64 `json:"gm"`
	GMStatus       string  `json:"gm_status"`
	Bandwidth      Text    `json:"bandwidth"`
	ServiceType    Text    `json:"service_type"`
	Savings        float64 `json:"savings"`
	SavingsPercent float64 `json:"savings_percent"`
}

// Alternative is a competing vendor's best published option.
type Alternative struct {
	VendorName  string  `json:"vendor_name"`
	MRC         float64 `json:"mrc"`
	MRCCurrency string  `json:"mrc_currency"`
	GM          float64 `json:"gm"`
	GMStatus    string  `json:"gm_status"`
	Bandwidth   Text    `json:"bandwidth"`
	ServiceType Text    `json:"service_type"`
}

// Strategy is the /api/strategy/{serviceId}/{vqId} payload: everything
// needed to negotiate one vendor quote.
type Strategy struct {
	Service            ServiceSummary      `json:"service"`
	VendorQuote        StrategyQuote       `json:"vendor_quote"`
	NegotiationHistory *NegotiationHistory `json:"negotiation_history"`
	Targets            Targets             `json:"targets"`
	VendorVPL          []VPLComparison     `json:"vendor_vpl"`
	Alternatives       []Alternative       `json:"alternatives"`
	Recommendations    []Recommendation    `json:"recommendations"`
}
