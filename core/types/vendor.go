package types

// HistoryRecord is one closed negotiation (renewal or new contract) with a
// vendor.
type HistoryRecord struct {
	ServiceID       Text     `json:"service_id"`
	VendorName      string   `json:"vendor_name"`
	InitialMRC      *float64 `json:"initial_mrc"`
	FinalMRC        *float64 `json:"final_mrc"`
	DiscountPercent float64  `json:"discount_percent"`
	DateCreated     Text     `json:"date_created"`
	WasSuccessful   bool     `json:"was_successful"`
}

// VendorSummary aggregates a vendor's track record across both tables.
type VendorSummary struct {
	TotalRenewals          int     `json:"total_renewals"`
	TotalNewContracts      int     `json:"total_new_contracts"`
	RenewalSuccessRate     float64 `json:"renewal_success_rate"`
	NewContractSuccessRate float64 `json:"new_contract_success_rate"`
	AvgRenewalDiscount     float64 `json:"avg_renewal_discount"`
	AvgNewContractDiscount float64 `json:"avg_new_contract_discount"`
}

// VendorHistory is the /api/analyze-vendor payload: the vendor's full
// negotiation history split into renewals and new contracts.
type VendorHistory struct {
	VendorName         string          `json:"vendor_name"`
	Summary            *VendorSummary  `json:"summary"`
	RenewalHistory     []HistoryRecord `json:"renewal_history"`
	NewContractHistory []HistoryRecord `json:"new_contract_history"`
}

// VendorSuggestions is the /api/vendor-autocomplete payload.
type VendorSuggestions struct {
	Vendors []string `json:"vendors"`
}
