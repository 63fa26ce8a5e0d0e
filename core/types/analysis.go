package types

// ServiceSummary identifies the analyzed service and its client-side pricing.
type ServiceSummary struct {
	ServiceID        string   `json:"service_id"`
	Customer         string   `json:"customer"`
	BandwidthDisplay Text     `json:"bandwidth_display"`
	ClientMRC        float64  `json:"client_mrc"`
	Currency         string   `json:"currency"`
	Address          Text     `json:"address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
}

// Counts summarizes how many quote collections the analysis found.
type Counts struct {
	Associated int `json:"associated"`
	Nearby     int `json:"nearby"`
	VPL        int `json:"vpl"`
}

// ServiceAnalysis is the /api/analyze payload: every vendor quote attached
// to the service, quotes for nearby services, and published price lists.
type ServiceAnalysis struct {
	Service      ServiceSummary `json:"service"`
	Counts       Counts         `json:"counts"`
	VendorQuotes []Quote        `json:"vendor_quotes"`
	NearbyQuotes []Quote        `json:"nearby_quotes"`
	VPLOptions   []VPLVendor    `json:"vpl_options"`
}
