package domain

// CompanyProfile is the company snapshot supplied by the external profile
// source. It is treated as immutable for the duration of one render; missing
// fields degrade to empty strings in the output, they never fail a render.
type CompanyProfile struct {
	Name              string `json:"name"`
	Address           string `json:"address"`
	City              string `json:"city"`
	Country           string `json:"country"`
	EstablishedDate   string `json:"establishedDate"`
	ApprovalDate      string `json:"approvalDate"`
	ChamberOfCommerce string `json:"chamberOfCommerce"`
	FinancialYear     string `json:"financialYear"`
	Owner             string `json:"owner"`
	Logo              string `json:"logo,omitempty"`
}
