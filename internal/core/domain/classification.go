package domain

// Classification is the result of the external classification service for a
// single transaction description.
type Classification struct {
	Category          string `json:"category"`
	DashboardCategory string `json:"dashboardCategory,omitempty"`
}
