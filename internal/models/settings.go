package models

// SalesGoals are the configurable monthly targets shown on the dashboard.
type SalesGoals struct {
	MonthlyLeads   int     `json:"monthlyLeads"`
	ConversionRate float64 `json:"conversionRate"`
	RevenueTarget  float64 `json:"revenueTarget"`
}

// Settings is the per-deployment singleton. Each group persists under its
// own storage key so a partial write never corrupts the others.
type Settings struct {
	APIKey      string     `json:"apiKey"`
	RiskProfile int        `json:"riskProfile"`
	SalesGoals  SalesGoals `json:"salesGoals"`
}

// DefaultSalesGoals mirrors the portal's original defaults.
func DefaultSalesGoals() SalesGoals {
	return SalesGoals{MonthlyLeads: 150, ConversionRate: 15, RevenueTarget: 50000}
}

const DefaultRiskProfile = 50
