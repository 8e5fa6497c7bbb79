package domain

import "github.com/shopspring/decimal"

// Preview is the derived read-only view of a scenario. A section that could
// not be computed is nil and lists the fields it is waiting for.
type Preview struct {
	Caveats []string `json:"caveats"`

	Eligibility        *EligibilityResult `json:"eligibility,omitempty"`
	EligibilityMissing []Field            `json:"eligibilityMissing,omitempty"`

	Projection        []ProjectionColumn `json:"projection,omitempty"`
	ProjectionMissing []Field            `json:"projectionMissing,omitempty"`

	TSP            TSPSummary            `json:"tsp"`
	SocialSecurity SocialSecuritySummary `json:"socialSecurity"`
}

// TSPSummary totals the per-fund balances and allocations.
type TSPSummary struct {
	FundBalances    map[Fund]decimal.Decimal `json:"fundBalances,omitempty"`
	FundTotal       decimal.NullDecimal      `json:"fundTotal"`
	ReportedTotal   decimal.NullDecimal      `json:"reportedTotal"`
	Allocations     map[Fund]decimal.Decimal `json:"allocations,omitempty"`
	AllocationTotal decimal.NullDecimal      `json:"allocationTotal"`
	// AllocationComplete is true when the allocations sum to exactly 100%.
	AllocationComplete bool `json:"allocationComplete"`
}

// SocialSecurityEstimate is one claiming age's benefit.
type SocialSecurityEstimate struct {
	ClaimingAge string          `json:"claimingAge"`
	Monthly     decimal.Decimal `json:"monthly"`
	Annual      decimal.Decimal `json:"annual"`
}

// SocialSecuritySummary holds the entered estimates; Missing names the ones
// left blank.
type SocialSecuritySummary struct {
	Estimates []SocialSecurityEstimate `json:"estimates,omitempty"`
	Missing   []Field                  `json:"missing,omitempty"`
}
