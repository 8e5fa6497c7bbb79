package domain

import (
	"time"

	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ProjectionColumns is the number of columns in a projection table: the goal
// date plus eleven annual delays.
const ProjectionColumns = 12

// RetirementType classifies FERS retirement eligibility.
type RetirementType string

const (
	RetirementRegular     RetirementType = "REGULAR"
	RetirementMRA10       RetirementType = "MRA+10"
	RetirementNotEligible RetirementType = "NOT_ELIGIBLE"
)

// StatusTier is the severity used when displaying an eligibility status.
type StatusTier string

const (
	TierFavorable   StatusTier = "favorable"
	TierConditional StatusTier = "conditional"
	TierUnmet       StatusTier = "unmet"
)

// EligibilityResult is the derived eligibility for one retirement date.
type EligibilityResult struct {
	Type    RetirementType       `json:"type"`
	Status  string               `json:"status"`
	Tier    StatusTier           `json:"tier"`
	Caveat  string               `json:"caveat,omitempty"`
	Age     dateutil.YearsMonths `json:"age"`
	Service dateutil.YearsMonths `json:"service"`
	MRA     dateutil.YearsMonths `json:"mra"`
}

// ProjectionColumn holds one retirement date's figures.
type ProjectionColumn struct {
	Index          int                  `json:"index"`
	Label          string               `json:"label"`
	RetirementDate time.Time            `json:"retirementDate"`
	Age            dateutil.YearsMonths `json:"age"`
	Service        dateutil.YearsMonths `json:"service"`
	SickLeave      dateutil.YearsMonths `json:"sickLeave"`
	TotalService   decimal.Decimal      `json:"totalServiceYears"`

	High3       decimal.Decimal `json:"high3"`
	High3Change decimal.Decimal `json:"high3Change"`
	Multiplier  decimal.Decimal `json:"multiplier"`

	GrossAnnual  decimal.Decimal `json:"grossAnnual"`
	GrossMonthly decimal.Decimal `json:"grossMonthly"`
	// Net figures are the retiree's annuity after the survivor reduction.
	NetAnnual  decimal.Decimal `json:"netAnnual"`
	NetMonthly decimal.Decimal `json:"netMonthly"`

	SurvivorAnnual      decimal.Decimal `json:"survivorAnnual"`
	SurvivorMonthly     decimal.Decimal `json:"survivorMonthly"`
	SurvivorCostAnnual  decimal.Decimal `json:"survivorCostAnnual"`
	SurvivorCostMonthly decimal.Decimal `json:"survivorCostMonthly"`
}
