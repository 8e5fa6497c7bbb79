package calculation

import (
	"time"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
)

// MRA10Caveat accompanies every MRA+10 result.
const MRA10Caveat = "Annuity is reduced 5% for each year under age 62 unless commencement is postponed."

// ComputeEligibility classifies FERS regular retirement eligibility at
// retireDate. Rules are checked in priority order and the first match wins.
// Callers must exclude CSRS and special provisions themselves.
func ComputeEligibility(dob, retireDate, scd time.Time) domain.EligibilityResult {
	res := domain.EligibilityResult{
		Age:     dateutil.Diff(dob, retireDate),
		Service: dateutil.Diff(scd, retireDate),
		MRA:     dateutil.MinimumRetirementAge(dob),
	}
	age, service := res.Age, res.Service

	switch {
	case age.AtLeastYears(62) && service.AtLeastYears(5):
		res.Type, res.Tier = domain.RetirementRegular, domain.TierFavorable
		res.Status = "Eligible for an immediate unreduced annuity (age 62 with at least 5 years of service)"
	case age.AtLeastYears(60) && service.AtLeastYears(20):
		res.Type, res.Tier = domain.RetirementRegular, domain.TierFavorable
		res.Status = "Eligible for an immediate unreduced annuity (age 60 with at least 20 years of service)"
	case age.AtLeast(res.MRA) && service.AtLeastYears(30):
		res.Type, res.Tier = domain.RetirementRegular, domain.TierFavorable
		res.Status = "Eligible for an immediate unreduced annuity (MRA " + res.MRA.String() + " with at least 30 years of service)"
	case age.AtLeast(res.MRA) && service.AtLeastYears(10):
		res.Type, res.Tier = domain.RetirementMRA10, domain.TierConditional
		res.Status = "Eligible for an MRA+10 annuity (MRA " + res.MRA.String() + " with at least 10 years of service)"
		res.Caveat = MRA10Caveat
	default:
		res.Type, res.Tier = domain.RetirementNotEligible, domain.TierUnmet
		res.Status = "Not yet eligible for an immediate annuity"
	}
	return res
}
