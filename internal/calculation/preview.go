package calculation

import (
	"fmt"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/shopspring/decimal"
)

// Caveats shown when a scenario falls outside the modeled rules.
const (
	CaveatCSRS = "CSRS rules are not modeled; eligibility and annuity projection are not computed."
	CaveatCOLA = "COLA is not applied in the projection comparison."
)

// CaveatSpecialProvision returns the caveat for an unmodeled special provision.
func CaveatSpecialProvision(code string) string {
	return fmt.Sprintf("Special provision (%s) rules are not modeled; eligibility and annuity projection are not computed.", code)
}

// EligibilityMissing lists the dates eligibility is waiting for.
func EligibilityMissing(s domain.Scenario) []domain.Field {
	var missing []domain.Field
	if !s.BirthDate.Valid {
		missing = append(missing, domain.FieldDateOfBirth)
	}
	if !s.SCD.Valid {
		missing = append(missing, domain.FieldRetirementSCD)
	}
	if !s.GoalRetirementDate.Valid {
		missing = append(missing, domain.FieldGoalRetirementDate)
	}
	return missing
}

// BuildPreview computes every preview section the inputs allow.
func BuildPreview(inputs domain.ScenarioInputs) domain.Preview {
	return NewCalculationEngine().Preview(inputs)
}

func outOfDomainCaveats(s domain.Scenario) []string {
	var caveats []string
	if s.RetirementSystem != "FERS" {
		caveats = append(caveats, CaveatCSRS)
	}
	if s.SpecialProvision != domain.DefaultProvision {
		caveats = append(caveats, CaveatSpecialProvision(s.SpecialProvision))
	}
	return caveats
}

func summarizeTSP(s domain.Scenario) domain.TSPSummary {
	sum := domain.TSPSummary{ReportedTotal: s.TSPTotalBalance}

	for _, f := range domain.Funds {
		if b := s.FundBalances[f]; b.Valid {
			if sum.FundBalances == nil {
				sum.FundBalances = map[domain.Fund]decimal.Decimal{}
			}
			sum.FundBalances[f] = b.Decimal
			sum.FundTotal = addNull(sum.FundTotal, b.Decimal)
		}
		if a := s.FundAllocations[f]; a.Valid {
			if sum.Allocations == nil {
				sum.Allocations = map[domain.Fund]decimal.Decimal{}
			}
			sum.Allocations[f] = a.Decimal
			sum.AllocationTotal = addNull(sum.AllocationTotal, a.Decimal)
		}
	}
	sum.AllocationComplete = sum.AllocationTotal.Valid && sum.AllocationTotal.Decimal.Equal(decimalHundred)
	return sum
}

func summarizeSocialSecurity(s domain.Scenario) domain.SocialSecuritySummary {
	var sum domain.SocialSecuritySummary
	for _, est := range []struct {
		age   string
		field domain.Field
		value decimal.NullDecimal
	}{
		{"62", domain.FieldSSBenefit62, s.SSBenefit62},
		{"FRA", domain.FieldSSBenefitFRA, s.SSBenefitFRA},
		{"70", domain.FieldSSBenefit70, s.SSBenefit70},
	} {
		if !est.value.Valid {
			sum.Missing = append(sum.Missing, est.field)
			continue
		}
		sum.Estimates = append(sum.Estimates, domain.SocialSecurityEstimate{
			ClaimingAge: est.age,
			Monthly:     est.value.Decimal,
			Annual:      est.value.Decimal.Mul(decimalTwelve),
		})
	}
	return sum
}

func addNull(acc decimal.NullDecimal, v decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: acc.Decimal.Add(v), Valid: true}
}
