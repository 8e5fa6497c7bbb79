package domain

import (
	"strings"
	"time"

	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// OptionalDate is a calendar date that may be absent.
type OptionalDate struct {
	Time  time.Time
	Valid bool
}

// Scenario is the typed view of ScenarioInputs used by the calculators.
// Every value carries its own presence flag so "not entered" never reads
// as zero.
type Scenario struct {
	RetirementSystem string
	SpecialProvision string
	SurvivorElection int

	BirthDate          OptionalDate
	SCD                OptionalDate
	GoalRetirementDate OptionalDate

	CurrentSalary    decimal.NullDecimal
	High3Salary      decimal.NullDecimal
	SickLeaveHours   decimal.NullDecimal
	AnnualLeaveHours decimal.NullDecimal

	FEHBPremium           decimal.NullDecimal
	FEGLIPremium          decimal.NullDecimal
	FEDVIPPremium         decimal.NullDecimal
	FederalTaxWithholding decimal.NullDecimal
	StateTaxWithholding   decimal.NullDecimal
	TSPContribution       decimal.NullDecimal

	TSPTotalBalance       decimal.NullDecimal
	TSPTraditionalBalance decimal.NullDecimal
	TSPRothBalance        decimal.NullDecimal
	FundBalances          map[Fund]decimal.NullDecimal
	FundAllocations       map[Fund]decimal.NullDecimal

	SSBenefit62  decimal.NullDecimal
	SSBenefitFRA decimal.NullDecimal
	SSBenefit70  decimal.NullDecimal

	InflationRate decimal.NullDecimal
	TSPGrowthRate decimal.NullDecimal
	COLARate      decimal.NullDecimal
}

// ParseScenario converts stored strings into a typed Scenario. Values that do
// not parse are treated as absent.
func ParseScenario(in ScenarioInputs) Scenario {
	s := Scenario{
		RetirementSystem: selectOrDefault(in.Get(FieldRetirementSystem), RetirementSystems, DefaultSystem),
		SpecialProvision: selectOrDefault(in.Get(FieldSpecialProvision), SpecialProvisions, DefaultProvision),

		BirthDate:          parseDate(in.Get(FieldDateOfBirth)),
		SCD:                parseDate(in.Get(FieldRetirementSCD)),
		GoalRetirementDate: parseDate(in.Get(FieldGoalRetirementDate)),

		CurrentSalary:    parseNumber(in.Get(FieldCurrentSalary)),
		High3Salary:      parseNumber(in.Get(FieldHigh3Salary)),
		SickLeaveHours:   parseNumber(in.Get(FieldSickLeaveHours)),
		AnnualLeaveHours: parseNumber(in.Get(FieldAnnualLeaveHours)),

		FEHBPremium:           parseNumber(in.Get(FieldFEHBPremium)),
		FEGLIPremium:          parseNumber(in.Get(FieldFEGLIPremium)),
		FEDVIPPremium:         parseNumber(in.Get(FieldFEDVIPPremium)),
		FederalTaxWithholding: parseNumber(in.Get(FieldFederalTaxWithholding)),
		StateTaxWithholding:   parseNumber(in.Get(FieldStateTaxWithholding)),
		TSPContribution:       parseNumber(in.Get(FieldTSPContribution)),

		TSPTotalBalance:       parseNumber(in.Get(FieldTSPTotalBalance)),
		TSPTraditionalBalance: parseNumber(in.Get(FieldTSPTraditionalBalance)),
		TSPRothBalance:        parseNumber(in.Get(FieldTSPRothBalance)),
		FundBalances:          make(map[Fund]decimal.NullDecimal, len(Funds)),
		FundAllocations:       make(map[Fund]decimal.NullDecimal, len(Funds)),

		SSBenefit62:  parseNumber(in.Get(FieldSSBenefit62)),
		SSBenefitFRA: parseNumber(in.Get(FieldSSBenefitFRA)),
		SSBenefit70:  parseNumber(in.Get(FieldSSBenefit70)),

		InflationRate: parseNumber(in.Get(FieldInflationRate)),
		TSPGrowthRate: parseNumber(in.Get(FieldTSPGrowthRate)),
		COLARate:      parseNumber(in.Get(FieldCOLARate)),
	}

	s.SurvivorElection = parseSurvivorElection(in.Get(FieldSurvivorBenefitElection))

	for _, f := range Funds {
		s.FundBalances[f] = parseNumber(in.Get(BalanceField(f)))
		s.FundAllocations[f] = parseNumber(in.Get(AllocationField(f)))
	}
	return s
}

// IsRegularFERS reports whether the scenario falls inside the modeled rules:
// FERS with no special provision.
func (s Scenario) IsRegularFERS() bool {
	return s.RetirementSystem == "FERS" && s.SpecialProvision == DefaultProvision
}

// Age returns the whole years and months of age at the given date.
func (s Scenario) Age(at time.Time) dateutil.YearsMonths {
	return dateutil.Diff(s.BirthDate.Time, at)
}

// YearsOfService returns creditable service from the SCD to the given date,
// excluding sick leave.
func (s Scenario) YearsOfService(at time.Time) dateutil.YearsMonths {
	return dateutil.Diff(s.SCD.Time, at)
}

// High3OrSalary returns the high-3, falling back to current salary.
func (s Scenario) High3OrSalary() decimal.NullDecimal {
	if s.High3Salary.Valid {
		return s.High3Salary
	}
	return s.CurrentSalary
}

// parseSurvivorElection reads a stored election as a percentage. Fractions
// such as 0.5 are scaled to whole percentages; anything other than 25 or 50
// is no election.
func parseSurvivorElection(v string) int {
	d := parseNumber(strings.TrimSuffix(strings.TrimSpace(v), "%"))
	if !d.Valid {
		return 0
	}
	pct := d.Decimal
	if pct.IsPositive() && pct.LessThanOrEqual(decimal.NewFromInt(1)) {
		pct = pct.Mul(decimal.NewFromInt(100))
	}
	switch {
	case pct.Equal(decimal.NewFromInt(50)):
		return 50
	case pct.Equal(decimal.NewFromInt(25)):
		return 25
	default:
		return 0
	}
}

func parseDate(v string) OptionalDate {
	t, ok := dateutil.ParseISO(v)
	return OptionalDate{Time: t, Valid: ok}
}

func parseNumber(v string) decimal.NullDecimal {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func selectOrDefault(v string, allowed []string, fallback string) string {
	v = strings.TrimSpace(v)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	return fallback
}
