package importer

import (
	"strings"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

// lookupMode selects which Resolver query a lookup runs.
type lookupMode int

const (
	modeExact lookupMode = iota
	modePartial
	modeFund
)

type lookup struct {
	mode    lookupMode
	term    string
	section Section
}

func exact(term string) lookup   { return lookup{mode: modeExact, term: term} }
func partial(term string) lookup { return lookup{mode: modePartial, term: term} }
func fund(f domain.Fund, s Section) lookup {
	return lookup{mode: modeFund, term: string(f), section: s}
}

// fieldRule maps one field to the labels that locate it and the normalizer
// that converts its cell. Lookups are tried in order.
type fieldRule struct {
	field     domain.Field
	lookups   []lookup
	normalize func(any) string
}

func selectOf(allowed []string, fallback string) func(any) string {
	return func(v any) string { return MapSelect(v, allowed, fallback) }
}

// mapSpecialProvision also understands the spelled-out provision names.
func mapSpecialProvision(v any) string {
	key := NormalizeLabel(v)
	switch {
	case strings.Contains(key, "law enforcement"):
		return "LEO"
	case strings.Contains(key, "firefighter"), strings.Contains(key, "fire fighter"):
		return "FF"
	case strings.Contains(key, "air traffic"):
		return "ATC"
	}
	return MapSelect(v, domain.SpecialProvisions, domain.DefaultProvision)
}

func buildFieldRules() []fieldRule {
	rules := []fieldRule{
		{domain.FieldRetirementSystem, []lookup{exact("retirement system"), partial("retirement plan")},
			selectOf(domain.RetirementSystems, domain.DefaultSystem)},
		{domain.FieldSpecialProvision, []lookup{exact("special provision"), partial("special provision")},
			mapSpecialProvision},
		{domain.FieldSurvivorBenefitElection, []lookup{exact("survivor benefit"), partial("survivor")},
			MapSurvivorElection},

		{domain.FieldDateOfBirth, []lookup{exact("date of birth"), exact("dob"), partial("birth")}, ParseDate},
		{domain.FieldRetirementSCD, []lookup{exact("retirement scd"), partial("service computation"), partial("scd")}, ParseDate},
		{domain.FieldGoalRetirementDate, []lookup{exact("goal retirement date"), partial("target retirement"), partial("goal retirement")}, ParseDate},

		{domain.FieldCurrentSalary, []lookup{exact("current salary"), partial("base salary"), partial("annual salary")}, ParseMoney},
		{domain.FieldHigh3Salary, []lookup{exact("high-3 salary"), exact("high 3 salary"), partial("high-3"), partial("high 3"), partial("high three")}, ParseMoney},
		{domain.FieldSickLeaveHours, []lookup{exact("sick leave"), partial("sick leave")}, ParseSickLeave},
		{domain.FieldAnnualLeaveHours, []lookup{exact("annual leave"), partial("annual leave")}, ParseSickLeave},

		{domain.FieldFEHBPremium, []lookup{partial("fehb")}, ParseMoney},
		{domain.FieldFEGLIPremium, []lookup{partial("fegli")}, ParseMoney},
		{domain.FieldFEDVIPPremium, []lookup{partial("fedvip"), partial("dental")}, ParseMoney},
		{domain.FieldFederalTaxWithholding, []lookup{partial("federal tax"), partial("federal income tax")}, ParseMoney},
		{domain.FieldStateTaxWithholding, []lookup{partial("state tax"), partial("state income tax")}, ParseMoney},
		{domain.FieldTSPContribution, []lookup{partial("tsp contribution")}, ParseMoney},

		{domain.FieldTSPTotalBalance, []lookup{exact("total tsp balance"), partial("total balance")}, ParseMoney},
		{domain.FieldTSPTraditionalBalance, []lookup{partial("traditional")}, ParseMoney},
		{domain.FieldTSPRothBalance, []lookup{partial("roth")}, ParseMoney},

		{domain.FieldSSBenefit62, []lookup{exact("social security at 62"), partial("ss at 62"), partial("age 62")}, ParseMoney},
		{domain.FieldSSBenefitFRA, []lookup{exact("social security at fra"), partial("full retirement age"), partial("at fra")}, ParseMoney},
		{domain.FieldSSBenefit70, []lookup{exact("social security at 70"), partial("ss at 70"), partial("age 70")}, ParseMoney},

		{domain.FieldInflationRate, []lookup{partial("inflation")}, ParseAllocPct},
		{domain.FieldTSPGrowthRate, []lookup{partial("tsp growth"), partial("rate of return")}, ParseAllocPct},
		{domain.FieldCOLARate, []lookup{partial("cola")}, ParseAllocPct},
	}

	for _, f := range domain.Funds {
		rules = append(rules,
			fieldRule{domain.BalanceField(f), []lookup{fund(f, SectionBalance)}, ParseMoney},
			fieldRule{domain.AllocationField(f), []lookup{fund(f, SectionAllocation)}, ParseAllocPct},
		)
	}
	return rules
}

var fieldRules = buildFieldRules()
