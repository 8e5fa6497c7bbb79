package domain

import (
	"sort"
	"strings"
)

// Field names a single ScenarioInputs entry.
type Field string

// ValueType describes how a field's stored string is interpreted.
type ValueType int

const (
	TypeText ValueType = iota
	TypeMoney
	TypePercent
	TypeDate
	TypeHours
	TypeSelect
)

// Identity and classification
const (
	FieldRetirementSystem        Field = "retirement_system"
	FieldSpecialProvision        Field = "special_provision"
	FieldSurvivorBenefitElection Field = "survivor_benefit_election"
)

// Dates
const (
	FieldDateOfBirth        Field = "date_of_birth"
	FieldRetirementSCD      Field = "retirement_scd"
	FieldGoalRetirementDate Field = "goal_retirement_date"
)

// Salary and leave
const (
	FieldCurrentSalary    Field = "current_salary"
	FieldHigh3Salary      Field = "high_3_salary"
	FieldSickLeaveHours   Field = "sick_leave_hours"
	FieldAnnualLeaveHours Field = "annual_leave_hours"
)

// Per pay period deductions
const (
	FieldFEHBPremium           Field = "fehb_premium"
	FieldFEGLIPremium          Field = "fegli_premium"
	FieldFEDVIPPremium         Field = "fedvip_premium"
	FieldFederalTaxWithholding Field = "federal_tax_withholding"
	FieldStateTaxWithholding   Field = "state_tax_withholding"
	FieldTSPContribution       Field = "tsp_contribution"
)

// TSP totals
const (
	FieldTSPTotalBalance       Field = "tsp_total_balance"
	FieldTSPTraditionalBalance Field = "tsp_traditional_balance"
	FieldTSPRothBalance        Field = "tsp_roth_balance"
)

// Social Security monthly estimates
const (
	FieldSSBenefit62  Field = "ss_benefit_62"
	FieldSSBenefitFRA Field = "ss_benefit_fra"
	FieldSSBenefit70  Field = "ss_benefit_70"
)

// Assumption rates, stored as whole percentages
const (
	FieldInflationRate Field = "inflation_rate"
	FieldTSPGrowthRate Field = "tsp_growth_rate"
	FieldCOLARate      Field = "cola_rate"
)

// Allowed values for the select fields.
var (
	RetirementSystems  = []string{"FERS", "CSRS"}
	SpecialProvisions  = []string{"none", "LEO", "FF", "ATC"}
	SurvivorElections  = []string{"0", "25", "50"}
	DefaultSystem      = "FERS"
	DefaultProvision   = "none"
	DefaultSurvivorPct = "0"
)

// Fund is a TSP investment fund letter.
type Fund string

const (
	FundG Fund = "G"
	FundF Fund = "F"
	FundC Fund = "C"
	FundS Fund = "S"
	FundI Fund = "I"
	FundL Fund = "L"
)

// Funds lists the TSP funds in display order.
var Funds = []Fund{FundG, FundF, FundC, FundS, FundI, FundL}

// BalanceField returns the per-fund balance field for f.
func BalanceField(f Fund) Field {
	return Field("tsp_" + lowerFund(f) + "_balance")
}

// AllocationField returns the per-fund allocation field for f.
func AllocationField(f Fund) Field {
	return Field("tsp_" + lowerFund(f) + "_alloc")
}

func lowerFund(f Fund) string {
	return strings.ToLower(string(f))
}

// FieldSpec describes one catalogue entry.
type FieldSpec struct {
	Field Field
	Type  ValueType
	Label string
}

var catalogue = buildCatalogue()

func buildCatalogue() map[Field]FieldSpec {
	specs := []FieldSpec{
		{FieldRetirementSystem, TypeSelect, "Retirement system"},
		{FieldSpecialProvision, TypeSelect, "Special provision"},
		{FieldSurvivorBenefitElection, TypeSelect, "Survivor benefit election (%)"},
		{FieldDateOfBirth, TypeDate, "Date of birth"},
		{FieldRetirementSCD, TypeDate, "Retirement SCD"},
		{FieldGoalRetirementDate, TypeDate, "Goal retirement date"},
		{FieldCurrentSalary, TypeMoney, "Current salary"},
		{FieldHigh3Salary, TypeMoney, "High-3 salary"},
		{FieldSickLeaveHours, TypeHours, "Sick leave (hours)"},
		{FieldAnnualLeaveHours, TypeHours, "Annual leave (hours)"},
		{FieldFEHBPremium, TypeMoney, "FEHB premium"},
		{FieldFEGLIPremium, TypeMoney, "FEGLI premium"},
		{FieldFEDVIPPremium, TypeMoney, "FEDVIP premium"},
		{FieldFederalTaxWithholding, TypeMoney, "Federal tax withholding"},
		{FieldStateTaxWithholding, TypeMoney, "State tax withholding"},
		{FieldTSPContribution, TypeMoney, "TSP contribution"},
		{FieldTSPTotalBalance, TypeMoney, "TSP total balance"},
		{FieldTSPTraditionalBalance, TypeMoney, "TSP traditional balance"},
		{FieldTSPRothBalance, TypeMoney, "TSP Roth balance"},
		{FieldSSBenefit62, TypeMoney, "Social Security at 62"},
		{FieldSSBenefitFRA, TypeMoney, "Social Security at FRA"},
		{FieldSSBenefit70, TypeMoney, "Social Security at 70"},
		{FieldInflationRate, TypePercent, "Inflation rate (%)"},
		{FieldTSPGrowthRate, TypePercent, "TSP growth rate (%)"},
		{FieldCOLARate, TypePercent, "COLA rate (%)"},
	}
	for _, f := range Funds {
		specs = append(specs,
			FieldSpec{BalanceField(f), TypeMoney, string(f) + " fund balance"},
			FieldSpec{AllocationField(f), TypePercent, string(f) + " fund allocation (%)"},
		)
	}

	m := make(map[Field]FieldSpec, len(specs))
	for _, s := range specs {
		m[s.Field] = s
	}
	return m
}

// LookupField returns the catalogue entry for f.
func LookupField(f Field) (FieldSpec, bool) {
	s, ok := catalogue[f]
	return s, ok
}

// AllFields returns every known field, sorted by name.
func AllFields() []Field {
	fields := make([]Field, 0, len(catalogue))
	for f := range catalogue {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// ScenarioInputs is the flat field → string record exchanged with storage and
// produced by the importer. An absent key and an empty string both mean
// "not entered".
type ScenarioInputs map[Field]string

// Get returns the stored value for f, or "" when absent.
func (in ScenarioInputs) Get(f Field) string {
	if in == nil {
		return ""
	}
	return in[f]
}

// Has reports whether f holds a non-empty value.
func (in ScenarioInputs) Has(f Field) bool {
	return in.Get(f) != ""
}

// Clone returns an independent copy.
func (in ScenarioInputs) Clone() ScenarioInputs {
	out := make(ScenarioInputs, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Merge returns a copy of in overlaid with the non-empty values of partial.
// Empty values in partial never blank out an existing entry.
func (in ScenarioInputs) Merge(partial ScenarioInputs) ScenarioInputs {
	out := in.Clone()
	for k, v := range partial {
		if v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Keys returns the populated fields, sorted.
func (in ScenarioInputs) Keys() []Field {
	keys := make([]Field, 0, len(in))
	for k, v := range in {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
