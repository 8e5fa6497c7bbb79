package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// HoursPerWorkYear converts sick leave hours into creditable service.
const HoursPerWorkYear = 2087

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)

	multiplierStandard = decimal.RequireFromString("0.010")
	multiplierEnhanced = decimal.RequireFromString("0.011")
)

// ProjectionMissing lists the prerequisites the projection table lacks.
func ProjectionMissing(s domain.Scenario) []domain.Field {
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
	if !s.High3OrSalary().Valid {
		missing = append(missing, domain.FieldHigh3Salary)
	}
	return missing
}

// ComputeProjectionTable builds the twelve-column annuity projection: the goal
// retirement date followed by eleven one-year delays.
func ComputeProjectionTable(inputs domain.ScenarioInputs) ([]domain.ProjectionColumn, error) {
	return projectScenario(domain.ParseScenario(inputs))
}

func projectScenario(s domain.Scenario) ([]domain.ProjectionColumn, error) {
	if missing := ProjectionMissing(s); len(missing) > 0 {
		return nil, domain.MissingInput(missing[0])
	}
	goal := s.GoalRetirementDate.Time
	if goal.Before(s.SCD.Time) {
		return nil, &domain.Error{
			Kind:    domain.KindInvalidInput,
			Field:   domain.FieldGoalRetirementDate,
			Message: fmt.Sprintf("goal retirement date (%s) cannot be before SCD (%s)", dateutil.FormatISO(goal), dateutil.FormatISO(s.SCD.Time)),
		}
	}
	if goal.Before(s.BirthDate.Time) {
		return nil, &domain.Error{
			Kind:    domain.KindInvalidInput,
			Field:   domain.FieldGoalRetirementDate,
			Message: fmt.Sprintf("goal retirement date (%s) cannot be before date of birth (%s)", dateutil.FormatISO(goal), dateutil.FormatISO(s.BirthDate.Time)),
		}
	}

	base := s.High3OrSalary().Decimal
	growth := decimalOne
	if s.InflationRate.Valid {
		growth = decimalOne.Add(s.InflationRate.Decimal.Div(decimalHundred))
	}
	sickYears := SickLeaveYears(s.SickLeaveHours)
	sickLeave := dateutil.FromFractionalYears(sickYears)
	reduction := survivorReduction(s.SurvivorElection)
	electionPct := decimal.NewFromInt(int64(s.SurvivorElection))

	columns := make([]domain.ProjectionColumn, domain.ProjectionColumns)
	factor := decimalOne
	prevHigh3 := decimalZero
	for n := range columns {
		if n > 0 {
			factor = factor.Mul(growth)
		}
		date := dateutil.AddYears(goal, n)
		high3 := base.Mul(factor).Round(0)

		col := projectColumn(s, date, high3, sickLeave, sickYears, reduction, electionPct)
		col.Index = n
		if n == 0 {
			col.Label = "Proposed"
		} else {
			col.Label = fmt.Sprintf("Age %d", col.Age.Years)
			col.High3Change = high3.Sub(prevHigh3)
		}
		prevHigh3 = high3
		columns[n] = col
	}
	return columns, nil
}

func projectColumn(s domain.Scenario, date time.Time, high3 decimal.Decimal, sickLeave dateutil.YearsMonths,
	sickYears, reduction, electionPct decimal.Decimal) domain.ProjectionColumn {

	age := s.Age(date)
	service := s.YearsOfService(date)
	total := service.Decimal().Add(sickYears)
	multiplier := DetermineMultiplier(age, service)

	gross := high3.Mul(total).Mul(multiplier).Round(0)
	net := gross.Mul(decimalOne.Sub(reduction)).Round(0)
	survivor := gross.Mul(electionPct).Div(decimalHundred).Round(0)

	col := domain.ProjectionColumn{
		RetirementDate: date,
		Age:            age,
		Service:        service,
		SickLeave:      sickLeave,
		TotalService:   total,
		High3:          high3,
		High3Change:    decimalZero,
		Multiplier:     multiplier,
		GrossAnnual:    gross,
		GrossMonthly:   monthly(gross),
		NetAnnual:      net,
		NetMonthly:     monthly(net),
		SurvivorAnnual: survivor,
	}
	col.SurvivorMonthly = monthly(survivor)
	col.SurvivorCostAnnual = gross.Sub(net)
	// difference of the rounded monthly figures, not the annual cost / 12
	col.SurvivorCostMonthly = col.GrossMonthly.Sub(col.NetMonthly)
	return col
}

// SickLeaveYears converts unused sick leave hours into fractional years of
// service, rounded to three places. Absent hours credit nothing.
func SickLeaveYears(hours decimal.NullDecimal) decimal.Decimal {
	if !hours.Valid || !hours.Decimal.IsPositive() {
		return decimalZero
	}
	return hours.Decimal.Div(decimal.NewFromInt(HoursPerWorkYear)).Round(3)
}

// DetermineMultiplier returns 1.1% when the retiree is at least 62 with at
// least 20 years of regular service, otherwise 1.0%. Sick leave never counts
// toward the 20 years.
func DetermineMultiplier(age, regularService dateutil.YearsMonths) decimal.Decimal {
	if age.AtLeastYears(62) && regularService.AtLeastYears(20) {
		return multiplierEnhanced
	}
	return multiplierStandard
}

func survivorReduction(election int) decimal.Decimal {
	switch election {
	case 50:
		return decimal.RequireFromString("0.10")
	case 25:
		return decimal.RequireFromString("0.05")
	default:
		return decimalZero
	}
}

func monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(decimalTwelve).Round(0)
}
