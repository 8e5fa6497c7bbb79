package calculation

import (
	"testing"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endToEndInputs() domain.ScenarioInputs {
	return domain.ScenarioInputs{
		domain.FieldDateOfBirth:             "1965-03-01",
		domain.FieldRetirementSCD:           "1990-06-01",
		domain.FieldGoalRetirementDate:      "2027-06-01",
		domain.FieldHigh3Salary:             "100000",
		domain.FieldInflationRate:           "2.5",
		domain.FieldSurvivorBenefitElection: "50",
		domain.FieldSickLeaveHours:          "1200",
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msg ...string) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s %v", expected, actual, msg)
}

func TestComputeProjectionTable_EndToEnd(t *testing.T) {
	columns, err := ComputeProjectionTable(endToEndInputs())
	require.NoError(t, err)
	require.Len(t, columns, domain.ProjectionColumns)

	c := columns[0]
	assert.Equal(t, "Proposed", c.Label)
	assert.Equal(t, "2027-06-01", dateutil.FormatISO(c.RetirementDate))
	assert.Equal(t, dateutil.YearsMonths{Years: 62, Months: 3}, c.Age)
	assert.Equal(t, dateutil.YearsMonths{Years: 37}, c.Service)
	assert.Equal(t, dateutil.YearsMonths{Months: 6}, c.SickLeave)
	assertDecimal(t, "37.575", c.TotalService)
	assertDecimal(t, "100000", c.High3)
	assertDecimal(t, "0", c.High3Change)
	assertDecimal(t, "0.011", c.Multiplier)
	assertDecimal(t, "41333", c.GrossAnnual)
	assertDecimal(t, "3444", c.GrossMonthly)
	assertDecimal(t, "37200", c.NetAnnual)
	assertDecimal(t, "3100", c.NetMonthly)
	assertDecimal(t, "20667", c.SurvivorAnnual)
	assertDecimal(t, "1722", c.SurvivorMonthly)
	assertDecimal(t, "4133", c.SurvivorCostAnnual)
	assertDecimal(t, "344", c.SurvivorCostMonthly)
}

func TestComputeProjectionTable_Columns(t *testing.T) {
	columns, err := ComputeProjectionTable(endToEndInputs())
	require.NoError(t, err)

	for n := 1; n < len(columns); n++ {
		c := columns[n]
		assert.Equal(t, n, c.Index)
		assert.Equal(t, dateutil.FormatISO(dateutil.AddYears(columns[0].RetirementDate, n)), dateutil.FormatISO(c.RetirementDate))
		assert.Equal(t, 62+n, c.Age.Years)
		assert.Equal(t, "Age "+decimal.NewFromInt(int64(62+n)).String(), c.Label)
		assert.Equal(t, dateutil.YearsMonths{Months: 6}, c.SickLeave, "sick leave credit is constant")
		assert.True(t, c.High3.GreaterThan(columns[n-1].High3), "high-3 must grow in column %d", n)
		assertDecimal(t, c.High3.Sub(columns[n-1].High3).String(), c.High3Change)
	}

	// compounded from the unrounded base
	assertDecimal(t, "102500", columns[1].High3)
	assertDecimal(t, "105063", columns[2].High3)
	assertDecimal(t, "43493", columns[1].GrossAnnual)
}

func TestComputeProjectionTable_SurvivorCost(t *testing.T) {
	for _, election := range []string{"0", "25", "50"} {
		t.Run(election, func(t *testing.T) {
			inputs := endToEndInputs().Merge(domain.ScenarioInputs{domain.FieldSurvivorBenefitElection: election})
			columns, err := ComputeProjectionTable(inputs)
			require.NoError(t, err)

			factor := map[string]string{"0": "1", "25": "0.95", "50": "0.9"}[election]
			for _, c := range columns {
				assert.True(t, c.SurvivorCostAnnual.Equal(c.GrossAnnual.Sub(c.NetAnnual)))
				assert.True(t, c.SurvivorCostMonthly.Equal(c.GrossMonthly.Sub(c.NetMonthly)))
				assertDecimal(t, c.GrossAnnual.Mul(decimal.RequireFromString(factor)).Round(0).String(), c.NetAnnual)
				assertDecimal(t, c.GrossAnnual.Mul(decimal.RequireFromString(election)).Div(decimal.NewFromInt(100)).Round(0).String(), c.SurvivorAnnual)
			}
		})
	}
}

func TestComputeProjectionTable_HandEditedElection(t *testing.T) {
	for _, election := range []string{"50.0", "0.5"} {
		t.Run(election, func(t *testing.T) {
			inputs := endToEndInputs().Merge(domain.ScenarioInputs{domain.FieldSurvivorBenefitElection: election})
			columns, err := ComputeProjectionTable(inputs)
			require.NoError(t, err)
			assertDecimal(t, "37200", columns[0].NetAnnual)
			assertDecimal(t, "20667", columns[0].SurvivorAnnual)
		})
	}
}

func TestComputeProjectionTable_MonthlyCostIsDifferenceOfRoundedMonthlies(t *testing.T) {
	// gross 40003 / 12 = 3333.58 -> 3334; net 36003 / 12 = 3000.25 -> 3000
	inputs := domain.ScenarioInputs{
		domain.FieldDateOfBirth:             "1965-03-01",
		domain.FieldRetirementSCD:           "1997-06-01",
		domain.FieldGoalRetirementDate:      "2027-06-01",
		domain.FieldHigh3Salary:             "121221",
		domain.FieldSurvivorBenefitElection: "50",
	}
	columns, err := ComputeProjectionTable(inputs)
	require.NoError(t, err)

	c := columns[0]
	assertDecimal(t, "40003", c.GrossAnnual)
	assertDecimal(t, "36003", c.NetAnnual)
	assertDecimal(t, "4000", c.SurvivorCostAnnual)
	assertDecimal(t, "334", c.SurvivorCostMonthly)
	assert.False(t, c.SurvivorCostAnnual.Div(decimal.NewFromInt(12)).Round(0).Equal(c.SurvivorCostMonthly))
}

func TestComputeProjectionTable_Multiplier(t *testing.T) {
	tests := []struct {
		name               string
		scd                string
		sickLeaveHours     string
		expectedMultiplier string
	}{
		{"20 years of regular service", "2007-06-01", "", "0.011"},
		{"19 years 11 months of regular service", "2007-07-01", "", "0.01"},
		{"Sick leave does not reach 20 years", "2007-07-01", "2087", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := domain.ScenarioInputs{
				domain.FieldDateOfBirth:        "1965-03-01",
				domain.FieldRetirementSCD:      tt.scd,
				domain.FieldGoalRetirementDate: "2027-06-01",
				domain.FieldCurrentSalary:      "90000",
				domain.FieldSickLeaveHours:     tt.sickLeaveHours,
			}
			columns, err := ComputeProjectionTable(inputs)
			require.NoError(t, err)
			assertDecimal(t, tt.expectedMultiplier, columns[0].Multiplier)
		})
	}
}

func TestComputeProjectionTable_UnderAge62UsesStandardMultiplier(t *testing.T) {
	inputs := endToEndInputs().Merge(domain.ScenarioInputs{domain.FieldGoalRetirementDate: "2025-06-01"})
	columns, err := ComputeProjectionTable(inputs)
	require.NoError(t, err)

	assertDecimal(t, "0.01", columns[0].Multiplier, "age 60 at the goal date")
	assertDecimal(t, "0.01", columns[1].Multiplier, "age 61")
	assertDecimal(t, "0.011", columns[2].Multiplier, "age 62")
}

func TestComputeProjectionTable_SalaryFallbackAndNoInflation(t *testing.T) {
	inputs := endToEndInputs()
	delete(inputs, domain.FieldHigh3Salary)
	delete(inputs, domain.FieldInflationRate)
	inputs[domain.FieldCurrentSalary] = "95000"

	columns, err := ComputeProjectionTable(inputs)
	require.NoError(t, err)
	for _, c := range columns {
		assertDecimal(t, "95000", c.High3)
		assertDecimal(t, "0", c.High3Change)
	}
}

func TestComputeProjectionTable_MissingInputs(t *testing.T) {
	for _, field := range []domain.Field{
		domain.FieldDateOfBirth,
		domain.FieldRetirementSCD,
		domain.FieldGoalRetirementDate,
		domain.FieldHigh3Salary,
	} {
		t.Run(string(field), func(t *testing.T) {
			inputs := endToEndInputs()
			delete(inputs, field)

			columns, err := ComputeProjectionTable(inputs)
			assert.Nil(t, columns)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindMissingInput))
		})
	}

	t.Run("unparseable date", func(t *testing.T) {
		inputs := endToEndInputs().Merge(domain.ScenarioInputs{domain.FieldDateOfBirth: "March 1965"})
		_, err := ComputeProjectionTable(inputs)
		assert.True(t, domain.IsKind(err, domain.KindMissingInput))
	})
}

func TestComputeProjectionTable_GoalBeforeSCD(t *testing.T) {
	inputs := endToEndInputs().Merge(domain.ScenarioInputs{domain.FieldRetirementSCD: "2030-01-01"})

	_, err := ComputeProjectionTable(inputs)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
	assert.Contains(t, err.Error(), "cannot be before SCD")
}

func TestSickLeaveYears(t *testing.T) {
	tests := []struct {
		hours    string
		expected string
	}{
		{"1200", "0.575"},
		{"2087", "1"},
		{"0", "0"},
		{"-5", "0"},
		{"", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.hours, func(t *testing.T) {
			var hours decimal.NullDecimal
			if tt.hours != "" {
				hours = decimal.NullDecimal{Decimal: decimal.RequireFromString(tt.hours), Valid: true}
			}
			assertDecimal(t, tt.expected, SickLeaveYears(hours))
		})
	}
}
