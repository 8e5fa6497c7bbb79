package output

import (
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/rpgo-intake/internal/calculation"
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestPreview() *domain.Preview {
	p := calculation.BuildPreview(domain.ScenarioInputs{
		domain.FieldDateOfBirth:             "1965-03-01",
		domain.FieldRetirementSCD:           "1990-06-01",
		domain.FieldGoalRetirementDate:      "2027-06-01",
		domain.FieldHigh3Salary:             "100000",
		domain.FieldInflationRate:           "2.5",
		domain.FieldSurvivorBenefitElection: "50",
		domain.FieldSickLeaveHours:          "1200",
		domain.BalanceField(domain.FundG):   "120000",
		domain.FieldSSBenefit62:             "1850",
	})
	return &p
}

func buildEmptyPreview() *domain.Preview {
	p := calculation.BuildPreview(domain.ScenarioInputs{})
	return &p
}

func TestFormatterFunc(t *testing.T) {
	called := false
	var received *domain.Preview

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(p *domain.Preview) ([]byte, error) {
			called = true
			received = p
			return []byte("test output"), nil
		},
	}

	preview := buildTestPreview()
	output, err := formatter.Format(preview)

	assert.NoError(t, err, "Should not error")
	assert.True(t, called, "Should call the function")
	assert.Same(t, preview, received, "Should pass the preview")
	assert.Equal(t, []byte("test output"), output, "Should return the function output")
	assert.Equal(t, "test-formatter", formatter.Name(), "Should return the ID")
}

func TestFormatterFunc_Error(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(p *domain.Preview) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}
	_, err := formatter.Format(buildTestPreview())
	assert.EqualError(t, err, "formatter error")
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "table", "csv", "json"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}

	assert.Equal(t, "console", GetFormatterByName("summary").Name(), "aliases resolve")
	assert.Equal(t, "json", GetFormatterByName(" JSON ").Name(), "names are case-insensitive")
	assert.Nil(t, GetFormatterByName("non-existent"), "Should return nil formatter for non-existent name")
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json", "table"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "text")
}

func TestTableFormatter_Format(t *testing.T) {
	output, err := TableFormatter{}.Format(buildTestPreview())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(output), "\n"), "\n")
	require.Len(t, lines, 2+len(projectionRows))
	assert.Contains(t, lines[0], "Proposed")
	assert.Contains(t, lines[0], "Age 73")
	assert.Contains(t, string(output), "$41333")
	assert.Contains(t, string(output), "$37200")
	assert.Contains(t, string(output), "1.10%")
	assert.Contains(t, string(output), "62y 3m")
}

func TestTableFormatter_Placeholder(t *testing.T) {
	output, err := TableFormatter{}.Format(buildEmptyPreview())
	require.NoError(t, err)
	assert.Contains(t, string(output), "not enough information (needs date_of_birth, retirement_scd, goal_retirement_date, high_3_salary)")

	csrs := calculation.BuildPreview(domain.ScenarioInputs{domain.FieldRetirementSystem: "CSRS"})
	output, err = TableFormatter{}.Format(&csrs)
	require.NoError(t, err)
	assert.Contains(t, string(output), "not computed")
	assert.Contains(t, string(output), calculation.CaveatCSRS)
}

func TestCSVFormatter_Format(t *testing.T) {
	output, err := CSVFormatter{}.Format(buildTestPreview())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(output))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+domain.ProjectionColumns)
	assert.Equal(t, "Index", records[0][0])
	assert.Equal(t, []string{"0", "Proposed", "2027-06-01", "62", "3", "37", "0", "0", "6", "37.575", "100000", "0", "0.011",
		"41333", "3444", "37200", "3100", "20667", "1722", "4133", "344"}, records[1])
	assert.Equal(t, "Age 63", records[2][1])
}

func TestCSVFormatter_Empty(t *testing.T) {
	output, err := CSVFormatter{}.Format(buildEmptyPreview())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(output), "\n"), "header only")
}

func TestJSONFormatter_Format(t *testing.T) {
	output, err := JSONFormatter{}.Format(buildTestPreview())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(output, &decoded))
	assert.Contains(t, decoded, "eligibility")
	assert.Contains(t, decoded, "projection")
	assert.Len(t, decoded["projection"], domain.ProjectionColumns)
	assert.Contains(t, string(output), `"grossAnnual": "41333"`)
	assert.Contains(t, string(output), `"type": "REGULAR"`)
}

func TestConsoleFormatter_Format(t *testing.T) {
	output, err := ConsoleFormatter{}.Format(buildTestPreview())
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "FERS RETIREMENT SCENARIO PREVIEW")
	assert.Contains(t, content, "Type:    REGULAR (favorable)")
	assert.Contains(t, content, "MRA:     56y 2m")
	assert.Contains(t, content, "Proposed")
	assert.Contains(t, content, "G Fund: $120000.00")
	assert.Contains(t, content, "At 62:  $1850.00/month, $22200.00/year")
}

func TestConsoleFormatter_Placeholders(t *testing.T) {
	output, err := ConsoleFormatter{}.Format(buildEmptyPreview())
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "Not enough information (needs date_of_birth, retirement_scd, goal_retirement_date)")
	assert.Contains(t, content, "Not enough information (needs date_of_birth, retirement_scd, goal_retirement_date, high_3_salary)")
	assert.NotContains(t, content, "NOTES:")
	assert.NotContains(t, content, "$0")
}
