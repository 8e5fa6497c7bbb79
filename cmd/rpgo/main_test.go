package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/rpgo-intake/internal/config"
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const scenarioYAML = `
retirement_system: FERS
survivor_benefit_election: 50
date_of_birth: 1965-03-01
retirement_scd: "1990-06-01"
goal_retirement_date: 2027-06-01
high_3_salary: 100000
sick_leave_hours: 1200
inflation_rate: 2.5
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		r := row
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	path := filepath.Join(t.TempDir(), "intake.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func intakeWorkbook(t *testing.T) string {
	return writeWorkbook(t, [][]any{
		{"Retirement System", "FERS"},
		{"Date of Birth", "1965-03-01"},
		{"Retirement SCD", "6/1/1990"},
		{"Survivor Benefit", "50%"},
		{"Sick Leave", "1200"},
	})
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "rpgo", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, expected := range []string{"import", "eligibility", "project", "preview", "validate", "version"} {
		assert.Contains(t, names, expected)
	}
}

func TestRootCommand_Execute(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "invalid-command")
	assert.Error(t, err)

	_, err = execute(t, "--invalid-flag")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rpgo dev (commit none, built unknown)")
}

func TestFileExists(t *testing.T) {
	path := writeScenario(t, scenarioYAML)
	assert.True(t, fileExists(path))
	assert.False(t, fileExists(filepath.Join(t.TempDir(), "non_existing_file.txt")))
}

func TestEligibilityCommand(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	out, err := execute(t, "eligibility", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Type:    REGULAR")
	assert.Contains(t, out, "Age:     62y 3m")

	out, err = execute(t, "eligibility", path, "-f", "json")
	require.NoError(t, err)
	var res domain.EligibilityResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.RetirementRegular, res.Type)
	assert.Equal(t, domain.TierFavorable, res.Tier)
}

func TestEligibilityCommand_Errors(t *testing.T) {
	t.Run("missing dates", func(t *testing.T) {
		path := writeScenario(t, "retirement_system: FERS\ndate_of_birth: 1965-03-01\n")
		_, err := execute(t, "eligibility", path)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindMissingInput))
	})

	t.Run("out of domain", func(t *testing.T) {
		path := writeScenario(t, strings.Replace(scenarioYAML, "FERS", "CSRS", 1))
		_, err := execute(t, "eligibility", path)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindOutOfDomain))
	})

	t.Run("no scenario", func(t *testing.T) {
		_, err := execute(t, "eligibility")
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := execute(t, "eligibility", writeScenario(t, scenarioYAML), "-f", "xml")
		assert.Error(t, err)
	})
}

func TestProjectCommand(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	out, err := execute(t, "project", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Proposed")
	assert.Contains(t, out, "$41333")

	out, err = execute(t, "project", path, "-f", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, domain.ProjectionColumns+1)
	assert.True(t, strings.HasPrefix(lines[0], "Index,Label,RetirementDate"))

	out, err = execute(t, "project", path, "--format", "json")
	require.NoError(t, err)
	var columns []domain.ProjectionColumn
	require.NoError(t, json.Unmarshal([]byte(out), &columns))
	assert.Len(t, columns, domain.ProjectionColumns)

	_, err = execute(t, "project", path, "-f", "console")
	assert.Error(t, err)
}

func TestProjectCommand_MissingInputs(t *testing.T) {
	path := writeScenario(t, "retirement_system: FERS\ndate_of_birth: 1965-03-01\n")
	_, err := execute(t, "project", path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMissingInput))
}

func TestPreviewCommand(t *testing.T) {
	path := writeScenario(t, scenarioYAML)

	out, err := execute(t, "preview", path)
	require.NoError(t, err)
	assert.Contains(t, out, "FERS RETIREMENT SCENARIO PREVIEW")
	assert.Contains(t, out, "ELIGIBILITY")

	out, err = execute(t, "preview", path, "-f", "json")
	require.NoError(t, err)
	var p domain.Preview
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	require.NotNil(t, p.Eligibility)
	assert.Len(t, p.Projection, domain.ProjectionColumns)

	_, err = execute(t, "preview", path, "-f", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: console, csv, json, table")
	assert.Contains(t, err.Error(), "aliases: grid, summary, text")
}

func TestPreviewCommand_Partial(t *testing.T) {
	path := writeScenario(t, "date_of_birth: 1965-03-01\n")
	out, err := execute(t, "preview", path, "-f", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "not enough information")
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", writeScenario(t, scenarioYAML))
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("is valid (8 of %d fields)", len(domain.AllFields())))

	out, err = execute(t, "validate", writeScenario(t, "survivor_benefit_election: 75\ntsp_g_alloc: 40\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "2 warning(s)")
}

func TestImportCommand_Print(t *testing.T) {
	book := intakeWorkbook(t)

	out, err := execute(t, "import", book)
	require.NoError(t, err)
	inputs, err := config.NewInputParser().Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "FERS", inputs.Get(domain.FieldRetirementSystem))
	assert.Equal(t, "1990-06-01", inputs.Get(domain.FieldRetirementSCD))
	assert.Equal(t, "50", inputs.Get(domain.FieldSurvivorBenefitElection))

	out, err = execute(t, "import", book, "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"runId"`)
	assert.Contains(t, out, `"sheet": "Sheet1"`)
}

func TestImportCommand_MergeIntoFile(t *testing.T) {
	book := intakeWorkbook(t)
	path := writeScenario(t, "goal_retirement_date: 2027-06-01\nhigh_3_salary: 100000\nretirement_system: CSRS\n")

	out, err := execute(t, "import", book, "--into", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 5 fields into")

	inputs, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FERS", inputs.Get(domain.FieldRetirementSystem))
	assert.Equal(t, "2027-06-01", inputs.Get(domain.FieldGoalRetirementDate))
	assert.Equal(t, "100000", inputs.Get(domain.FieldHigh3Salary))

	out, err = execute(t, "eligibility", path)
	require.NoError(t, err)
	assert.Contains(t, out, "REGULAR")
}

func TestImportCommand_Store(t *testing.T) {
	book := intakeWorkbook(t)
	dir := t.TempDir()

	out, err := execute(t, "import", book, "--store", dir, "--client", "client-42")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 5 fields for client client-42")
	assert.FileExists(t, filepath.Join(dir, "client-42.yaml"))

	out, err = execute(t, "preview", "--store", dir, "--client", "client-42", "-f", "json")
	require.NoError(t, err)
	var p domain.Preview
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Nil(t, p.Eligibility)
	assert.Contains(t, p.EligibilityMissing, domain.FieldGoalRetirementDate)
}

func TestImportCommand_Errors(t *testing.T) {
	_, err := execute(t, "import", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a workbook"), 0o644))
	_, err = execute(t, "import", garbage)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnreadableFile))

	_, err = execute(t, "import", intakeWorkbook(t), "--store", t.TempDir())
	assert.Error(t, err)

	_, err = execute(t, "import", intakeWorkbook(t), "--into", "x.yaml", "--client", "a")
	assert.Error(t, err)
}
