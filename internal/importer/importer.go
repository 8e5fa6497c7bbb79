// Package importer turns an uploaded retirement intake spreadsheet into a
// partial ScenarioInputs record. Values are located by label, never by row
// position, and cells that cannot be interpreted are dropped rather than
// failing the import.
package importer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Logger is the logging surface the importer writes to.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}

// Resolution records where an imported field was found.
type Resolution struct {
	Field domain.Field `json:"field" yaml:"field"`
	Row   int          `json:"row" yaml:"row"`
	Label string       `json:"label" yaml:"label"`
	Value string       `json:"value" yaml:"value"`
}

// ImportResult is the outcome of one import.
type ImportResult struct {
	RunID    string                `json:"runId" yaml:"run_id"`
	Sheet    string                `json:"sheet" yaml:"sheet"`
	Inputs   domain.ScenarioInputs `json:"inputs" yaml:"inputs"`
	Resolved []Resolution          `json:"resolved" yaml:"resolved"`
}

// Importer decodes workbooks and assembles scenario inputs.
type Importer struct {
	Logger Logger
}

// NewImporter creates an importer that logs nowhere.
func NewImporter() *Importer {
	return &Importer{Logger: nopLogger{}}
}

// SetLogger sets the logger; nil restores the no-op logger.
func (im *Importer) SetLogger(l Logger) {
	if l == nil {
		im.Logger = nopLogger{}
		return
	}
	im.Logger = l
}

// ImportScenario decodes a workbook held in memory and returns the fields it
// could populate.
func ImportScenario(data []byte) (domain.ScenarioInputs, error) {
	res, err := NewImporter().Import(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return res.Inputs, nil
}

// Import reads the first worksheet of the workbook in r. It fails only when
// the workbook cannot be opened or read.
func (im *Importer) Import(r io.Reader) (*ImportResult, error) {
	runID := uuid.New().String()

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindUnreadableFile, Message: "failed to open workbook", Err: err}
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.Errorf(domain.KindUnreadableFile, "workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindUnreadableFile, Message: fmt.Sprintf("failed to read sheet %q", sheet), Err: err}
	}

	res := im.AssembleCells(typedCells(wb, sheet, rows))
	res.RunID = runID
	res.Sheet = sheet
	im.Logger.Infof("import %s: sheet %q, %d rows, %d fields resolved", runID, sheet, len(rows), len(res.Inputs))
	return res, nil
}

// Assemble resolves every known field against text-only rows.
func (im *Importer) Assemble(rows [][]string) *ImportResult {
	return im.AssembleCells(textCells(rows))
}

// AssembleCells resolves every known field against the given cells. Fields
// that are missing, blank, or unparseable are left out of the result entirely.
func (im *Importer) AssembleCells(rows [][]any) *ImportResult {
	resolver := NewCellResolver(rows)
	res := &ImportResult{Inputs: domain.ScenarioInputs{}}

	for _, rule := range fieldRules {
		entry, value, ok := resolveRule(resolver, rule)
		if !ok {
			continue
		}
		im.Logger.Debugf("field %s <- row %d %q = %q", rule.field, entry.Row, entry.Label, value)
		res.Inputs[rule.field] = value
		res.Resolved = append(res.Resolved, Resolution{
			Field: rule.field,
			Row:   entry.Row,
			Label: entry.Label,
			Value: value,
		})
	}
	return res
}

// typedCells pairs raw cell text with its stored type: numeric cells become
// float64 so normalizers can tell a number from text that looks like one.
func typedCells(wb *excelize.File, sheet string, rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, raw := range row {
			out[i][j] = raw
			if strings.TrimSpace(raw) == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				continue
			}
			typ, err := wb.GetCellType(sheet, name)
			if err != nil || (typ != excelize.CellTypeNumber && typ != excelize.CellTypeUnset) {
				continue
			}
			if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				out[i][j] = f
			}
		}
	}
	return out
}

// resolveRule tries each lookup in turn and returns the first that yields a
// non-empty normalized value.
func resolveRule(r *Resolver, rule fieldRule) (RowEntry, string, bool) {
	for _, l := range rule.lookups {
		var (
			entry RowEntry
			found bool
		)
		switch l.mode {
		case modeExact:
			entry, found = r.FindEntry(l.term)
		case modePartial:
			entry, found = r.FindPartialEntry(l.term)
		case modeFund:
			entry, found = r.FindFundEntry(l.term, l.section)
		}
		if !found || strings.TrimSpace(entry.Value) == "" {
			continue
		}
		if v := rule.normalize(entry.Raw); v != "" {
			return entry, v, true
		}
	}
	return RowEntry{}, "", false
}
