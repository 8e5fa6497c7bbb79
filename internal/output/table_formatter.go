package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const (
	rowLabelWidth = 24
	cellWidth     = 13
)

// TableFormatter renders the twelve projection columns side by side.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(p *domain.Preview) ([]byte, error) {
	var buf bytes.Buffer
	if len(p.Projection) == 0 {
		writeProjectionPlaceholder(&buf, p)
		return buf.Bytes(), nil
	}
	WriteProjectionTable(&buf, p.Projection)
	return buf.Bytes(), nil
}

type tableRow struct {
	label string
	cell  func(c domain.ProjectionColumn) string
}

var projectionRows = []tableRow{
	{"Retirement date", func(c domain.ProjectionColumn) string { return dateutil.FormatISO(c.RetirementDate) }},
	{"Age", func(c domain.ProjectionColumn) string { return c.Age.String() }},
	{"Service", func(c domain.ProjectionColumn) string { return c.Service.String() }},
	{"Sick leave credit", func(c domain.ProjectionColumn) string { return c.SickLeave.String() }},
	{"High-3", func(c domain.ProjectionColumn) string { return wholeDollars(c.High3) }},
	{"High-3 change", func(c domain.ProjectionColumn) string { return wholeDollars(c.High3Change) }},
	{"Multiplier", func(c domain.ProjectionColumn) string { return FormatPercentage(c.Multiplier.Mul(decimal.NewFromInt(100))) }},
	{"Annuity (annual)", func(c domain.ProjectionColumn) string { return wholeDollars(c.GrossAnnual) }},
	{"Annuity (monthly)", func(c domain.ProjectionColumn) string { return wholeDollars(c.GrossMonthly) }},
	{"With survivor (annual)", func(c domain.ProjectionColumn) string { return wholeDollars(c.NetAnnual) }},
	{"With survivor (monthly)", func(c domain.ProjectionColumn) string { return wholeDollars(c.NetMonthly) }},
	{"Survivor (annual)", func(c domain.ProjectionColumn) string { return wholeDollars(c.SurvivorAnnual) }},
	{"Survivor (monthly)", func(c domain.ProjectionColumn) string { return wholeDollars(c.SurvivorMonthly) }},
	{"Cost (annual)", func(c domain.ProjectionColumn) string { return wholeDollars(c.SurvivorCostAnnual) }},
	{"Cost (monthly)", func(c domain.ProjectionColumn) string { return wholeDollars(c.SurvivorCostMonthly) }},
}

// WriteProjectionTable writes one line per metric across all columns.
func WriteProjectionTable(w io.Writer, columns []domain.ProjectionColumn) {
	fmt.Fprintf(w, "%-*s", rowLabelWidth, "")
	for _, c := range columns {
		fmt.Fprintf(w, "%*s", cellWidth, c.Label)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", rowLabelWidth+cellWidth*len(columns)))

	for _, row := range projectionRows {
		fmt.Fprintf(w, "%-*s", rowLabelWidth, row.label)
		for _, c := range columns {
			fmt.Fprintf(w, "%*s", cellWidth, row.cell(c))
		}
		fmt.Fprintln(w)
	}
}

func writeProjectionPlaceholder(w io.Writer, p *domain.Preview) {
	if len(p.ProjectionMissing) > 0 {
		fmt.Fprintf(w, "Annuity projection: not enough information (needs %s)\n", fieldList(p.ProjectionMissing))
		return
	}
	fmt.Fprintln(w, "Annuity projection: not computed")
	for _, c := range p.Caveats {
		fmt.Fprintf(w, "  * %s\n", c)
	}
}

func wholeDollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(0)
}
