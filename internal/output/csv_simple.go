package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
)

// CSVFormatter writes the projection table with one row per column.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(p *domain.Preview) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Index", "Label", "RetirementDate", "AgeYears", "AgeMonths", "ServiceYears", "ServiceMonths",
		"SickLeaveYears", "SickLeaveMonths", "TotalServiceYears", "High3", "High3Change", "Multiplier",
		"GrossAnnual", "GrossMonthly", "NetAnnual", "NetMonthly",
		"SurvivorAnnual", "SurvivorMonthly", "SurvivorCostAnnual", "SurvivorCostMonthly",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, col := range p.Projection {
		row := []string{
			strconv.Itoa(col.Index),
			col.Label,
			dateutil.FormatISO(col.RetirementDate),
			strconv.Itoa(col.Age.Years),
			strconv.Itoa(col.Age.Months),
			strconv.Itoa(col.Service.Years),
			strconv.Itoa(col.Service.Months),
			strconv.Itoa(col.SickLeave.Years),
			strconv.Itoa(col.SickLeave.Months),
			col.TotalService.StringFixed(3),
			col.High3.String(),
			col.High3Change.String(),
			col.Multiplier.StringFixed(3),
			col.GrossAnnual.String(),
			col.GrossMonthly.String(),
			col.NetAnnual.String(),
			col.NetMonthly.String(),
			col.SurvivorAnnual.String(),
			col.SurvivorMonthly.String(),
			col.SurvivorCostAnnual.String(),
			col.SurvivorCostMonthly.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
