package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

// ConsoleFormatter renders every preview section as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(p *domain.Preview) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, "FERS RETIREMENT SCENARIO PREVIEW")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	if len(p.Caveats) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "NOTES:")
		for _, cv := range p.Caveats {
			fmt.Fprintf(&buf, "• %s\n", cv)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "ELIGIBILITY")
	fmt.Fprintln(&buf, strings.Repeat("-", 11))
	switch {
	case p.Eligibility != nil:
		e := p.Eligibility
		fmt.Fprintf(&buf, "Type:    %s (%s)\n", e.Type, e.Tier)
		fmt.Fprintf(&buf, "Status:  %s\n", e.Status)
		fmt.Fprintf(&buf, "Age:     %s\n", e.Age)
		fmt.Fprintf(&buf, "Service: %s\n", e.Service)
		fmt.Fprintf(&buf, "MRA:     %s\n", e.MRA)
	case len(p.EligibilityMissing) > 0:
		fmt.Fprintf(&buf, "Not enough information (needs %s)\n", fieldList(p.EligibilityMissing))
	default:
		fmt.Fprintln(&buf, "Not computed")
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "ANNUITY PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("-", 18))
	if len(p.Projection) > 0 {
		WriteProjectionTable(&buf, p.Projection)
	} else if len(p.ProjectionMissing) > 0 {
		fmt.Fprintf(&buf, "Not enough information (needs %s)\n", fieldList(p.ProjectionMissing))
	} else {
		fmt.Fprintln(&buf, "Not computed")
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "TSP")
	fmt.Fprintln(&buf, strings.Repeat("-", 3))
	tsp := p.TSP
	if !tsp.FundTotal.Valid && !tsp.ReportedTotal.Valid && !tsp.AllocationTotal.Valid {
		fmt.Fprintln(&buf, "Not enough information")
	}
	for _, f := range domain.Funds {
		bal, hasBal := tsp.FundBalances[f]
		alloc, hasAlloc := tsp.Allocations[f]
		if !hasBal && !hasAlloc {
			continue
		}
		line := fmt.Sprintf("%s Fund:", f)
		if hasBal {
			line += " " + FormatCurrency(bal)
		}
		if hasAlloc {
			line += " (" + FormatPercentage(alloc) + " of contributions)"
		}
		fmt.Fprintln(&buf, line)
	}
	if tsp.FundTotal.Valid {
		fmt.Fprintf(&buf, "Fund total:       %s\n", FormatCurrency(tsp.FundTotal.Decimal))
	}
	if tsp.ReportedTotal.Valid {
		fmt.Fprintf(&buf, "Reported total:   %s\n", FormatCurrency(tsp.ReportedTotal.Decimal))
	}
	if tsp.AllocationTotal.Valid {
		status := "complete"
		if !tsp.AllocationComplete {
			status = "does not total 100%"
		}
		fmt.Fprintf(&buf, "Allocation total: %s (%s)\n", FormatPercentage(tsp.AllocationTotal.Decimal), status)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "SOCIAL SECURITY")
	fmt.Fprintln(&buf, strings.Repeat("-", 15))
	if len(p.SocialSecurity.Estimates) == 0 {
		fmt.Fprintln(&buf, "Not enough information")
	}
	for _, est := range p.SocialSecurity.Estimates {
		fmt.Fprintf(&buf, "At %-4s %s/month, %s/year\n", est.ClaimingAge+":", FormatCurrency(est.Monthly), FormatCurrency(est.Annual))
	}
	return buf.Bytes(), nil
}
