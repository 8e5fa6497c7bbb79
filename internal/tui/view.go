package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/internal/tui/components"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// View renders the current state of the application
func (m Model) View() string {
	var sections []string
	sections = append(sections, m.renderTitleBar())

	switch {
	case m.err != nil:
		sections = append(sections, ErrorStyle.Render("Error: "+m.err.Error()))
	case !m.loaded:
		sections = append(sections, PendingStyle.Render("Loading "+m.scenarioPath+"..."))
	default:
		sections = append(sections,
			m.renderAssumptions(),
			m.renderCaveats(),
			m.renderEligibility(),
			m.renderProjection(),
			m.renderSavings(),
		)
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("RPGO - FERS Retirement Preview")
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(m.scenarioPath))
}

func (m Model) renderAssumptions() string {
	inflation := m.inputs.Get(domain.FieldInflationRate)
	if inflation == "" {
		inflation = "0"
	}
	survivor := m.inputs.Get(domain.FieldSurvivorBenefitElection)
	if survivor == "" {
		survivor = "0"
	}
	line := fmt.Sprintf("%s %s%%   %s %s%%",
		MetricLabelStyle.Render("Inflation:"), MetricValueStyle.Render(inflation),
		MetricLabelStyle.Render("Survivor election:"), MetricValueStyle.Render(survivor))

	if len(m.warnings) > 0 {
		line += "\n" + CaveatStyle.Render(fmt.Sprintf("%d validation warning(s): %s", len(m.warnings), strings.Join(m.warnings, "; ")))
	}
	return line
}

func (m Model) renderCaveats() string {
	if len(m.preview.Caveats) == 0 {
		return ""
	}
	lines := make([]string, len(m.preview.Caveats))
	for i, c := range m.preview.Caveats {
		lines[i] = CaveatStyle.Render("! " + c)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEligibility() string {
	header := SectionStyle.Render("Eligibility")
	e := m.preview.Eligibility
	if e == nil {
		return header + "\n" + placeholder(m.preview.EligibilityMissing)
	}
	body := fmt.Sprintf("%s\n%s %s   %s %s   %s %s",
		TierStyle(e.Tier).Render(string(e.Type)+": "+e.Status),
		MetricLabelStyle.Render("Age"), e.Age,
		MetricLabelStyle.Render("Service"), e.Service,
		MetricLabelStyle.Render("MRA"), e.MRA)
	return header + "\n" + body
}

func (m Model) renderProjection() string {
	header := SectionStyle.Render("Annuity projection")
	if len(m.preview.Projection) == 0 {
		return header + "\n" + placeholder(m.preview.ProjectionMissing)
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-9s %-10s %-8s %-8s %9s %9s %9s %8s",
		"", "Date", "Age", "Service", "High-3", "Annuity", "Net", "Cost/mo")))
	for _, c := range m.preview.Projection {
		b.WriteString("\n")
		b.WriteString(TableCellStyle.Render(fmt.Sprintf("%-9s %-10s %-8s %-8s %9s %9s %9s %8s",
			c.Label, dateutil.FormatISO(c.RetirementDate), c.Age, c.Service,
			c.High3.StringFixed(0), c.GrossAnnual.StringFixed(0), c.NetAnnual.StringFixed(0), c.SurvivorCostMonthly.StringFixed(0))))
	}
	return header + "\n" + BorderStyle.Render(b.String())
}

func placeholder(missing []domain.Field) string {
	if len(missing) == 0 {
		return PendingStyle.Render("Not computed")
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return PendingStyle.Render("Not enough information: needs " + strings.Join(names, ", "))
}

func (m Model) renderSavings() string {
	header := SectionStyle.Render("TSP and Social Security")
	tsp := m.preview.TSP

	balance := tsp.FundTotal
	note := fmt.Sprintf("%d fund(s)", len(tsp.FundBalances))
	if !balance.Valid {
		balance = tsp.ReportedTotal
		note = "reported total"
	}
	allocNote := "incomplete"
	if tsp.AllocationComplete {
		allocNote = "complete"
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("TSP balance", dollars(balance)).WithDescription(note),
		components.NewMetricCard("Allocation", percent(tsp.AllocationTotal)).WithDescription(allocNote),
	}
	for _, est := range m.preview.SocialSecurity.Estimates {
		cards = append(cards, components.NewMetricCard("Social Security at "+est.ClaimingAge,
			"$"+est.Monthly.StringFixed(0)+"/mo"))
	}
	return header + "\n" + components.MetricGrid(cards, 3)
}

func dollars(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return "$" + d.Decimal.StringFixed(0)
}

func percent(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String() + "%"
}
