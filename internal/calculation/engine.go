package calculation

import (
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
)

// CalculationEngine runs eligibility, projection and preview calculations
// for a scenario. It holds no per-scenario state and is safe to reuse.
type CalculationEngine struct {
	Logger Logger
	Debug  bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Eligibility checks the scenario's domain and prerequisites before
// classifying eligibility at the goal retirement date.
func (ce *CalculationEngine) Eligibility(s domain.Scenario) (domain.EligibilityResult, error) {
	if !s.IsRegularFERS() {
		return domain.EligibilityResult{}, domain.Errorf(domain.KindOutOfDomain,
			"%s with special provision %s is not modeled", s.RetirementSystem, s.SpecialProvision)
	}
	if missing := EligibilityMissing(s); len(missing) > 0 {
		return domain.EligibilityResult{}, domain.MissingInput(missing[0])
	}

	res := ComputeEligibility(s.BirthDate.Time, s.GoalRetirementDate.Time, s.SCD.Time)
	if ce.Debug {
		ce.Logger.Debugf("eligibility at %s: age %s, service %s, MRA %s -> %s",
			dateutil.FormatISO(s.GoalRetirementDate.Time), res.Age, res.Service, res.MRA, res.Type)
	}
	return res, nil
}

// ProjectionTable builds the projection table for a regular FERS scenario.
func (ce *CalculationEngine) ProjectionTable(inputs domain.ScenarioInputs) ([]domain.ProjectionColumn, error) {
	s := domain.ParseScenario(inputs)
	if !s.IsRegularFERS() {
		return nil, domain.Errorf(domain.KindOutOfDomain,
			"%s with special provision %s is not modeled", s.RetirementSystem, s.SpecialProvision)
	}
	columns, err := projectScenario(s)
	if err != nil {
		return nil, err
	}
	if ce.Debug {
		for _, c := range columns {
			ce.Logger.Debugf("column %d %s: high-3 %s, service %s, multiplier %s, gross %s, net %s",
				c.Index, dateutil.FormatISO(c.RetirementDate), c.High3, c.TotalService, c.Multiplier, c.GrossAnnual, c.NetAnnual)
		}
	}
	return columns, nil
}

// Preview assembles every section of the scenario preview, replacing each
// section that cannot be computed by the list of fields it needs.
func (ce *CalculationEngine) Preview(inputs domain.ScenarioInputs) domain.Preview {
	s := domain.ParseScenario(inputs)
	p := domain.Preview{
		Caveats:        outOfDomainCaveats(s),
		TSP:            summarizeTSP(s),
		SocialSecurity: summarizeSocialSecurity(s),
	}
	if !s.IsRegularFERS() {
		return p
	}

	if elig, err := ce.Eligibility(s); err == nil {
		p.Eligibility = &elig
		if elig.Caveat != "" {
			p.Caveats = append(p.Caveats, elig.Caveat)
		}
	} else {
		p.EligibilityMissing = EligibilityMissing(s)
	}

	if missing := ProjectionMissing(s); len(missing) > 0 {
		p.ProjectionMissing = missing
		return p
	}
	columns, err := projectScenario(s)
	if err != nil {
		ce.Logger.Warnf("projection skipped: %v", err)
		p.Caveats = append(p.Caveats, err.Error())
		return p
	}
	p.Projection = columns
	if s.COLARate.Valid {
		p.Caveats = append(p.Caveats, CaveatCOLA)
	}
	return p
}
