package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/rpgo-intake/internal/calculation"
	"github.com/rgehrsitz/rpgo-intake/internal/config"
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

// InflationStep is the change applied by one inflation key press.
var InflationStep = decimal.RequireFromString("0.25")

var survivorCycle = map[string]string{"0": "25", "25": "50", "50": "0"}

// Model represents the entire application state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	scenarioPath string
	inputs       domain.ScenarioInputs
	preview      domain.Preview
	warnings     []string
	loaded       bool

	calcEngine *calculation.CalculationEngine

	keys keyMap
	help help.Model

	// Error state
	err error
}

// NewModel creates a new application model
func NewModel(scenarioPath string) Model {
	return Model{
		scenarioPath: scenarioPath,
		calcEngine:   calculation.NewCalculationEngine(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadScenarioCmd(m.scenarioPath)
}

// Inputs returns the working copy of the scenario, including adjustments.
func (m Model) Inputs() domain.ScenarioInputs { return m.inputs }

// Preview returns the most recently computed preview.
func (m Model) Preview() domain.Preview { return m.preview }

// loadScenarioCmd returns a command that loads the scenario file
func loadScenarioCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		inputs, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ScenarioLoadedMsg{Inputs: inputs, Warnings: parser.Validate(inputs)}
	}
}

// recompute rebuilds the preview from the working inputs.
func (m Model) recompute() Model {
	m.preview = m.calcEngine.Preview(m.inputs)
	return m
}

func (m Model) adjustInflation(delta decimal.Decimal) Model {
	current := decimal.Zero
	if d, err := decimal.NewFromString(m.inputs.Get(domain.FieldInflationRate)); err == nil {
		current = d
	}
	next := current.Add(delta)
	if next.IsNegative() {
		next = decimal.Zero
	}
	m.inputs = m.inputs.Clone()
	m.inputs[domain.FieldInflationRate] = next.String()
	return m.recompute()
}

func (m Model) cycleSurvivor() Model {
	current := m.inputs.Get(domain.FieldSurvivorBenefitElection)
	next, ok := survivorCycle[current]
	if !ok {
		next = "25"
	}
	m.inputs = m.inputs.Clone()
	m.inputs[domain.FieldSurvivorBenefitElection] = next
	return m.recompute()
}
