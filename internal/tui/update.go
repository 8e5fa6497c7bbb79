package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ScenarioLoadedMsg:
		m.err = nil
		m.loaded = true
		m.inputs = msg.Inputs
		m.warnings = msg.Warnings
		return m.recompute(), nil
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, loadScenarioCmd(m.scenarioPath)
	}

	if !m.loaded {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.InflationUp):
		return m.adjustInflation(InflationStep), nil
	case key.Matches(msg, m.keys.InflationDown):
		return m.adjustInflation(InflationStep.Neg()), nil
	case key.Matches(msg, m.keys.Survivor):
		return m.cycleSurvivor(), nil
	}
	return m, nil
}
