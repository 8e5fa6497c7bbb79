package tui

import (
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ScenarioLoadedMsg signals the scenario file has been read
type ScenarioLoadedMsg struct {
	Inputs   domain.ScenarioInputs
	Warnings []string
}
