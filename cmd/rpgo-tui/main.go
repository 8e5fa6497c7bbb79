package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/rpgo-intake/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: rpgo-tui <scenario.yaml>")
		os.Exit(1)
	}
	scenarioPath := os.Args[1]

	if _, err := os.Stat(scenarioPath); os.IsNotExist(err) {
		fmt.Printf("Error: scenario file not found: %s\n", scenarioPath)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(scenarioPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
