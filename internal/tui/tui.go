package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/onboardhq/onboardpath/internal/db"
	"github.com/onboardhq/onboardpath/internal/progress"
)

// RunChecklistTUI starts the interactive checklist for one associate
func RunChecklistTUI(engine *progress.Engine, associateID string) error {
	model, err := NewChecklistModel(engine, associateID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// RunAssignTaskTUI starts the interactive assign-task wizard
func RunAssignTaskTUI(store *db.Store) error {
	model := NewAssignTaskModel(store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	if m, ok := finalModel.(AssignTaskModel); ok {
		if m.cancelled {
			fmt.Println("❌ Task assignment cancelled.")
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		} else if m.completed && m.createdTaskID > 0 {
			fmt.Printf("✅ Assigned task \"%s\" to all employees - ID: %d\n", m.createdTaskTitle, m.createdTaskID)
		}
	}

	return nil
}

// RunAssistantTUI walks the employee through the mandatory setup questions
// and reports whether every step was confirmed.
func RunAssistantTUI(employeeName string) (bool, error) {
	model := NewAssistantModel(employeeName)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(AssistantModel); ok {
		return m.completed, nil
	}
	return false, nil
}
