package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// mandatoryStep is one question in the assistant sequence. Every step must
// be confirmed before the full checklist unlocks.
type mandatoryStep struct {
	key      string
	question string
	hint     string
}

var mandatorySteps = []mandatoryStep{
	{
		key:      "odc_access",
		question: "Have you raised your ODC access request and received your badge?",
		hint:     "Raise the ODC access request on the facilities portal. Approval usually takes a day.",
	},
	{
		key:      "personal_details",
		question: "Have you verified your personal details in the HR portal?",
		hint:     "Check your bank details, emergency contact and address in the HR portal.",
	},
	{
		key:      "security_training",
		question: "Have you completed the mandatory security awareness training?",
		hint:     "The security awareness course is assigned in the learning portal. It takes about 30 minutes.",
	},
}

// AssistantModel walks an employee through the mandatory setup questions.
type AssistantModel struct {
	width  int
	height int

	employeeName string
	currentStep  int
	showHint     bool

	completed bool
	cancelled bool
}

// NewAssistantModel creates the assistant model for the given employee.
func NewAssistantModel(employeeName string) AssistantModel {
	return AssistantModel{
		employeeName: employeeName,
	}
}

// Init initializes the model
func (m AssistantModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m AssistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit

		case "y", "Y", "enter":
			m.showHint = false
			m.currentStep++
			if m.currentStep >= len(mandatorySteps) {
				m.completed = true
				return m, tea.Quit
			}
			return m, nil

		case "n", "N":
			m.showHint = true
			return m, nil
		}
	}

	return m, nil
}

// View renders the TUI
func (m AssistantModel) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(titleStyle.Render(fmt.Sprintf("👋 Welcome, %s", m.employeeName)))
	b.WriteString("\n\n")

	introStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(introStyle.Render("A few mandatory steps before your checklist unlocks."))
	b.WriteString("\n\n")

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	currentStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	for i, step := range mandatorySteps {
		switch {
		case i < m.currentStep:
			b.WriteString(doneStyle.Render("✓ " + step.question))
		case i == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + step.question))
		default:
			b.WriteString(futureStyle.Render("  " + step.question))
		}
		b.WriteString("\n")
	}

	if m.showHint {
		hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(mandatorySteps[m.currentStep].hint))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y yes • n not yet • esc quit"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}
