package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onboardhq/onboardpath/internal/db"
	"github.com/onboardhq/onboardpath/internal/parser"
)

// assignStep is one step in the assign-task wizard
type assignStep int

const (
	stepTitle assignStep = iota
	stepDescription
	stepPriority
	stepPoints
	stepTime
	stepDeadline
	stepUpload
	stepSave
)

var assignStepLabels = []string{"Title", "Description", "Priority", "Points", "Est. Time", "Deadline", "Evidence", "Save"}

// AssignTaskModel is the interactive wizard managers use to append a task
// to the catalog.
type AssignTaskModel struct {
	width  int
	height int

	store *db.Store

	currentStep assignStep
	inputs      []textinput.Model

	title          string
	description    string
	priority       int
	points         int
	estimatedTime  string
	deadline       *time.Time
	requiresUpload bool

	validationErr string

	completed        bool
	cancelled        bool
	err              error
	createdTaskID    uint
	createdTaskTitle string
}

// NewAssignTaskModel creates the wizard model.
func NewAssignTaskModel(store *db.Store) AssignTaskModel {
	inputs := make([]textinput.Model, 6)
	placeholders := []string{
		"e.g. Complete the security refresher",
		"What should the employee do? (optional)",
		"low, medium or high (optional)",
		"points awarded on completion (default 10)",
		"e.g. 45 min (optional)",
		"dd/mm/yyyy, '3 days' or '2 weeks' (optional)",
	}

	for i := range inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 200
		input.Width = 50
		input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i] = input
	}
	inputs[0].Focus()

	return AssignTaskModel{
		store:  store,
		inputs: inputs,
		points: 10,
	}
}

// Init initializes the model
func (m AssignTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AssignTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			if m.currentStep == stepTitle && strings.TrimSpace(m.inputs[0].Value()) == "" {
				m.validationErr = "Task title is required"
				return m, nil
			}
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}

		// The evidence step is a y/n toggle rather than a text input
		if m.currentStep == stepUpload {
			switch msg.String() {
			case "y", "Y":
				m.requiresUpload = true
			case "n", "N":
				m.requiresUpload = false
			case " ":
				m.requiresUpload = !m.requiresUpload
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.currentStep < stepUpload {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

// handleEnter validates the current step and advances, saving on the
// final step.
func (m AssignTaskModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.currentStep == stepSave {
		return m.save()
	}
	if m.currentStep == stepTitle && strings.TrimSpace(m.inputs[0].Value()) == "" {
		m.validationErr = "Task title is required"
		return m, nil
	}
	return m.nextStep()
}

func (m AssignTaskModel) nextStep() (tea.Model, tea.Cmd) {
	if err := m.captureStep(); err != "" {
		m.validationErr = err
		return m, nil
	}
	m.validationErr = ""

	if m.currentStep < stepSave {
		m.currentStep++
	}
	return m.focusStep()
}

func (m AssignTaskModel) prevStep() (tea.Model, tea.Cmd) {
	m.captureStep()
	m.validationErr = ""

	if m.currentStep > stepTitle {
		m.currentStep--
	}
	return m.focusStep()
}

func (m AssignTaskModel) focusStep() (tea.Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.currentStep < stepUpload {
		m.inputs[m.currentStep].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// captureStep parses the current input into the model field, returning a
// validation message when the value cannot be used.
func (m *AssignTaskModel) captureStep() string {
	switch m.currentStep {
	case stepTitle:
		m.title = strings.TrimSpace(m.inputs[stepTitle].Value())

	case stepDescription:
		m.description = strings.TrimSpace(m.inputs[stepDescription].Value())

	case stepPriority:
		value := strings.TrimSpace(m.inputs[stepPriority].Value())
		if value == "" {
			m.priority = 0
			return ""
		}
		priority, ok := parsePriorityToken(value)
		if !ok {
			return "Priority must be low, medium, high, 1, 2 or 3"
		}
		m.priority = priority

	case stepPoints:
		value := strings.TrimSpace(m.inputs[stepPoints].Value())
		if value == "" {
			m.points = 10
			return ""
		}
		points, err := strconv.Atoi(value)
		if err != nil || points < 1 {
			return "Points must be a positive number"
		}
		m.points = points

	case stepTime:
		m.estimatedTime = strings.TrimSpace(m.inputs[stepTime].Value())

	case stepDeadline:
		value := strings.TrimSpace(m.inputs[stepDeadline].Value())
		if value == "" {
			m.deadline = nil
			return ""
		}
		deadline, err := parser.ParseDeadline(value)
		if err != nil {
			return err.Error()
		}
		m.deadline = deadline
	}
	return ""
}

func (m AssignTaskModel) save() (tea.Model, tea.Cmd) {
	task, err := m.store.AppendTask(db.CreateTaskRequest{
		Title:          m.title,
		Description:    m.description,
		Priority:       m.priority,
		Points:         m.points,
		RequiresUpload: m.requiresUpload,
		EstimatedTime:  m.estimatedTime,
		Deadline:       m.deadline,
	})
	if err != nil {
		m.err = err
		m.completed = true
		return m, tea.Quit
	}

	m.createdTaskID = task.ID
	m.createdTaskTitle = task.Title
	m.completed = true
	return m, tea.Quit
}

// View renders the TUI
func (m AssignTaskModel) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("📝 Assign a Task"))
	b.WriteString("\n\n")

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i, label := range assignStepLabels {
		step := assignStep(i)
		if step == stepSave {
			b.WriteString("\n")
		}
		switch {
		case step == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + label))
		case step < m.currentStep:
			b.WriteString(doneStyle.Render("✓ " + label))
		default:
			b.WriteString(futureStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderCurrentStep())

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.validationErr))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter next • tab/↓ skip • shift+tab/↑ back • esc cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

func (m AssignTaskModel) renderCurrentStep() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	switch m.currentStep {
	case stepUpload:
		value := "no"
		if m.requiresUpload {
			value = "yes"
		}
		return labelStyle.Render("📷 Require screenshot evidence and manager review?") +
			"\n" + labelStyle.Render(fmt.Sprintf("   %s  (y/n to change, enter to continue)", value))

	case stepSave:
		summary := fmt.Sprintf("Save \"%s\" (%d pts)", m.title, m.points)
		if m.requiresUpload {
			summary += ", evidence required"
		}
		return labelStyle.Render("💾 " + summary + "? Press enter to save.")

	default:
		headers := []string{"📋 Task Title", "📄 Description", "🎯 Priority", "⭐ Points", "⏱  Estimated Time", "📅 Deadline"}
		return labelStyle.Render(headers[m.currentStep]) + "\n" + m.inputs[m.currentStep].View()
	}
}

// parsePriorityToken converts a priority token to its numeric form
func parsePriorityToken(token string) (int, bool) {
	switch strings.ToLower(token) {
	case "low", "1":
		return 1, true
	case "medium", "med", "2":
		return 2, true
	case "high", "3":
		return 3, true
	default:
		return 0, false
	}
}
