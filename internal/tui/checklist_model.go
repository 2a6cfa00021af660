package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onboardhq/onboardpath/internal/parser"
	"github.com/onboardhq/onboardpath/internal/progress"
)

// ChecklistModel is the interactive checklist for one associate. Toggling a
// row goes through the progress engine, so gating and upload rules apply
// exactly as they do on the command line.
type ChecklistModel struct {
	width  int
	height int

	engine      *progress.Engine
	associateID string

	views    []progress.TaskView
	percent  int
	selected int

	// Transient message from the last toggle attempt
	status string

	shimmer *ShimmerState

	// Pagination
	currentPage int
	perPage     int
}

// NewChecklistModel builds the checklist model with a fresh snapshot.
func NewChecklistModel(engine *progress.Engine, associateID string) (ChecklistModel, error) {
	m := ChecklistModel{
		engine:      engine,
		associateID: associateID,
		shimmer:     NewShimmerState(),
	}
	if err := m.reload(); err != nil {
		return ChecklistModel{}, err
	}
	return m, nil
}

func (m *ChecklistModel) reload() error {
	views, err := m.engine.Checklist(m.associateID)
	if err != nil {
		return err
	}
	percent, err := m.engine.Percent(m.associateID)
	if err != nil {
		return err
	}
	m.views = views
	m.percent = percent
	if m.selected >= len(m.views) {
		m.selected = len(m.views) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return nil
}

// Init initializes the model
func (m ChecklistModel) Init() tea.Cmd {
	if m.shimmer.ShouldTick() {
		return tea.Tick(m.shimmer.GetTickInterval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		})
	}
	return nil
}

// Update handles messages
func (m ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.shimmer.ShouldTick() {
			return m, tea.Tick(m.shimmer.GetTickInterval(), func(time.Time) tea.Msg {
				return shimmerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height - header(3) - pagination(1) - help(1) - borders/margins(7)
		available := m.height - 12
		if available < 3 {
			available = 3
		}
		m.perPage = available
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			return m.moveSelectionUp(), nil

		case "down", "j":
			return m.moveSelectionDown(), nil

		case "left", "h":
			return m.prevPage(), nil

		case "right", "l":
			return m.nextPage(), nil

		case "enter", " ":
			return m.toggleSelected(), nil
		}
	}

	return m, nil
}

// toggleSelected flips the selected task through the engine. Engine
// rejections (locked, upload-only) become the status line instead of
// ending the program.
func (m ChecklistModel) toggleSelected() ChecklistModel {
	if len(m.views) == 0 {
		return m
	}
	view := m.views[m.selected]

	if _, err := m.engine.Toggle(m.associateID, view.Task.ID); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = ""
	if err := m.reload(); err != nil {
		m.status = err.Error()
	}
	return m
}

func (m ChecklistModel) moveSelectionUp() ChecklistModel {
	if m.selected > 0 {
		m.selected--
		m.shimmer.Reset()
		if m.selected < m.currentPage*m.perPage && m.currentPage > 0 {
			m.currentPage--
		}
	}
	return m
}

func (m ChecklistModel) moveSelectionDown() ChecklistModel {
	if m.selected < len(m.views)-1 {
		m.selected++
		m.shimmer.Reset()
		pageEnd := min((m.currentPage+1)*m.perPage-1, len(m.views)-1)
		maxPages := (len(m.views) + m.perPage - 1) / m.perPage
		if m.selected > pageEnd && m.currentPage < maxPages-1 {
			m.currentPage++
		}
	}
	return m
}

func (m ChecklistModel) prevPage() ChecklistModel {
	if m.currentPage > 0 {
		m.currentPage--
		m.clampSelection()
		m.shimmer.Reset()
	}
	return m
}

func (m ChecklistModel) nextPage() ChecklistModel {
	maxPages := (len(m.views) + m.perPage - 1) / m.perPage
	if m.currentPage < maxPages-1 {
		m.currentPage++
		m.clampSelection()
		m.shimmer.Reset()
	}
	return m
}

func (m *ChecklistModel) clampSelection() {
	minIndex := m.currentPage * m.perPage
	maxIndex := min((m.currentPage+1)*m.perPage-1, len(m.views)-1)
	if m.selected < minIndex {
		m.selected = minIndex
	}
	if m.selected > maxIndex {
		m.selected = maxIndex
	}
}

// View renders the TUI
func (m ChecklistModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderChecklist(leftWidth),
		" ",
		m.renderDetails(rightWidth),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		content,
		"",
		m.renderHelpBar(),
	)
}

func (m ChecklistModel) renderChecklist(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render(fmt.Sprintf("Onboarding checklist — %d%%", m.percent)))
	b.WriteString("\n\n")

	if m.perPage == 0 {
		m.perPage = len(m.views)
	}
	start := m.currentPage * m.perPage
	end := min(start+m.perPage, len(m.views))

	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, width-4))
		b.WriteString("\n")
	}

	maxPages := (len(m.views) + m.perPage - 1) / m.perPage
	if maxPages > 1 {
		pageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		b.WriteString("\n")
		b.WriteString(pageStyle.Render(fmt.Sprintf("page %d/%d", m.currentPage+1, maxPages)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(m.height - 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1).
		Render(b.String())
}

func (m ChecklistModel) renderRow(i, width int) string {
	view := m.views[i]

	icon := "[ ]"
	color := ColorPrimaryText
	switch {
	case view.Completed:
		icon = "[x]"
		color = ColorSuccess
	case view.Locked:
		icon = " 🔒"
		color = ColorDisabledText
	case view.Submission != nil:
		icon = "[~]"
		color = ColorWarning
	case view.Task.RequiresUpload:
		icon = "[^]"
	}

	title := view.Task.Title
	maxTitle := width - 10
	if maxTitle > 3 && len(title) > maxTitle {
		title = title[:maxTitle-3] + "..."
	}

	if i == m.selected {
		cursor := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▶")
		return fmt.Sprintf("%s %s %s", cursor, icon, m.shimmer.RenderShimmerText(title, color, ColorAccentBright))
	}

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return fmt.Sprintf("  %s %s", icon, rowStyle.Render(title))
}

func (m ChecklistModel) renderDetails(width int) string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	if len(m.views) > 0 {
		view := m.views[m.selected]

		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
		b.WriteString(titleStyle.Render(view.Task.Title))
		b.WriteString("\n\n")

		if view.Task.Description != "" {
			b.WriteString(valueStyle.Render(view.Task.Description))
			b.WriteString("\n\n")
		}

		b.WriteString(labelStyle.Render("Status:   "))
		b.WriteString(valueStyle.Render(detailStatus(view)))
		b.WriteString("\n")

		b.WriteString(labelStyle.Render("Priority: "))
		b.WriteString(valueStyle.Render(view.Task.PriorityLabel()))
		b.WriteString("\n")

		b.WriteString(labelStyle.Render("Points:   "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", view.Task.Points)))
		b.WriteString("\n")

		if view.Task.EstimatedTime != "" {
			b.WriteString(labelStyle.Render("Time:     "))
			b.WriteString(valueStyle.Render(view.Task.EstimatedTime))
			b.WriteString("\n")
		}

		if view.Task.Deadline != nil {
			b.WriteString(labelStyle.Render("Deadline: "))
			b.WriteString(valueStyle.Render(parser.FormatDeadline(view.Task.Deadline)))
			b.WriteString("\n")
		}

		if view.Locked && m.engine.Gating().Name() == "points" {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render(fmt.Sprintf("Requires %d points to unlock", view.RequiredPoints)))
			b.WriteString("\n")
		}

		if view.Submission != nil && view.Submission.ManagerFeedback != "" {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Manager feedback:"))
			b.WriteString("\n")
			b.WriteString(valueStyle.Render(view.Submission.ManagerFeedback))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.status))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(m.height - 4).
		Padding(1).
		Render(b.String())
}

func detailStatus(view progress.TaskView) string {
	switch {
	case view.Completed:
		return "done"
	case view.Locked:
		return "locked"
	case view.Submission != nil:
		return view.Submission.Status + " review"
	case view.Task.RequiresUpload:
		return "needs upload (onboard submit)"
	default:
		return "pending"
	}
}

func (m ChecklistModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	return helpStyle.Render("  ↑/↓ navigate • ←/→ page • enter/space toggle • q quit")
}

// Helper function for min
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
