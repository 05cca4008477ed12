package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/layoutkit/typelayout"
	"github.com/layoutkit/typelayout/witlayout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	tableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateShowLayout
)

type interactiveModel struct {
	err      error
	filename string
	reports  []*typelayout.Report
	filtered []int
	filter   textinput.Model
	selected int
	state    modelState
}

type loadedMsg struct {
	err     error
	reports []*typelayout.Report
}

func newInteractiveModel(filename string) *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "filter types"
	filter.Prompt = "/ "
	filter.Width = 40
	filter.Focus()

	return &interactiveModel{
		filename: filename,
		filter:   filter,
		state:    stateSelectType,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadDocument
}

func (m *interactiveModel) loadDocument() tea.Msg {
	res, err := decodeWIT(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{reports: witlayout.Reports(res)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down":
			if m.state == stateSelectType && m.selected < len(m.filtered)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectType && len(m.filtered) > 0 {
				m.state = stateShowLayout
			}

		case "q":
			if m.state == stateShowLayout {
				m.state = stateSelectType
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateShowLayout:
				m.state = stateSelectType
			case stateSelectType:
				if m.filter.Value() == "" {
					return m, tea.Quit
				}
				m.filter.SetValue("")
				m.applyFilter()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.reports = msg.reports
		m.applyFilter()
	}

	if m.state == stateSelectType {
		var cmd tea.Cmd
		before := m.filter.Value()
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.applyFilter()
		}
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())

	m.filtered = m.filtered[:0]
	for i, report := range m.reports {
		if query == "" || strings.Contains(strings.ToLower(report.TypeName), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}

	if m.reports == nil {
		return "Loading WIT document..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Type Layout"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		if len(m.filtered) == 0 {
			b.WriteString(helpStyle.Render("no matching types"))
			b.WriteString("\n")
		}
		for pos, idx := range m.filtered {
			report := m.reports[idx]
			line := m.formatEntry(report)
			if pos == m.selected {
				b.WriteString(selectedStyle.Render("> " + report.TypeName))
				b.WriteString(line[len(report.TypeName):])
			} else {
				b.WriteString("  " + typeStyle.Render(report.TypeName))
				b.WriteString(line[len(report.TypeName):])
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter show layout • esc quit"))

	case stateShowLayout:
		report := m.reports[m.filtered[m.selected]]
		b.WriteString(tableStyle.Render(report.String()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatEntry(report *typelayout.Report) string {
	return fmt.Sprintf("%s  %s", report.TypeName,
		sizeStyle.Render(fmt.Sprintf("(size %d, alignment %d)", report.Size, report.Alignment)))
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
