// Package reportui provides the Bubble Tea report viewer.
package reportui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordstats/internal/stats"
	"github.com/verte-zerg/wordstats/internal/textstats"
)

const (
	tabOverview = iota
	tabWords
	tabDetails
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea report viewer.
type Model struct {
	report textstats.Report
	source string

	tabs      []string
	activeTab int
	viewports []viewport.Model
	wordTable table.Model

	filterMode  bool
	filterInput textinput.Model
	filter      string

	width  int
	height int
}

// NewModel constructs a viewer for one report. source labels the input in
// the header.
func NewModel(report textstats.Report, source string) *Model {
	m := &Model{
		report: report,
		source: source,
		tabs:   []string{"Overview", "Top Words", "Details"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.filterInput = textinput.New()
	m.filterInput.Prompt = "Filter: "
	m.filterInput.Placeholder = "substring"
	m.wordTable = table.New(
		table.WithColumns(wordColumns()),
		table.WithRows(wordRows(report, "")),
		table.WithHeight(1),
	)
	m.wordTable.SetStyles(wordTableStyles())
	m.renderTabContents()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			if m.activeTab != tabWords {
				return m, nil
			}
			m.filterMode = true
			m.filterInput.SetValue(m.filter)
			return m, m.filterInput.Focus()
		case "g", "home":
			if m.activeTab == tabWords {
				m.wordTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabWords {
				m.wordTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			if m.activeTab == tabWords {
				m.wordTable, cmd = m.wordTable.Update(msg)
				return m, cmd
			}
			m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.filterMode = false
		m.filterInput.Blur()
		m.applyFilter(m.filterInput.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) applyFilter(value string) {
	m.filter = strings.ToLower(strings.TrimSpace(value))
	m.wordTable.SetRows(wordRows(m.report, m.filter))
	m.wordTable.GotoTop()
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	m.activeTab = (m.activeTab + delta + count) % count
	if m.activeTab == tabWords {
		m.wordTable.Focus()
	} else {
		m.wordTable.Blur()
	}
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = max(1, lipgloss.Height(activeNavStyle.Render("X"))) + 1
	footerHeight = 1
	bodyHeight = max(1, m.height-headerHeight-footerHeight)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.wordTable.SetWidth(m.width)
	// One line for the header row and one for the optional filter prompt.
	m.wordTable.SetHeight(max(1, bodyHeight-2))
	m.filterInput.Width = max(10, m.width-lipgloss.Width(m.filterInput.Prompt)-2)
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report, width))
	m.viewports[tabDetails].SetContent(renderDetails(m.report))
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	source := truncateLine(fmt.Sprintf("Source: %s", m.source), m.width)
	return tabs + "\n" + headerStyle.Render(source)
}

func (m *Model) renderBody() string {
	if m.activeTab != tabWords {
		return m.viewports[m.activeTab].View()
	}
	if len(m.report.Top()) == 0 {
		return "No words found."
	}
	lines := []string{tableMutedStyle.Render(m.wordTable.View())}
	switch {
	case m.filterMode:
		lines = append([]string{m.filterInput.View()}, lines...)
	case m.filter != "":
		lines = append([]string{headerStyle.Render(fmt.Sprintf("Filter: %s", m.filter))}, lines...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("enter: apply  esc: cancel  quit: ctrl+c")
	}
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Top/Bottom: g/G  Quit: q"
	if m.activeTab == tabWords {
		help = "Nav: left/right  Scroll: up/down  Filter: /  Top/Bottom: g/G  Quit: q"
	}
	return headerStyle.Render(help)
}

func renderOverview(r textstats.Report, width int) string {
	longest, ok := r.Longest()
	if !ok {
		longest = "-"
	}
	cards := []string{
		metricCard("Words", stats.FormatCount(r.Words())),
		metricCard("Unique", stats.FormatCount(r.UniqueWords())),
		metricCard("Letters", stats.FormatCount(r.AlphaChars())),
		metricCard("Longest", longest),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	bars := stats.BarLines(r.Top(), width, true)
	if len(bars) == 0 {
		return summary
	}
	return summary + "\n\n" + strings.Join(bars, "\n")
}

func renderDetails(r textstats.Report) string {
	var buf bytes.Buffer
	if err := stats.RenderReport(&buf, r); err != nil {
		return fmt.Sprintf("Failed to render report: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func wordColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Word", Width: 20},
		{Title: "Count", Width: 10},
		{Title: "Share", Width: 8},
	}
}

// wordRows keeps the overall rank of each entry when a filter hides others.
func wordRows(r textstats.Report, filter string) []table.Row {
	top := r.Top()
	rows := make([]table.Row, 0, len(top))
	for i, e := range top {
		if filter != "" && !strings.Contains(e.Word, filter) {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Word,
			stats.FormatCount(e.Count),
			fmt.Sprintf("%.2f%%", stats.Share(e.Count, r.Words())),
		})
	}
	return rows
}

func wordTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
