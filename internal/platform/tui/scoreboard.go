package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crystal-run/internal/registry"
	"github.com/vovakirdan/crystal-run/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForCard = 96  // Minimum width to show the stats card beside the table
	cardWidth       = 24  // Width of the stats card
	tableMinWidth   = 60  // Table width at which the date column grows
	maxRuns         = 100 // Max runs to load per mode
)

// Shared scoreboard colors.
var (
	sbBorder = lipgloss.Color("240")
	sbDim    = lipgloss.Color("241")
	sbAccent = lipgloss.Color("229")
	sbActive = lipgloss.Color("57")
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs of each mode with their totals.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int // Index into modes
	store     *storage.Store
	runs      []storage.Run
	stats     storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
	showCard  bool // Stats card beside the table rather than below it
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		modes:    registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		showCard: width >= minWidthForCard,
	}
	m.table = m.createTable()
	if len(m.modes) > 0 {
		m.loadRuns()
	}
	return m
}

// createTable sizes the runs table for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Hits", Width: 5},
		{Title: "Clean", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Seed", Width: 10},
		{Title: "Date", Width: 12},
	}

	// Leave room for borders, and the card when it sits beside the table
	tableWidth := m.width - 4
	if m.showCard {
		tableWidth -= cardWidth + 4
	}
	if tableWidth > tableMinWidth {
		columns[6].Width = min(tableWidth-52, 20)
	}

	// Header, mode strip, stats and help take about ten lines
	height := m.height - 10
	if !m.showCard {
		height -= 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(sbBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(sbAccent).
		Background(sbActive).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reads the best runs and aggregates of the selected mode. A
// missing store or a failed query leaves the board empty.
func (m *ScoreboardModel) loadRuns() {
	id := m.modes[m.mode].ID
	m.runs = nil
	m.stats = storage.GameStats{GameID: id}
	if m.store != nil {
		if runs, err := m.store.TopRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = *stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// runRow formats one run for the table.
func runRow(rank int, r storage.Run) table.Row {
	return table.Row{
		fmt.Sprintf("%d", rank),
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d", r.Hits),
		fmt.Sprintf("%.0f%%", cleanRate(r.Score, r.Hits)*100),
		formatDuration(r.Duration),
		fmt.Sprintf("%d", r.Seed),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// cleanRate is the share of obstacles cleared rather than hit.
func cleanRate(scored, hits int) float64 {
	total := scored + hits
	if total == 0 {
		return 0
	}
	return float64(scored) / float64(total)
}

// formatDuration prints seconds as m:ss.
func formatDuration(seconds float64) string {
	s := int(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// switchMode moves the selection by delta modes, wrapping at both ends.
func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.loadRuns()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showCard = m.width >= minWidthForCard
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and anything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(sbAccent)
	b.WriteString(titleStyle.Render(centerText("◆ BEST RUNS ◆", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderModeStrip(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sbBorder).
		Padding(0, 1)
	runs := boxStyle.Render(m.renderTableContent())

	if m.showCard {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", m.renderCard()))
	} else {
		b.WriteString(centerText(runs, m.width))
		b.WriteString("\n")
		b.WriteString(m.renderStatsLine())
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(sbDim).Render(m.help.View(m.keys)))

	return b.String()
}

// renderModeStrip shows every mode as a tab with the selected one lit.
// When the tabs do not fit only the selected mode is shown.
func (m ScoreboardModel) renderModeStrip() string {
	if len(m.modes) == 0 {
		return ""
	}
	tabStyle := lipgloss.NewStyle().Foreground(sbDim).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(sbAccent).
		Background(sbActive).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = activeStyle.Render(mode.Title)
		} else {
			tabs[i] = tabStyle.Render(mode.Title)
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(strip) > m.width-4 {
		return activeStyle.Render("< " + m.modes[m.mode].Title + " >")
	}
	return strip
}

// renderCard renders the selected mode's totals as a bordered card.
func (m ScoreboardModel) renderCard() string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sbBorder).
		Width(cardWidth).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(sbDim)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Totals"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", cardWidth-4))
	b.WriteString("\n")

	if m.stats.RunsCount == 0 {
		b.WriteString(labelStyle.Render("No runs yet"))
		return cardStyle.Render(b.String())
	}
	for _, kv := range m.statFields() {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", kv[0])))
		b.WriteString(kv[1])
		b.WriteString("\n")
	}
	return cardStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

// renderStatsLine is the narrow-window form of the card.
func (m ScoreboardModel) renderStatsLine() string {
	if m.stats.RunsCount == 0 {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, kv := range m.statFields()[:5] {
		parts = append(parts, kv[0]+": "+kv[1])
	}
	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(centerText(line, m.width)) + "\n"
}

// statFields lists the aggregate figures as label/value pairs.
func (m ScoreboardModel) statFields() [][2]string {
	st := m.stats
	fields := [][2]string{
		{"Runs", fmt.Sprintf("%d", st.RunsCount)},
		{"Best", fmt.Sprintf("%d", st.HighScore)},
		{"Average", fmt.Sprintf("%.1f", st.AvgScore)},
		{"Hits", fmt.Sprintf("%d", st.TotalHits)},
		{"Played", formatDuration(st.TotalSeconds)},
	}
	if !st.LastPlayed.IsZero() {
		fields = append(fields, [2]string{"Last", st.LastPlayed.Format("Jan 02")})
	}
	return fields
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(sbDim).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nJump a few blocks to set one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
