package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	minWidthForPanel = 90 // Stats panel goes beside the table from here on
	panelWidth       = 26
	maxScores        = 100
)

// ScoreFilter narrows the table to one outcome.
type ScoreFilter int

const (
	FilterAll ScoreFilter = iota
	FilterWins
	FilterLosses
)

func (f ScoreFilter) String() string {
	switch f {
	case FilterWins:
		return "Wins"
	case FilterLosses:
		return "Losses"
	default:
		return "All"
	}
}

func (f ScoreFilter) keep(e storage.ScoreEntry) bool {
	switch f {
	case FilterWins:
		return e.Outcome == core.OutcomeWin.String()
	case FilterLosses:
		return e.Outcome == core.OutcomeLoss.String()
	default:
		return true
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Filter}, {k.Back, k.Quit}}
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
		Filter: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f", "filter"),
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

// ScoreboardModel lists stored results for one game.
type ScoreboardModel struct {
	game      registry.GameInfo
	store     *storage.Store
	all       []storage.ScoreEntry
	scores    []storage.ScoreEntry // all, after the filter
	stats     *storage.GameStats
	filter    ScoreFilter
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the scores of the default game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		game:   registry.GameInfo{ID: registry.DefaultID, Title: registry.DefaultID},
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, g := range registry.List() {
		if g.ID == registry.DefaultID {
			m.game = g
		}
	}

	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 5},
		{Title: "Result", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 6
	if m.wide() {
		avail -= panelWidth + 4
	}
	if spare := avail - 57; spare > 0 {
		columns[4].Width += core.Min(spare, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads scores and stats from the store. Read errors show as an
// empty board.
func (m *ScoreboardModel) load() {
	m.all, m.stats = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(m.game.ID, maxScores); err == nil {
			m.all = scores
		}
		if stats, err := m.store.GetGameStats(m.game.ID); err == nil {
			m.stats = stats
		}
	}
	m.applyFilter()
}

func (m *ScoreboardModel) applyFilter() {
	m.scores = nil
	for _, e := range m.all {
		if m.filter.keep(e) {
			m.scores = append(m.scores, e)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Level),
			e.Outcome,
			player,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

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
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % 3
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(title.Render(centerText("HIGH SCORES - "+m.game.Title, m.width)))
	b.WriteString("\n")

	filter := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(filter.Render(centerText("Showing: "+m.filter.String(), m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableBox := box.Render(m.tableContent())
	if m.wide() {
		panel := box.Width(panelWidth).Render(m.statsPanel())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, "  ", panel))
	} else {
		if line := m.statsLine(); line != "" {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString(tableBox)
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if len(m.all) > 0 {
			return empty.Render("No " + strings.ToLower(m.filter.String()) + " yet.")
		}
		return empty.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// statsLine is the one-line summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  Wins: %d (%.0f%%)  Best: %d  Avg: %.0f",
		st.GamesCount, st.Wins, st.WinRate()*100, st.HighScore, st.AvgScore)
}

func (m ScoreboardModel) statsPanel() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return "Stats\n\nNo games yet"
	}

	rows := [][2]string{
		{"Games:", strconv.Itoa(st.GamesCount)},
		{"Wins:", fmt.Sprintf("%d (%.0f%%)", st.Wins, st.WinRate()*100)},
		{"Best:", strconv.Itoa(st.HighScore)},
		{"Avg:", fmt.Sprintf("%.0f", st.AvgScore)},
		{"Top level:", strconv.Itoa(st.BestLevel)},
		{"Total:", strconv.FormatInt(st.TotalScore, 10)},
		{"Last:", st.LastPlayed.Format("Jan 02 15:04")},
	}

	var b strings.Builder
	b.WriteString("Stats\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-11s%s\n", r[0], r[1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
