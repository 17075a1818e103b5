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

	"github.com/vovakirdan/microgames/internal/registry"
	"github.com/vovakirdan/microgames/internal/storage"
)

const (
	boardWideMin  = 72 // below this the game list collapses into a header
	boardListW    = 22
	boardRowLimit = 50
)

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrame  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// scoreboardKeys are the scoreboard bindings. They double as the help bar.
type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Clear  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Clear, k.Back}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Scroll, k.Next, k.Prev}, {k.Clear, k.Back, k.Quit}}
}

var boardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
	Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x x", "clear game")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel browses stored scores one game at a time.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	store   *storage.Store
	stats   map[string]*storage.GameStats
	scores  []storage.ScoreEntry
	table   table.Model
	help    help.Model
	width   int
	height  int

	armed  bool   // first x pressed; a second one clears
	status string // one-shot feedback under the table

	back     bool
	quitting bool
}

// NewScoreboardModel opens the scoreboard on gameID, or on the first game
// when gameID is not registered. A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.current = i
		}
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 6
	if m.wide() {
		avail -= boardListW + 4
	}
	when := min(max(avail-18, 12), 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 10},
			{Title: "When", Width: when},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// reload pulls the current game's scores and every game's aggregates.
// Store errors leave the affected part empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		if stats, err := m.store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
		if scores, err := m.store.TopScores(m.gameID(), boardRowLimit); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) wide() bool {
	return m.width >= boardWideMin
}

func (m *ScoreboardModel) step(delta int) {
	if n := len(m.games); n > 0 {
		m.current = (m.current + delta + n) % n
		m.reload()
	}
}

// clear deletes the current game's scores.
func (m *ScoreboardModel) clear() {
	title := m.games[m.current].Title
	switch {
	case m.store == nil:
		m.status = "No score database"
	default:
		if err := m.store.ClearScores(m.gameID()); err != nil {
			m.status = fmt.Sprintf("Could not clear %s: %v", title, err)
			return
		}
		m.status = fmt.Sprintf("Cleared %s scores", title)
		m.reload()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		armed := m.armed
		m.armed, m.status = false, ""

		switch {
		case key.Matches(msg, boardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Back):
			m.back = true
		case key.Matches(msg, boardKeys.Next):
			m.step(1)
		case key.Matches(msg, boardKeys.Prev):
			m.step(-1)
		case key.Matches(msg, boardKeys.Clear) && len(m.games) > 0:
			if armed {
				m.clear()
			} else {
				m.armed = true
				m.status = fmt.Sprintf("Press x again to delete all %s scores", m.games[m.current].Title)
			}
		case key.Matches(msg, boardKeys.Scroll):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
	}
	return m, nil
}

// summary is the aggregate line for the current game.
func (m ScoreboardModel) summary() string {
	st := m.stats[m.gameID()]
	if st == nil || st.GamesCount == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Last: %s",
		st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04"))
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerStyled(boardTitle, spaced("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	board := m.boardView()
	if m.wide() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, boardFrame.Render(m.gameList()), "  ", board)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}
	b.WriteString(boardDim.Render(m.help.View(boardKeys)))
	return b.String()
}

// gameList is the sidebar: every game with its best score.
func (m ScoreboardModel) gameList() string {
	lines := make([]string, 0, len(m.games)+1)
	lines = append(lines, boardDim.Render("Games"))
	for i, g := range m.games {
		best := 0
		if st := m.stats[g.ID]; st != nil {
			best = st.HighScore
		}
		row := fmt.Sprintf("  %-*s%6d", boardListW-10, g.Title, best)
		if i == m.current {
			row = boardActive.Render("> " + row[2:])
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

// boardView is the current game's summary and table.
func (m ScoreboardModel) boardView() string {
	var head string
	if len(m.games) > 0 {
		head = m.games[m.current].Title
		if !m.wide() {
			head = "< " + head + " >"
		}
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardDim.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nFinish a run to get on the board!")
	}
	return boardFrame.Render(lipgloss.JoinVertical(lipgloss.Left,
		boardActive.Render(head), boardDim.Render(m.summary()), "", body))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
