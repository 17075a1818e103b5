package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microgames/internal/config"
)

// difficultyBlurbs describe each preset in the picker.
var difficultyBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "slow CPU, loose aim",
	config.DifficultyNormal: "the classic match",
	config.DifficultyHard:   "fast CPU, fast ball",
}

// DifficultyModel lets users choose a difficulty preset before a game
// that supports one.
type DifficultyModel struct {
	title     string
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    *config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a picker for the game titled title.
// The cursor starts on normal.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}
	return DifficultyModel{
		title:     title,
		presets:   presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		p := m.presets[m.cursor]
		m.chosen = &p
	case MenuActionBack:
		m.back = true
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(spaced(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, p.Title(), difficultyBlurbs[p])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Chosen returns the selected preset, or nil while the user is choosing.
func (m DifficultyModel) Chosen() *config.DifficultyPreset {
	return m.chosen
}

// IsBack returns true if the user backed out of the picker.
func (m DifficultyModel) IsBack() bool {
	return m.back
}

// IsQuitting returns true if the user requested to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// spaced upper-cases s and puts a space between letters.
func spaced(s string) string {
	letters := strings.Split(strings.ToUpper(s), "")
	return strings.Join(letters, " ")
}
