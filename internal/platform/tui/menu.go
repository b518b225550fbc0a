package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid-tui/internal/arkanoid"
	"github.com/vovakirdan/arkanoid-tui/internal/core"
)

// menuScreen is which selection screen the menu is showing.
type menuScreen int

const (
	screenMode menuScreen = iota
	screenLevel
	screenDifficulty
)

// Selection holds the user's choices from the start menu.
type Selection struct {
	GameID     string // "arkanoid" or "arkanoid_endless"
	Level      int    // 0 = start from beginning, otherwise 1-indexed
	Difficulty string // "easy", "normal", "hard" or "fixed"
}

// MenuModel is the Bubble Tea model for the start menu: mode, optional
// starting level, then difficulty.
type MenuModel struct {
	screen      menuScreen
	cursor      int
	levelCursor int
	diffCursor  int
	width       int
	height      int
	keyMapper   *KeyMapper
	selection   Selection
	choosing    bool
	wantScores  bool
	quitting    bool
	config      core.RuntimeConfig
}

var difficultyNames = []string{"easy", "normal", "hard", "fixed"}

// NewMenuModel creates a new start menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
		diffCursor: 1, // normal
		config:     cfg,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenMode:
		return m.handleModeKey(action)
	case screenLevel:
		return m.handleLevelKey(action)
	case screenDifficulty:
		return m.handleDifficultyKey(action)
	}
	return m, nil
}

func (m MenuModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 3 { // Campaign, Endless, Select Level, High Scores
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.selection.GameID = "arkanoid"
			m.screen = screenDifficulty
		case 1:
			m.selection.GameID = "arkanoid_endless"
			m.screen = screenDifficulty
		case 2:
			m.screen = screenLevel
			m.levelCursor = 0
		case 3:
			m.wantScores = true
			return m, tea.Quit
		}
	case MenuActionScores:
		m.wantScores = true
		return m, tea.Quit
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := len(arkanoid.ActivePack())

	switch action {
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selection.GameID = "arkanoid"
		m.selection.Level = m.levelCursor + 1 // 1-indexed
		m.screen = screenDifficulty
	case MenuActionBack:
		m.screen = screenMode
	}
	return m, nil
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyNames)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = difficultyNames[m.diffCursor]
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.screen = screenMode
		m.selection = Selection{}
	}
	return m, nil
}

// View renders the current menu screen.
func (m MenuModel) View() string {
	if m.quitting || m.wantScores {
		return ""
	}

	switch m.screen {
	case screenLevel:
		return m.viewLevelSelect()
	case screenDifficulty:
		return m.viewDifficultySelect()
	default:
		return m.viewModeSelect()
	}
}

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("A R K A N O I D", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	options := []string{
		fmt.Sprintf("Campaign (%d levels)", len(arkanoid.ActivePack())),
		"Endless Mode",
		"Select Level...",
		"High Scores",
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, l := range arkanoid.ActivePack() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, l.Name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m MenuModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	descriptions := []string{
		"Easy    - more lives, wider paddle, slower ball",
		"Normal  - the intended experience",
		"Hard    - fewer lives, narrow paddle, fast ball",
		"Fixed   - normal, but the ball never speeds up",
	}

	for i, desc := range descriptions {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+desc, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantScores
}

// Config returns the runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the start menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the start menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}
	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}
	if sel := m.Selected(); sel != nil {
		result.Selection = sel
	} else {
		result.Quit = true
	}

	return result, nil
}
