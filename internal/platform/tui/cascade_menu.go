package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/elemental-cascade/internal/config"
	"github.com/vovakirdan/elemental-cascade/internal/core"
)

// CascadeSelection holds the user's choice from the cascade setup menu.
type CascadeSelection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// cascadeModeOption pairs a menu label with the game variant it starts.
type cascadeModeOption struct {
	label  string
	gameID string
}

var cascadeModeOptions = []cascadeModeOption{
	{"Score Waves (advance by scoring)", "cascade"},
	{"Timed Waves (advance every interval)", "cascade_timed"},
}

var cascadeDifficultyOptions = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// CascadeModeModel lets users choose the wave mode and difficulty before
// a run starts.
type CascadeModeModel struct {
	cursor       int
	diffCursor   int
	inDifficulty bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    CascadeSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewCascadeModeModel creates a new setup menu model.
func NewCascadeModeModel(width, height int) CascadeModeModel {
	return CascadeModeModel{
		cursor:     0,
		diffCursor: 1, // Normal
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m CascadeModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CascadeModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CascadeModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDifficulty {
		return m.handleDifficultyKey(action)
	}
	return m.handleModeKey(action)
}

func (m CascadeModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(cascadeModeOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.GameID = cascadeModeOptions[m.cursor].gameID
		m.inDifficulty = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m CascadeModeModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(cascadeDifficultyOptions)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = cascadeDifficultyOptions[m.diffCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inDifficulty = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m CascadeModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDifficulty {
		return m.viewDifficultySelect()
	}
	return m.viewModeSelect()
}

func (m CascadeModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("E L E M E N T A L   C A S C A D E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select wave mode:", m.width))
	b.WriteString("\n\n")

	for i, opt := range cascadeModeOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m CascadeModeModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, preset := range cascadeDifficultyOptions {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, preset), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CascadeModeModel) Selected() *CascadeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CascadeModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CascadeModeModel) WantsBack() bool {
	return m.back
}

// RunCascadeModeSelector runs the setup menu and returns the selection.
func RunCascadeModeSelector(cfg core.RuntimeConfig) (*CascadeSelection, core.RuntimeConfig, error) {
	model := NewCascadeModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CascadeModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
