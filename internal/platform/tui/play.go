package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/prismslide/internal/board"
	"github.com/vovakirdan/prismslide/internal/solver"
	"github.com/vovakirdan/prismslide/internal/storage"
)

// hintMsg carries the result of a background hint search.
type hintMsg struct {
	result *solver.Result
	err    error
}

// PlayModel is the Bubble Tea model for the interactive play screen.
type PlayModel struct {
	board     *board.Board
	start     []board.Token // Starting layout, for reset
	tokens    []board.Token
	goals     []board.Goal
	selected  int // Index into tokens
	goalIdx   int // Index into goals
	moves     int
	maxStates int
	store     *storage.Store

	keys    PlayKeyMap
	help    help.Model
	width   int
	height  int
	status  string
	hinting bool
	won     bool
	saved   bool

	quitting bool
}

// NewPlayModel creates a play model over an assembled board. The store may
// be nil; wins are then not persisted.
func NewPlayModel(b *board.Board, tokens []board.Token, maxStates int, store *storage.Store, width, height int) PlayModel {
	start := make([]board.Token, len(tokens))
	copy(start, tokens)
	working := make([]board.Token, len(tokens))
	copy(working, tokens)

	h := help.New()
	h.ShowAll = false

	return PlayModel{
		board:     b,
		start:     start,
		tokens:    working,
		goals:     b.Goals(),
		maxStates: maxStates,
		store:     store,
		keys:      DefaultPlayKeyMap(),
		help:      h,
		width:     width,
		height:    height,
	}
}

// Init initializes the play model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// targetGoal returns the currently selected goal.
func (m PlayModel) targetGoal() board.Goal {
	return m.goals[m.goalIdx]
}

// Update handles messages for the play screen.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case hintMsg:
		m.hinting = false
		if msg.err != nil {
			m.status = fmt.Sprintf("hint: %v", msg.err)
			return m, nil
		}
		if len(msg.result.Actions) == 0 {
			m.status = "hint: already on the goal"
			return m, nil
		}
		first := msg.result.Actions[0]
		m.status = fmt.Sprintf("hint: %s (%d slides total)", first, len(msg.result.Actions))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextToken):
		m.selected = (m.selected + 1) % len(m.tokens)
		return m, nil

	case key.Matches(msg, m.keys.PrevToken):
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.tokens) - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.NextGoal):
		if m.won {
			return m, nil
		}
		m.goalIdx = (m.goalIdx + 1) % len(m.goals)
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		copy(m.tokens, m.start)
		m.moves = 0
		m.won = false
		m.saved = false
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		if m.hinting || m.won {
			return m, nil
		}
		m.hinting = true
		m.status = "searching..."
		return m, m.hintCmd()

	case key.Matches(msg, m.keys.Up):
		return m.slide(board.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.slide(board.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.slide(board.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.slide(board.DirRight)
	}

	return m, nil
}

// hintCmd runs the solver in the background and reports the result. The
// search targets the selected token when the goal accepts its color, or
// the first accepted token otherwise (wildcard goals accept any).
func (m PlayModel) hintCmd() tea.Cmd {
	b := m.board
	tokens := make([]board.Token, len(m.tokens))
	copy(tokens, m.tokens)
	goal := m.targetGoal()

	target := tokens[m.selected].Color
	if !goal.Accepts(target) {
		for _, t := range tokens {
			if goal.Accepts(t.Color) {
				target = t.Color
				break
			}
		}
	}
	opts := solver.Options{MaxStates: m.maxStates}

	return func() tea.Msg {
		res, err := solver.Solve(b, tokens, target, goal.Pos, opts)
		return hintMsg{result: res, err: err}
	}
}

// slide moves the selected token and checks for a win.
func (m PlayModel) slide(dir board.Dir) (tea.Model, tea.Cmd) {
	if m.won {
		return m, nil
	}

	mover := m.tokens[m.selected]
	move, err := solver.Simulate(m.board, m.tokens, mover.Color, dir)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if !move.Moved {
		// Blocked in place; not a move
		return m, nil
	}

	m.tokens[m.selected].Pos = move.Final
	m.moves++
	m.status = ""

	goal := m.targetGoal()
	if move.Final == goal.Pos && goal.Accepts(mover.Color) {
		if m.moves < solver.MinWinActions {
			m.status = fmt.Sprintf("too easy: a win needs at least %d slides, keep going", solver.MinWinActions)
			return m, nil
		}
		m.won = true
		m.status = fmt.Sprintf("solved in %d slides!", m.moves)
		m.saveWin(mover.Color, goal)
	}

	return m, nil
}

// saveWin persists a manual solve, once per win.
func (m *PlayModel) saveWin(color board.Color, goal board.Goal) {
	if m.store == nil || m.saved {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveSolve(storage.SolveRecord{
		BoardSig: m.board.Signature(),
		Target:   color.String(),
		GoalID:   goal.ID,
		Actions:  m.moves,
	})
	m.saved = true
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("PRISMSLIDE"))
	b.WriteString("\n\n")

	b.WriteString(RenderBoard(m.board, m.tokens, m.selected, m.targetGoal().Pos))
	b.WriteString("\n\n")

	goal := m.targetGoal()
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"token: %s   goal: %s %s at (%d,%d)   slides: %d",
		m.tokens[m.selected].Color,
		goal.Color, goal.Shape, goal.Pos.X, goal.Pos.Y,
		m.moves,
	)))
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
		if m.won {
			statusStyle = statusStyle.Bold(true)
		}
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsQuitting returns true if the user asked to quit.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// RunPlay runs the interactive play screen in the local terminal.
func RunPlay(b *board.Board, tokens []board.Token, maxStates int, store *storage.Store, width, height int) error {
	if len(b.Goals()) == 0 {
		return fmt.Errorf("board has no goal cells")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens to play with")
	}

	model := NewPlayModel(b, tokens, maxStates, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
