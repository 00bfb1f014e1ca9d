// Package tui implements the interactive play screen.
package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/log"
	"github.com/SeamusWaldron/cubestate/internal/render"
)

// Puzzle is the engine surface the play screen drives.
type Puzzle interface {
	Turn(ctx context.Context, moves ...cubestate.Move) error
	Shuffle(ctx context.Context, n int) ([]cubestate.Move, error)
	Undo(ctx context.Context) error
	Snapshot() cubestate.Snapshot
	IsSolved() bool
	Depth() int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

const help = `r  turn Right clockwise
R  turn Right counter-clockwise
s  shuffle
u  undo
q  quit`

// Model is the bubbletea model for a play session.
type Model struct {
	ctx      context.Context
	puzzle   Puzzle
	renderer *render.Renderer
	shuffleN int

	status   string
	err      error
	won      bool
	quitting bool
}

// New creates a play screen. shuffleN is the number of turns the s key applies.
func New(ctx context.Context, p Puzzle, color bool, shuffleN int) Model {
	return Model{
		ctx:      ctx,
		puzzle:   p,
		renderer: render.New(color),
		shuffleN: shuffleN,
		status:   "Solve the cube. Undo steps back one committed turn.",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch key.String() {
	case "q", "Q", "ctrl+c", "esc":
		m.quitting = true
		m.status = "Bye."
		return m, tea.Quit
	case "r":
		m.apply(cubestate.R)
	case "R", "'":
		m.apply(cubestate.RPrime)
	case "s", "S":
		moves, err := m.puzzle.Shuffle(m.ctx, m.shuffleN)
		if err != nil {
			m.err = err
		} else {
			m.status = "Shuffled: " + cubestate.FormatMoves(moves)
		}
	case "u", "U":
		err := m.puzzle.Undo(m.ctx)
		switch {
		case errors.Is(err, cubestate.ErrNothingToUndo):
			m.status = "Nothing to undo, this is the starting state."
			return m, nil
		case err != nil:
			m.err = err
		default:
			m.status = "Undid one move."
		}
	default:
		m.status = "Unknown key " + key.String() + "."
		return m, nil
	}

	if m.err != nil {
		log.ErrorErr(log.CatTUI, "Action failed", m.err, "key", key.String())
		return m, nil
	}

	if m.puzzle.IsSolved() {
		m.won = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(mv cubestate.Move) {
	if err := m.puzzle.Turn(m.ctx, mv); err != nil {
		m.err = err
		return
	}
	m.status = "Turned " + mv.Notation() + "."
}

// Won reports whether the session ended with a solved cube.
func (m Model) Won() bool {
	return m.won
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.puzzle.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubestate"))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Net(snap))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(render.Status(snap, m.puzzle.Depth())))
	b.WriteString("\n")

	switch {
	case m.won:
		b.WriteString(wonStyle.Render("Solved!"))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	default:
		b.WriteString(m.status)
	}
	b.WriteString("\n")

	if !m.won && !m.quitting {
		b.WriteString("\n")
		b.WriteString(help)
		b.WriteString("\n")
	}
	return b.String()
}

// EnginePuzzle adapts an in-memory engine to Puzzle.
type EnginePuzzle struct {
	*cubestate.Engine
}

// Turn commits moves on the engine.
func (p EnginePuzzle) Turn(_ context.Context, moves ...cubestate.Move) error {
	return p.Engine.Apply(moves...)
}

// Shuffle shuffles the engine.
func (p EnginePuzzle) Shuffle(_ context.Context, n int) ([]cubestate.Move, error) {
	return p.Engine.Shuffle(n)
}

// Undo undoes on the engine.
func (p EnginePuzzle) Undo(_ context.Context) error {
	return p.Engine.Undo()
}
