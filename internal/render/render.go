// Package render draws a cube snapshot as an unfolded cross:
//
//	      U
//	  L   F   R   B
//	      D
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
)

// palette maps facelet colors to ANSI 256 colors.
var palette = map[cubestate.Color]lipgloss.Color{
	cubestate.White:  lipgloss.Color("15"),
	cubestate.Yellow: lipgloss.Color("11"),
	cubestate.Red:    lipgloss.Color("9"),
	cubestate.Orange: lipgloss.Color("208"),
	cubestate.Green:  lipgloss.Color("10"),
	cubestate.Blue:   lipgloss.Color("12"),
}

// Renderer draws snapshots either as colored blocks or as letters.
type Renderer struct {
	color  bool
	styles map[cubestate.Color]lipgloss.Style
}

// New creates a renderer. With color off each facelet is its letter code.
func New(color bool) *Renderer {
	r := &Renderer{color: color, styles: make(map[cubestate.Color]lipgloss.Style, len(palette))}
	for c, bg := range palette {
		r.styles[c] = lipgloss.NewStyle().Background(bg)
	}
	return r
}

func (r *Renderer) cell(c cubestate.Color) string {
	if r.color {
		return r.styles[c].Render("  ")
	}
	return c.String() + " "
}

// face renders one plane as three lines.
func (r *Renderer) face(s cubestate.Snapshot, f cubestate.Face) string {
	plane := s.Plane(f)
	lines := make([]string, 3)
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(r.cell(plane[row][col]))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Net renders the full cross.
func (r *Renderer) Net(s cubestate.Snapshot) string {
	faceWidth := lipgloss.Width(r.face(s, cubestate.FaceU))
	pad := strings.Repeat(" ", faceWidth+1)
	gap := " "

	top := lipgloss.JoinHorizontal(lipgloss.Top, pad, r.face(s, cubestate.FaceU))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		r.face(s, cubestate.FaceL), gap,
		r.face(s, cubestate.FaceF), gap,
		r.face(s, cubestate.FaceR), gap,
		r.face(s, cubestate.FaceB),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, pad, r.face(s, cubestate.FaceD))

	return lipgloss.JoinVertical(lipgloss.Left, top, "", middle, "", bottom)
}

// Status returns a one-line summary of a snapshot.
func Status(s cubestate.Snapshot, depth int) string {
	state := "scrambled"
	if s.IsSolved() {
		state = "solved"
	}
	if depth == 1 {
		return state + ", 1 move to undo"
	}
	return fmt.Sprintf("%s, %d moves to undo", state, depth)
}
