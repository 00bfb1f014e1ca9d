package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestate"
)

func trimmedLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestNet_PlainSolved(t *testing.T) {
	out := New(false).Net(cubestate.New().Snapshot())
	lines := trimmedLines(out)
	require.Len(t, lines, 11)

	assert.Equal(t, "       W W W", lines[0])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "G G G  R R R  B B B  O O O", lines[4])
	assert.Equal(t, "       Y Y Y", lines[10])
}

func TestNet_PlainAfterR(t *testing.T) {
	e := cubestate.New()
	require.NoError(t, e.TurnRight(cubestate.Clockwise))

	lines := trimmedLines(New(false).Net(e.Snapshot()))
	assert.Equal(t, "       W W R", lines[0])
	assert.Equal(t, "G G G  R R Y  B B B  W O O", lines[4])
	assert.Equal(t, "       Y Y O", lines[8])
}

func TestNet_ColorKeepsShape(t *testing.T) {
	out := New(true).Net(cubestate.New().Snapshot())
	assert.Len(t, strings.Split(out, "\n"), 11)
	assert.NotContains(t, out, "W", "color mode draws blocks, not letters")
}

func TestStatus(t *testing.T) {
	e := cubestate.New()
	assert.Equal(t, "solved, 0 moves to undo", Status(e.Snapshot(), e.Depth()))

	require.NoError(t, e.TurnRight(cubestate.Clockwise))
	assert.Equal(t, "scrambled, 1 move to undo", Status(e.Snapshot(), e.Depth()))
}
