package cubestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_StepBackAtFloor(t *testing.T) {
	floor := Capture(NewState())
	h := NewHistory(floor)

	got, ok := h.StepBack()
	assert.False(t, ok, "floor must not be popped")
	assert.True(t, got.Equal(floor))
	assert.Equal(t, 1, h.Len())
}

func TestHistory_PushAndStepBack(t *testing.T) {
	s := NewState()
	h := NewHistory(Capture(s))

	require.NoError(t, s.Turn(FaceR, Clockwise))
	first := Capture(s)
	h.Push(first)

	require.NoError(t, s.Turn(FaceR, Clockwise))
	h.Push(Capture(s))
	require.Equal(t, 3, h.Len())

	got, ok := h.StepBack()
	require.True(t, ok)
	assert.True(t, got.Equal(first))
	assert.True(t, h.Current().Equal(first))
	assert.Equal(t, 2, h.Len())

	got, ok = h.StepBack()
	require.True(t, ok)
	assert.True(t, got.IsSolved())

	_, ok = h.StepBack()
	assert.False(t, ok)
	assert.True(t, h.Floor().IsSolved())
}

func TestHistory_SnapshotsIsACopy(t *testing.T) {
	h := NewHistory(Capture(NewState()))
	list := h.Snapshots()
	list[0] = Snapshot{}

	assert.True(t, h.Floor().IsSolved())
	assert.Equal(t, Yellow, h.Floor().Facelet(FaceD, 0, 0))
}
