package ps2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlActiveSetReportedOnConstruction(t *testing.T) {
	s1 := NewKeyboardState(Set1)
	assert.EqualValues(t, 1, s1.ActiveSet())

	s2 := NewKeyboardState(Set2)
	assert.EqualValues(t, 2, s2.ActiveSet())
}

func TestControlSetActiveSetSwitchesTableAndResetsPending(t *testing.T) {
	s := newTestState()
	s.ProcessByte(0xe0) // start accumulating under Set1
	require.True(t, s.Pending.Pending)

	require.NoError(t, s.SetActiveSet(2))
	assert.EqualValues(t, 2, s.ActiveSet())
	assert.False(t, s.Pending.Pending, "switching tables drops any half-read code")

	feed(s, 0x1c)
	lines := drainLines(t, s.Log)
	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0], "Pressed")
	}
}

func TestControlSetActiveSetRejectsUnknownID(t *testing.T) {
	s := newTestState()
	err := s.SetActiveSet(9)
	assert.Error(t, err)
}

func TestControlModifierFlagsMirrorsLiveState(t *testing.T) {
	s := newTestState()
	s.ProcessByte(0x2a) // left shift down
	assert.NotEqual(t, uint16(0), s.ModifierFlags())
}
