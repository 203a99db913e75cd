package ps2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestState() *KeyboardState {
	s := NewKeyboardState(Set1)
	s.Now = func() time.Time { return time.Date(2026, 1, 1, 9, 30, 12, 0, time.UTC) }
	return s
}

func feed(s *KeyboardState, bytes ...byte) {
	for _, b := range bytes {
		s.ProcessByte(b)
	}
}

func drainLines(t *testing.T, log *EventLog) []string {
	t.Helper()
	var lines []string
	c := log.IterFrom(0)
	for {
		e, ok := c.Next()
		if !ok {
			break
		}
		lines = append(lines, formatLine(e))
	}
	return lines
}

func TestScenarioS1(t *testing.T) {
	s := newTestState()
	feed(s, 0x1e, 0xa0)
	lines := drainLines(t, s.Log)
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "09:30:12 A(0x1e) Pressed\n", lines[0])
		assert.Equal(t, "09:30:12 D(0xa0) Released\n", lines[1])
	}
}

func TestScenarioS2(t *testing.T) {
	s := newTestState()
	feed(s, 0x2a, 0x1e, 0x9e, 0xaa)
	lines := drainLines(t, s.Log)
	if assert.Len(t, lines, 4) {
		assert.Equal(t, "09:30:12 left shift(0x2a) Pressed\n", lines[0])
		assert.Equal(t, "09:30:12 A(0x1e) Pressed\n", lines[1])
		assert.Equal(t, "09:30:12 A(0x9e) Released\n", lines[2])
		assert.Equal(t, "09:30:12 left shift(0xaa) Released\n", lines[3])
	}
	assert.Equal(t, ModifierFlags(0), s.Flags)
}

func TestScenarioS3(t *testing.T) {
	s := newTestState()
	s.ProcessByte(0xe0)
	s.ProcessByte(0x2a)
	assert.Equal(t, 0, s.Log.Len(), "no line emitted mid-accumulation")
	s.ProcessByte(0xe0)
	s.ProcessByte(0x37)

	lines := drainLines(t, s.Log)
	if assert.Len(t, lines, 1) {
		assert.Equal(t, "09:30:12 print screen(0xe02ae037) Pressed\n", lines[0])
	}
}

func TestScenarioS4(t *testing.T) {
	s := newTestState()
	feed(s, 0xE1, 0x1D, 0x45, 0xE1, 0x9D, 0xC5)
	lines := drainLines(t, s.Log)
	if assert.Len(t, lines, 1) {
		assert.Equal(t, "09:30:12 pause(0xe11d45e19dc5) Pressed\n", lines[0])
	}
}

func TestScenarioS5(t *testing.T) {
	s := newTestState()
	s.ProcessByte(0xFF)
	assert.Equal(t, 0, s.Log.Len())
	assertIdle(t, &s.Pending)
}

func TestModifierAppliedBeforeRenderingLaterKeys(t *testing.T) {
	s := newTestState()
	// left shift down, then '1' pressed: should render as '!' if queried via
	// RenderASCII with the live flags (the log itself stores the raw key,
	// not a pre-rendered ASCII -- rendering is a reader-time concern).
	feed(s, 0x2a, 0x2)
	assert.Equal(t, byte('!'), s.Flags.RenderASCII(Set1.Find(0x2)))
}
