package ps2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertIdle(t *testing.T, p *PendingCode) {
	t.Helper()
	assert.Equal(t, 0, p.Index)
	assert.False(t, p.Pending)
	assert.Equal(t, uint64(0), p.PendingCode)
}

func TestPendingSingleByteEmit(t *testing.T) {
	var p PendingCode
	key, result := p.Feed(Set1, 0x1e)
	assert.Equal(t, decodeEmit, result)
	if assert.NotNil(t, key) {
		assert.Equal(t, "A", key.Name)
	}
	assertIdle(t, &p) // property 3: reset idempotence after emit
}

func TestPendingMultiByteAccumulates(t *testing.T) {
	var p PendingCode

	_, result := p.Feed(Set1, 0xe0)
	assert.Equal(t, decodeContinue, result)
	assert.True(t, p.Pending)
	assert.Equal(t, 1, p.Index)

	_, result = p.Feed(Set1, 0x2a)
	assert.Equal(t, decodeContinue, result)
	assert.Equal(t, 2, p.Index)

	_, result = p.Feed(Set1, 0xe0)
	assert.Equal(t, decodeContinue, result)

	key, result := p.Feed(Set1, 0x37)
	assert.Equal(t, decodeEmit, result)
	if assert.NotNil(t, key) {
		assert.Equal(t, "print screen", key.Name)
		assert.Equal(t, Pressed, key.State)
	}
	assertIdle(t, &p)
}

func TestPendingPause(t *testing.T) {
	var p PendingCode
	bytes := []byte{0xE1, 0x1D, 0x45, 0xE1, 0x9D, 0xC5}
	var key *ScanKeyCode
	var result decodeResult
	for _, b := range bytes {
		key, result = p.Feed(Set1, b)
	}
	assert.Equal(t, decodeEmit, result)
	if assert.NotNil(t, key) {
		assert.Equal(t, "pause", key.Name)
	}
	assertIdle(t, &p)
}

func TestPendingDropOnImpossiblePrefix(t *testing.T) {
	var p PendingCode
	_, result := p.Feed(Set1, 0xFF)
	assert.Equal(t, decodeDropped, result)
	assertIdle(t, &p) // property 3
}

func TestPendingOverflowResets(t *testing.T) {
	// Force an overflow by feeding 9 bytes that are each individually a
	// valid prefix byte (0xe0 repeated is a prefix of itself at index 0
	// only; to reach index 8 we drive the internal counter directly).
	var p PendingCode
	p.Pending = true
	p.Index = 8
	p.PendingCode = 0x0102030405060708

	_, result := p.Feed(Set1, 0xe0)
	assert.Equal(t, decodeDropped, result)
	assertIdle(t, &p)
}

func TestReassemblyCorrectness(t *testing.T) {
	// property 1: S1 from spec.md §8.
	var p PendingCode
	var got []*ScanKeyCode
	for _, b := range []byte{0x1e, 0xa0} {
		if key, result := p.Feed(Set1, b); result == decodeEmit {
			got = append(got, key)
		}
	}
	if assert.Len(t, got, 2) {
		assert.Equal(t, "A", got[0].Name)
		assert.Equal(t, Pressed, got[0].State)
		assert.Equal(t, "D", got[1].Name)
		assert.Equal(t, Released, got[1].State)
	}
}
