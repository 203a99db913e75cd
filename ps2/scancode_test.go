package ps2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSingleByte(t *testing.T) {
	key := Set1.Find(0x1e)
	if assert.NotNil(t, key) {
		assert.Equal(t, "A", key.Name)
		assert.Equal(t, Pressed, key.State)
		assert.Equal(t, byte('a'), key.ASCII)
	}
}

func TestFindMultiByte(t *testing.T) {
	printScreen := Set1.Find(0xe02ae037)
	if assert.NotNil(t, printScreen) {
		assert.Equal(t, "print screen", printScreen.Name)
		assert.Equal(t, Pressed, printScreen.State)
	}

	pause := Set1.Find(0xe11d45e19dc5)
	if assert.NotNil(t, pause) {
		assert.Equal(t, "pause", pause.Name)
	}

	// Pause has no distinct release code and PrintScreen release has its
	// own literal code (spec.md §9 open question) -- neither should be
	// synthesized.
	assert.Nil(t, Set1.Find(0xe11d45e19dc6))
}

func TestFindUnknownCode(t *testing.T) {
	assert.Nil(t, Set1.Find(0xdeadbeef))
}

func TestPrefixMemberSoundness(t *testing.T) {
	// property 2: if PrefixMember(p, i) is false, no entry has p's high
	// byte as its (i+1)-th byte.
	for _, set := range []ScanCodeSet{Set1, Set2} {
		for _, candidate := range []uint64{0xff, 0x00, 0xe0, 0x1e} {
			got := set.PrefixMember(candidate, 0)
			var want bool
			for i := range set {
				if b, ok := nthByte(set[i].Code, 0); ok && b == byte(candidate) {
					want = true
					break
				}
			}
			assert.Equal(t, want, got, "candidate=%#x", candidate)
		}
	}
}

func TestPrintScreenPrefixIsAccumulating(t *testing.T) {
	// bytes E0 2A E0 37 must not resolve to anything before the 4th byte.
	assert.True(t, Set1.PrefixMember(0xe0, 0))
	assert.Nil(t, Set1.Find(0xe0))
	assert.True(t, Set1.PrefixMember(0xe02a, 1))
	assert.Nil(t, Set1.Find(0xe02a))
}

func TestSet2FixesSet1Typos(t *testing.T) {
	s1 := Set1.Find(0x88)
	s2 := Set2.Find(0x88)
	if assert.NotNil(t, s1) && assert.NotNil(t, s2) {
		assert.Equal(t, byte('6'), s1.ASCII, "Set1's 0x88 keeps the upstream typo")
		assert.Equal(t, byte('7'), s2.ASCII, "Set2 corrects it")
	}
}

func TestHasASCII(t *testing.T) {
	enter := Set1.Find(0x1c)
	backspace := Set1.Find(0xe)
	assert.True(t, enter.HasASCII())
	assert.False(t, backspace.HasASCII())
}
