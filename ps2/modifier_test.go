package ps2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeldModifierSelfInverse(t *testing.T) {
	// property 4
	var f ModifierFlags
	shift := Set1.Find(0x2a) // left shift, pressed
	shiftUp := Set1.Find(0xaa)

	f.Apply(shift)
	assert.True(t, f&LeftShift != 0)
	f.Apply(shiftUp)
	assert.Equal(t, ModifierFlags(0), f)
}

func TestLatchParity(t *testing.T) {
	// property 5
	var f ModifierFlags
	caps := Set1.Find(0x3a) // CapsLock pressed

	for i := 0; i < 4; i++ {
		f.Apply(caps)
	}
	assert.Equal(t, ModifierFlags(0), f&CapsLock)

	f.Apply(caps)
	assert.NotZero(t, f&CapsLock)
}

func TestCapsLockReleaseIgnored(t *testing.T) {
	var f ModifierFlags
	capsPressed := Set1.Find(0x3a)
	capsReleased := Set1.Find(0xba)

	f.Apply(capsPressed)
	before := f
	f.Apply(capsReleased)
	assert.Equal(t, before, f, "release must not toggle a latch")
}

func TestShiftedMappingBijection(t *testing.T) {
	// property 6
	assert.Equal(t, len(hasShiftedValue), len(shiftedValues))
	seen := map[byte]bool{}
	for _, c := range shiftedValues {
		assert.False(t, seen[c], "duplicate shifted character %q", c)
		seen[c] = true
	}

	var f ModifierFlags
	f |= LeftShift
	for i, c := range hasShiftedValue {
		got := f.RenderASCII(&ScanKeyCode{ASCII: c})
		assert.Equal(t, shiftedValues[i], got)
	}
}

func TestRenderASCIINoValue(t *testing.T) {
	var f ModifierFlags
	backspace := Set1.Find(0xe)
	assert.Equal(t, byte(0), f.RenderASCII(backspace))
}

func TestRenderASCIIUppercasesLettersUnderShiftOrCaps(t *testing.T) {
	a := Set1.Find(0x1e)

	var shift ModifierFlags
	shift |= LeftShift
	assert.Equal(t, byte('A'), shift.RenderASCII(a))

	var caps ModifierFlags
	caps |= CapsLock
	assert.Equal(t, byte('A'), caps.RenderASCII(a))

	var none ModifierFlags
	assert.Equal(t, byte('a'), none.RenderASCII(a))
}

func TestCapsLockDoesNotAffectPunctuation(t *testing.T) {
	dash := Set1.Find(0xc)
	var caps ModifierFlags
	caps |= CapsLock
	assert.Equal(t, byte('-'), caps.RenderASCII(dash))
}

func TestModifierSequenceS2(t *testing.T) {
	// S2 from spec.md §8: 2A 1E 9E AA -> flags end at zero.
	var f ModifierFlags
	for _, code := range []uint64{0x2a, 0x1e, 0x9e, 0xaa} {
		key := Set1.Find(code)
		if assert.NotNil(t, key) {
			f.Apply(key)
		}
	}
	assert.Equal(t, ModifierFlags(0), f)
}
