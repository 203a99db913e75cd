package ps2

// ModifierFlags is a bitfield of latched and held keyboard modifiers.
type ModifierFlags uint16

const (
	CapsLock ModifierFlags = 1 << iota
	NumLock
	ScrollLock
	LeftShift
	RightShift
	LeftCtrl
	RightCtrl
	LeftAlt
	RightAlt
	Escape
)

// modifierKind identifies which, if any, modifier a decoded key name
// controls, and how (held vs. latched). Precomputed once into a table keyed
// by name (REDESIGN FLAGS §1 of spec.md) so that IRQ-context dispatch never
// does more than a single map lookup on the decoded entry's Name.
type modifierKind int

const (
	modNone modifierKind = iota
	modLeftShift
	modRightShift
	modLeftCtrl
	modRightCtrl
	modLeftAlt
	modRightAlt
	modCapsLock
	modNumLock
	modScrollLock
	modEscape
)

// modifierTable mirrors ps2_keyboard_state.c's modifier_names/callbacks
// arrays, collapsed into one lookup keyed by the key's human-readable name.
var modifierTable = map[string]modifierKind{
	"escape":           modEscape,
	"left control":     modLeftCtrl,
	"right control":    modRightCtrl,
	"left shift":       modLeftShift,
	"right shift":      modRightShift,
	"CapsLock":         modCapsLock,
	"NumberLock":       modNumLock,
	"ScrollLock":       modScrollLock,
	"left alt":         modLeftAlt,
	"right alt (or altGr)": modRightAlt,
}

// Apply inspects key's Name against the modifier table and updates flags in
// place, per spec.md §4.3. It reports whether key was recognized as a
// modifier at all (informational only; the caller always publishes the
// event regardless).
func (f *ModifierFlags) Apply(key *ScanKeyCode) bool {
	kind, ok := modifierTable[key.Name]
	if !ok {
		return false
	}
	pressed := key.State == Pressed
	switch kind {
	case modEscape:
		f.setHeld(Escape, pressed)
	case modLeftCtrl:
		f.setHeld(LeftCtrl, pressed)
	case modRightCtrl:
		f.setHeld(RightCtrl, pressed)
	case modLeftShift:
		f.setHeld(LeftShift, pressed)
	case modRightShift:
		f.setHeld(RightShift, pressed)
	case modLeftAlt:
		f.setHeld(LeftAlt, pressed)
	case modRightAlt:
		f.setHeld(RightAlt, pressed)
	case modCapsLock:
		if pressed {
			*f ^= CapsLock
		}
	case modNumLock:
		if pressed {
			*f ^= NumLock
		}
	case modScrollLock:
		if pressed {
			*f ^= ScrollLock
		}
	}
	return true
}

func (f *ModifierFlags) setHeld(bit ModifierFlags, on bool) {
	if on {
		*f |= bit
	} else {
		*f &^= bit
	}
}

func (f ModifierFlags) shifted() bool {
	return f&(CapsLock|LeftShift|RightShift) != 0
}

// hasShiftedValue/shiftedValues are index-aligned: rendering hasShiftedValue[i]
// under Shift yields shiftedValues[i]. Kept in lockstep intentionally; see
// the bijection test in modifier_test.go (spec.md property 6).
var (
	hasShiftedValue = [...]byte{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '[', ']', '\\', '\'', ';', '/', '.', ',', '`'}
	shiftedValues   = [...]byte{'!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '_', '+', '{', '}', '|', '"', ':', '?', '>', '<', '~'}
)

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// RenderASCII implements name_with_modifiers from spec.md §4.3: 0 if key
// carries no ASCII value, else key's ASCII transformed by the current
// shift/caps state. Letters are uppercased under CapsLock or either Shift;
// punctuation is mapped to its shifted form under either Shift only.
func (f ModifierFlags) RenderASCII(key *ScanKeyCode) byte {
	if !key.HasASCII() {
		return 0
	}
	c := key.ASCII
	if !f.shifted() {
		return c
	}
	if isAlpha(c) {
		return toUpperASCII(c)
	}
	if f&(LeftShift|RightShift) == 0 {
		return c
	}
	for i, v := range hasShiftedValue {
		if v == c {
			return shiftedValues[i]
		}
	}
	return c
}
