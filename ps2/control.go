package ps2

import "fmt"

// errUnknownSet is the sentinel wrapped into an Error by SetActiveSet.
var errUnknownSet = fmt.Errorf("unknown scan-code set id")

// setID records which of the two well-known tables is currently active, so
// the control surface (ctlioctl) can report and switch it by the small
// integer an operator expects (1 or 2) rather than a ScanCodeSet value.
type setID uint8

const (
	setUnknown setID = 0
	set1ID     setID = 1
	set2ID     setID = 2
)

// bindSetID records which table id s.Set corresponds to. Callers that
// construct a KeyboardState with NewKeyboardState(Set1) or NewKeyboardState
// (Set2) get this set automatically; a custom set is reported as id 0.
func (s *KeyboardState) bindSetID() {
	switch {
	case sameSet(s.Set, Set1):
		s.id = set1ID
	case sameSet(s.Set, Set2):
		s.id = set2ID
	default:
		s.id = setUnknown
	}
}

func sameSet(a, b ScanCodeSet) bool {
	return len(a) == len(b) && &a[0] == &b[0]
}

// ActiveSet reports the active table id for the control surface (1, 2, or
// 0 if the state was built from a custom table).
func (s *KeyboardState) ActiveSet() uint8 {
	return uint8(s.id)
}

// SetActiveSet switches the active scan-code set to 1 or 2. It resets the
// in-flight pending code, since a half-accumulated sequence under the old
// table has no meaning under the new one.
func (s *KeyboardState) SetActiveSet(id uint8) error {
	switch setID(id) {
	case set1ID:
		s.Set = Set1
		s.id = set1ID
	case set2ID:
		s.Set = Set2
		s.id = set2ID
	default:
		return wrapErr(fmt.Sprintf("ps2: set id %d", id), errUnknownSet)
	}
	s.Pending.Reset()
	return nil
}

// ModifierFlags reports the live modifier/latch bitmask for the control
// surface.
func (s *KeyboardState) ModifierFlags() uint16 {
	return uint16(s.Flags)
}
