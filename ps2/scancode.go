// Package ps2 implements the scan-code decoder and event-log pipeline for
// a PS/2 keyboard: reassembly of multi-byte scan codes, modifier tracking,
// an ordered event log, and a lazy reader over that log.
package ps2

// KeyState is the press/release state carried by a ScanKeyCode and by the
// KeyEntry it produces.
type KeyState int

const (
	Pressed KeyState = iota
	Released
)

func (s KeyState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// ScanKeyCode is one static, immutable entry of a ScanCodeSet: a 1-to-8-byte
// scan code packed big-endian into Code, its human-readable Name, whether it
// signals a Pressed or Released transition, and an optional unshifted ASCII
// value (0 means "no text").
type ScanKeyCode struct {
	Code  uint64
	Name  string
	State KeyState
	ASCII byte
}

// HasASCII reports whether k produces text when rendered.
func (k *ScanKeyCode) HasASCII() bool {
	return k.ASCII != 0
}

// ScanCodeSet is an ordered, read-only sequence of ScanKeyCode. Lookup is
// linear; the first matching entry wins on duplicate codes, matching the
// shipped C table's (undocumented) behavior.
type ScanCodeSet []ScanKeyCode

// Find returns a pointer to the unique entry whose Code equals code, or nil.
// The returned pointer is stable for the lifetime of the set, which is
// static, so callers (KeyEntry in particular) may retain it indefinitely.
func (s ScanCodeSet) Find(code uint64) *ScanKeyCode {
	for i := range s {
		if s[i].Code == code {
			return &s[i]
		}
	}
	return nil
}

// nthByte extracts the (n+1)-th significant byte of a scan code, counting
// from the first non-zero byte (i.e. from the high end of however many
// bytes the code actually occupies). Mirrors
// original_source/scan_code_sets.c:get_nth_byte_in_key_code.
func nthByte(code uint64, n int) (byte, bool) {
	for i := 0; i < 8; i++ {
		shift := uint(56 - i*8)
		if (code>>shift)&0xFF != 0 {
			idx := i + n
			if idx > 7 {
				return 0, false
			}
			return byte(code >> uint(56-idx*8)), true
		}
	}
	return 0, false
}

// PrefixMember reports whether candidate could be the (byteCount+1)-byte
// prefix of some entry in s: some entry has, at byte position byteCount
// (0-indexed from the first significant byte), the same byte value as the
// most recently accumulated byte of candidate.
func (s ScanCodeSet) PrefixMember(candidate uint64, byteCount int) bool {
	want := byte(candidate)
	for i := range s {
		b, ok := nthByte(s[i].Code, byteCount)
		if ok && b == want {
			return true
		}
	}
	return false
}
