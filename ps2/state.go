package ps2

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// KeyboardState is the root value tying together one active scan-code set,
// one reassembler, one modifier tracker, and one event log. It owns the
// PendingCode, ModifierFlags, and EventLog; the EventLog owns its nodes.
//
// ProcessByte is the sole producer-side entry point and is meant to be
// called from a single goroutine at a time (the byte-source read loop),
// mirroring the single-threaded-per-IRQ-line discipline of spec.md §5: the
// pending code and modifier flags carry no lock of their own.
type KeyboardState struct {
	Set     ScanCodeSet
	Pending PendingCode
	Flags   ModifierFlags
	Log     *EventLog

	// Now is overridable for deterministic tests; defaults to time.Now.
	Now func() time.Time

	// id tracks which well-known table Set is, for the control surface.
	id setID

	// readerOpen enforces single-reader exclusion (spec.md property 8),
	// following the teacher's atomic.Bool-guarded-fd pattern (port_linux.go
	// Port.closed) rather than a blocking mutex, since Open must fail
	// immediately on a second opener instead of queuing.
	readerOpen atomic.Bool
}

// NewKeyboardState returns a state using the given active scan-code set.
func NewKeyboardState(set ScanCodeSet) *KeyboardState {
	s := &KeyboardState{
		Set: set,
		Log: NewEventLog(),
		Now: time.Now,
	}
	s.bindSetID()
	return s
}

// ProcessByte feeds one raw scan-code byte through the reassembler, applies
// the modifier tracker to any decoded key, and appends a KeyEntry to the
// log, per spec.md §4.2–§4.4. It never returns an error: all failure modes
// are recoverable and are handled by logging and dropping, matching the
// interrupt handler's inability to propagate errors (spec.md §7).
func (s *KeyboardState) ProcessByte(b byte) {
	key, result := s.Pending.Feed(s.Set, b)
	if result != decodeEmit {
		return
	}

	s.Flags.Apply(key)

	entry := KeyEntry{Date: s.Now(), Key: key}
	if !s.Log.Append(entry) {
		slog.Warn("ps2: event dropped after allocation failure", "key", key.Name)
	}
}
