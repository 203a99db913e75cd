package ps2

import "log/slog"

// PendingCode is the reassembler's accumulator for a multi-byte scan code
// under construction. The zero value is the Idle state.
//
// Invariant: Index == 0 iff Pending == false iff PendingCode == 0.
// Invariant: Index <= 8; Reset clears all three fields together.
type PendingCode struct {
	PendingCode uint64
	Pending     bool
	Index       int
}

// Reset returns the reassembler to Idle.
func (p *PendingCode) Reset() {
	p.PendingCode = 0
	p.Pending = false
	p.Index = 0
}

// decodeResult is what Feed reports after observing one byte.
type decodeResult int

const (
	decodeContinue decodeResult = iota // still accumulating, no hit yet
	decodeEmit                         // a full code was recognized
	decodeDropped                      // byte did not extend a valid prefix, or overflow
)

// Feed accumulates one interrupt-delivered byte, per spec.md §4.2: it first
// rejects bytes that cannot extend any entry's prefix, then appends, then
// attempts a full-code lookup against set. On decodeEmit the reassembler
// has already been reset and the returned *ScanKeyCode is the hit. On
// decodeDropped the reassembler has been reset and there is nothing to
// report but the warning already logged here.
func (p *PendingCode) Feed(set ScanCodeSet, b byte) (*ScanKeyCode, decodeResult) {
	next := p.nextAccumulator(b)
	if !set.PrefixMember(next, p.Index) {
		slog.Warn("ps2: dropping byte, not a valid scan-code prefix",
			"byte", b, "pending", p.PendingCode, "index", p.Index)
		p.Reset()
		return nil, decodeDropped
	}

	if p.Index == 8 {
		slog.Warn("ps2: pending code overflow, dropping", "pending", p.PendingCode)
		p.Reset()
		return nil, decodeDropped
	}
	if !p.Pending {
		p.PendingCode = uint64(b)
		p.Index = 1
		p.Pending = true
	} else {
		p.PendingCode = (p.PendingCode << 8) | uint64(b)
		p.Index++
	}

	if key := set.Find(p.PendingCode); key != nil {
		p.Reset()
		return key, decodeEmit
	}
	return nil, decodeContinue
}

// nextAccumulator computes what PendingCode would become if b were appended,
// without mutating p; used only to drive the prefix-membership check.
func (p *PendingCode) nextAccumulator(b byte) uint64 {
	if !p.Pending {
		return uint64(b)
	}
	return (p.PendingCode << 8) | uint64(b)
}
