package ps2

import (
	"context"
	"fmt"
)

// Reader is a single consumer's lazy, cursor-based view over a
// KeyboardState's event log. Exactly one Reader may be open on a
// KeyboardState at a time (spec.md property 8); Open enforces this with a
// non-blocking try-lock rather than queuing a second opener.
type Reader struct {
	state  *KeyboardState
	cursor *Cursor
	lines  [][]byte // formatted, not-yet-delivered lines, oldest first
}

// Open acquires the reader-exclusion lock for state and blocks until the
// log is non-empty or ctx is canceled, implementing the Closed->Opening
// transition of spec.md §4.5. A second concurrent Open on the same state
// fails immediately with ErrAlreadyOpen.
func Open(ctx context.Context, state *KeyboardState) (*Reader, error) {
	if !state.readerOpen.CompareAndSwap(false, true) {
		return nil, ErrAlreadyOpen
	}

	canceled := func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	// WaitNonEmpty blocks on the log's condition variable; a cancellation
	// needs to also wake that wait, so we race it against ctx.Done in a
	// helper goroutine that re-broadcasts the condition. It takes the log's
	// lock first so the broadcast cannot fall between WaitNonEmpty's cancel
	// check and its Wait.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			state.Log.mu.Lock()
			state.Log.cond.Broadcast()
			state.Log.mu.Unlock()
		case <-done:
		}
	}()

	if !state.Log.WaitNonEmpty(canceled) {
		state.readerOpen.Store(false)
		return nil, ErrInterrupted
	}

	return &Reader{state: state, cursor: state.Log.IterFrom(0)}, nil
}

// Close releases the reader-exclusion lock, the Reading/Opening->Closed
// transition of spec.md §4.5.
func (r *Reader) Close() error {
	r.state.readerOpen.Store(false)
	return nil
}

// Read copies as many whole formatted lines as fit in p, and never blocks.
// When its queue of formatted lines is empty it first advances the cursor
// past every entry currently in the log and queues their lines; lines that
// do not fit in p stay queued for the next call. Once the
// cursor reaches the tail it returns (0, nil), matching spec.md §4.5 ("a
// single read() returns all currently buffered lines and then returns zero
// bytes") and its "partial reads are always well-formed (whole lines only)"
// invariant: a line is never split across two Read calls. If the first
// pending line alone is longer than p, it returns ErrLineTooLong without
// consuming the line, leaving it for a Read call with a larger buffer.
func (r *Reader) Read(p []byte) (int, error) {
	if len(r.lines) == 0 {
		r.fill()
	}
	if len(r.lines) == 0 {
		return 0, nil
	}

	n := 0
	i := 0
	for i < len(r.lines) {
		line := r.lines[i]
		if n+len(line) > len(p) {
			break
		}
		copy(p[n:], line)
		n += len(line)
		i++
	}
	r.lines = r.lines[i:]

	if n == 0 {
		return 0, ErrLineTooLong
	}
	return n, nil
}

func (r *Reader) fill() {
	for {
		entry, ok := r.cursor.Next()
		if !ok {
			return
		}
		r.lines = append(r.lines, []byte(formatLine(entry)))
	}
}

// Seek repositions the cursor to the line'th entry from the head (whence is
// always io.SeekStart-like; PS/2 event lines have no fixed byte width so
// only line-index seeking is supported, mirroring the source's use of
// seq_lseek over a seq_file rather than byte-offset lseek).
func (r *Reader) Seek(line int64) {
	r.cursor = r.state.Log.IterFrom(int(line))
	r.lines = nil
}

// formatLine renders one entry exactly as spec.md §6 specifies:
// "HH:MM:SS <name>(0x<code>) <Pressed|Released>\n", hours mod 24, code in
// lowercase hex without leading zeros.
func formatLine(e KeyEntry) string {
	t := e.Date
	hh := t.Hour() % 24
	return fmt.Sprintf("%02d:%02d:%02d %s(0x%x) %s\n", hh, t.Minute(), t.Second(), e.Key.Name, e.Key.Code, e.Key.State)
}
