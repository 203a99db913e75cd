// Package replay implements bytesource.Source over an in-memory byte
// slice, the fixture a test or demo uses in place of real hardware: the
// same role original_source/test.c's stdin-driven loop played for manual
// smoke testing, made deterministic and reusable as a library type.
package replay

import (
	"fmt"
	"sync"
)

// Source replays a fixed sequence of bytes, one per ReadByte call, then
// blocks forever (mirroring a quiescent keyboard) unless Close is called.
type Source struct {
	mu     sync.Mutex
	cond   *sync.Cond
	bytes  []byte
	pos    int
	closed bool
}

// New returns a Source that will yield seq in order.
func New(seq []byte) *Source {
	s := &Source{bytes: append([]byte(nil), seq...)}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// ReadByte returns the next byte in the sequence, blocking once the
// sequence is exhausted until either more bytes are appended via Feed or
// the source is closed.
func (s *Source) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.pos >= len(s.bytes) && !s.closed {
		s.cond.Wait()
	}
	if s.pos >= len(s.bytes) {
		return 0, fmt.Errorf("replay: closed")
	}
	b := s.bytes[s.pos]
	s.pos++
	return b, nil
}

// Feed appends more bytes to the sequence, waking any blocked ReadByte.
func (s *Source) Feed(b ...byte) {
	s.mu.Lock()
	s.bytes = append(s.bytes, b...)
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Close ends the sequence: ReadByte still returns any bytes already queued,
// then fails with an error instead of blocking.
func (s *Source) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cond.Broadcast()
	return nil
}
