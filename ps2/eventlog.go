package ps2

import (
	"log/slog"
	"sync"
	"time"
)

// KeyEntry is one logged decode: a timestamp and a borrowed pointer into the
// active ScanCodeSet, which outlives every KeyEntry referencing it.
type KeyEntry struct {
	Date time.Time
	Key  *ScanKeyCode
}

type node struct {
	entry KeyEntry
	next  *node
}

// EventLog is an ordered, unbounded FIFO whose producer (Append) runs under
// a short-held lock from interrupt context and whose consumer (a Cursor)
// iterates in process context. Once linked, a node's entry is immutable
// until Drain, so a Cursor holding a node mid-list is never invalidated by
// concurrent Appends.
type EventLog struct {
	mu   sync.Mutex
	cond *sync.Cond
	head *node
	tail *node
	len  int

	// newNode allocates a node for an incoming entry. Overridable so tests
	// can exercise the "allocation failure, drop the event" path from
	// spec.md §4.4 without exhausting real memory.
	newNode func() *node
}

// NewEventLog returns an empty log ready to use.
func NewEventLog() *EventLog {
	l := &EventLog{newNode: func() *node { return &node{} }}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Append enqueues entry at the tail and wakes any waiter blocked on log
// growth. Returns false if node allocation failed (simulated via newNode
// returning nil), in which case the caller must reset the reassembler and
// drop the event per spec.md §4.4.
func (l *EventLog) Append(entry KeyEntry) bool {
	n := l.newNode()
	if n == nil {
		slog.Warn("ps2: failed to allocate key entry, dropping event")
		return false
	}
	n.entry = entry

	l.mu.Lock()
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
	l.mu.Unlock()

	l.cond.Broadcast()
	return true
}

// Len returns the current number of buffered entries.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.len
}

// Cursor is a consumer's position within an EventLog: next is the node that
// the following Next call will return, or nil at the tail.
type Cursor struct {
	next *node
}

// IterFrom returns a cursor whose first Next call yields the pos-th node
// from the head (0-indexed), or the last node if pos exceeds the log's
// length, per spec.md §4.4.
func (l *EventLog) IterFrom(pos int) *Cursor {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.head == nil {
		return &Cursor{}
	}
	n := l.head
	i := 0
	for i < pos && n.next != nil {
		n = n.next
		i++
	}
	return &Cursor{next: n}
}

// WaitNonEmpty blocks until the log holds at least one entry or ctx-like
// cancel returns true, mirroring the blocking-open semantics of spec.md
// §4.5. cancel is polled each time the condition variable wakes.
func (l *EventLog) WaitNonEmpty(canceled func() bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.len == 0 {
		if canceled != nil && canceled() {
			return false
		}
		l.cond.Wait()
	}
	return true
}

// Next advances the cursor. ok is false at the tail (end of currently
// buffered data); Next never blocks.
func (c *Cursor) Next() (KeyEntry, bool) {
	if c.next == nil {
		return KeyEntry{}, false
	}
	n := c.next
	c.next = n.next
	return n.entry, true
}

// Drain consumes and frees all nodes; used only at teardown.
func (l *EventLog) Drain() []KeyEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []KeyEntry
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.entry)
	}
	l.head, l.tail, l.len = nil, nil, 0
	return out
}
