package ps2

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventLogFIFOOrder(t *testing.T) {
	// property 7
	log := NewEventLog()
	a := Set1.Find(0x1e)
	b := Set1.Find(0x9e)

	log.Append(KeyEntry{Date: time.Unix(1, 0), Key: a})
	log.Append(KeyEntry{Date: time.Unix(2, 0), Key: b})

	c := log.IterFrom(0)
	first, ok := c.Next()
	assert.True(t, ok)
	assert.Same(t, a, first.Key)

	second, ok := c.Next()
	assert.True(t, ok)
	assert.Same(t, b, second.Key)

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestEventLogIterFromBeyondLength(t *testing.T) {
	log := NewEventLog()
	a := Set1.Find(0x1e)
	log.Append(KeyEntry{Key: a})

	c := log.IterFrom(50)
	entry, ok := c.Next()
	assert.True(t, ok)
	assert.Same(t, a, entry.Key)
}

func TestEventLogAllocationFailureDropsEvent(t *testing.T) {
	log := NewEventLog()
	log.newNode = func() *node { return nil }

	ok := log.Append(KeyEntry{Key: Set1.Find(0x1e)})
	assert.False(t, ok)
	assert.Equal(t, 0, log.Len())
}

func TestEventLogDrain(t *testing.T) {
	log := NewEventLog()
	log.Append(KeyEntry{Key: Set1.Find(0x1e)})
	log.Append(KeyEntry{Key: Set1.Find(0x9e)})

	entries := log.Drain()
	assert.Len(t, entries, 2)
	assert.Equal(t, 0, log.Len())
	assert.Nil(t, log.IterFrom(0).next)
}

func TestEventLogWaitNonEmptyWakesOnAppend(t *testing.T) {
	log := NewEventLog()
	done := make(chan struct{})
	go func() {
		log.WaitNonEmpty(nil)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	log.Append(KeyEntry{Key: Set1.Find(0x1e)})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitNonEmpty did not wake on Append")
	}
}

func TestEventLogWaitNonEmptyCancel(t *testing.T) {
	log := NewEventLog()
	var canceled atomic.Bool
	done := make(chan bool)
	go func() {
		done <- log.WaitNonEmpty(canceled.Load)
	}()

	time.Sleep(10 * time.Millisecond)
	canceled.Store(true)
	log.cond.Broadcast()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("WaitNonEmpty did not observe cancellation")
	}
}
