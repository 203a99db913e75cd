package keyboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sclolus/ps2kbd/replay"
)

func TestDeviceRunFeedsReplaySourceIntoReader(t *testing.T) {
	src := replay.New(nil)
	d := New(src, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	runErrc := make(chan error, 1)
	go func() { runErrc <- d.Run(ctx) }()

	openErrc := make(chan error, 1)
	go func() {
		r, err := d.Open(context.Background())
		if err != nil {
			openErrc <- err
			return
		}
		defer r.Close()
		openErrc <- nil
	}()

	time.Sleep(20 * time.Millisecond)
	src.Feed(0x1e, 0x9e) // A pressed, A released

	select {
	case err := <-openErrc:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Open never unblocked")
	}

	cancel()
	select {
	case err := <-runErrc:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after cancellation")
	}
}

func TestDeviceDefaultsToSet1WhenScanSetUnset(t *testing.T) {
	src := replay.New(nil)
	d := New(src, Options{})
	assert.EqualValues(t, 1, d.State().ActiveSet())
}
