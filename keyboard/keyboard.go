// Package keyboard wires a bytesource.Source to a ps2.KeyboardState: the
// ambient plumbing a kernel module gets for free from its IRQ registration
// and misc-device lifecycle, reimplemented here as an ordinary Go value
// plus a read loop goroutine.
package keyboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sclolus/ps2kbd/bytesource"
	"github.com/sclolus/ps2kbd/ps2"
)

// Options configures a Device. IRQDevice and Minor are carried only as
// metadata for parity with the original module's parameters; this package
// never touches a real interrupt line or device-node minor number.
type Options struct {
	IRQDevice string
	Minor     int
	ScanSet   ps2.ScanCodeSet
}

// Device ties one byte source to one ps2.KeyboardState and serves Open
// calls against the resulting event log.
type Device struct {
	opts   Options
	source bytesource.Source
	state  *ps2.KeyboardState
}

// New constructs a Device over an already-open byte source. Run closes the
// source when its context is canceled.
func New(source bytesource.Source, opts Options) *Device {
	set := opts.ScanSet
	if set == nil {
		set = ps2.Set1
	}
	return &Device{
		opts:   opts,
		source: source,
		state:  ps2.NewKeyboardState(set),
	}
}

// State exposes the underlying KeyboardState, e.g. for ctlioctl.Handle.
func (d *Device) State() *ps2.KeyboardState { return d.state }

// Open opens a reader over the device's event log, per spec.md §4.5.
func (d *Device) Open(ctx context.Context) (*ps2.Reader, error) {
	return ps2.Open(ctx, d.state)
}

// Run is the producer loop: the "interrupt context" analogue. It reads one
// byte at a time from the source and feeds it to the decoder until ctx is
// canceled or the source errs. It never blocks on the reader-exclusion
// lock, matching spec.md §5's producer/consumer split.
func (d *Device) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		for {
			b, err := d.source.ReadByte()
			if err != nil {
				errc <- fmt.Errorf("keyboard: byte source failed: %w", err)
				return
			}
			d.state.ProcessByte(b)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("keyboard: shutting down read loop", "reason", ctx.Err())
		if err := d.source.Close(); err != nil {
			slog.Warn("keyboard: error closing byte source", "err", err)
		}
		return nil
	case err := <-errc:
		return err
	}
}
