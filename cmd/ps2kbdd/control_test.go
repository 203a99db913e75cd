package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sclolus/ps2kbd/keyboard"
	"github.com/sclolus/ps2kbd/replay"
)

func newTestDevice(t *testing.T) *keyboard.Device {
	t.Helper()
	src := replay.New(nil)
	dev := keyboard.New(src, keyboard.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go dev.Run(ctx)
	return dev
}

func TestDispatchControlGSet(t *testing.T) {
	dev := newTestDevice(t)
	reply, err := dispatchControl(dev, "gset")
	require.NoError(t, err)
	assert.Equal(t, "1", reply)
}

func TestDispatchControlSSetSwitchesActiveSet(t *testing.T) {
	dev := newTestDevice(t)
	_, err := dispatchControl(dev, "sset 2")
	require.NoError(t, err)

	reply, err := dispatchControl(dev, "gset")
	require.NoError(t, err)
	assert.Equal(t, "2", reply)
}

func TestDispatchControlSSetRejectsBadID(t *testing.T) {
	dev := newTestDevice(t)
	_, err := dispatchControl(dev, "sset 9")
	assert.Error(t, err)
}

func TestDispatchControlGMod(t *testing.T) {
	dev := newTestDevice(t)
	dev.State().ProcessByte(0x2a) // left shift down
	reply, err := dispatchControl(dev, "gmod")
	require.NoError(t, err)
	assert.NotEqual(t, "0", reply)
}

func TestDispatchControlUnknownCommand(t *testing.T) {
	dev := newTestDevice(t)
	_, err := dispatchControl(dev, "bogus")
	assert.Error(t, err)
}
