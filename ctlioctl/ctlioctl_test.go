package ctlioctl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	set uint8
	mod uint16
	err error
}

func (f *fakeHandle) ActiveSet() uint8 { return f.set }
func (f *fakeHandle) SetActiveSet(id uint8) error {
	if f.err != nil {
		return f.err
	}
	f.set = id
	return nil
}
func (f *fakeHandle) ModifierFlags() uint16 { return f.mod }

func TestIoctlGSetReadsActiveSet(t *testing.T) {
	h := &fakeHandle{set: 2}
	var v uint8
	require.NoError(t, Ioctl(h, GSet(), uintptr(unsafe.Pointer(&v))))
	assert.Equal(t, uint8(2), v)
}

func TestIoctlSSetSwitchesActiveSet(t *testing.T) {
	h := &fakeHandle{set: 1}
	v := uint8(2)
	require.NoError(t, Ioctl(h, SSet(), uintptr(unsafe.Pointer(&v))))
	assert.Equal(t, uint8(2), h.set)
}

func TestIoctlGModReadsModifierFlags(t *testing.T) {
	h := &fakeHandle{mod: 0x41}
	var v uint16
	require.NoError(t, Ioctl(h, GMod(), uintptr(unsafe.Pointer(&v))))
	assert.Equal(t, uint16(0x41), v)
}

func TestIoctlUnknownRequest(t *testing.T) {
	h := &fakeHandle{}
	err := Ioctl(h, 0xdead, 0)
	assert.ErrorIs(t, err, ErrUnknownRequest)
}
