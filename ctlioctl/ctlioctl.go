// Package ctlioctl implements the driver's control plane: a tiny set of
// ioctl request numbers, built with the teacher's own IOR/IOW request
// constructors, that let an operator query or switch the active scan-code
// set and read back the live modifier flags without going through the
// line-oriented event log.
package ctlioctl

import (
	"unsafe"

	ioctl "github.com/daedaluz/goioctl"
)

// Request numbers for the keyboard control device, namespaced under the
// 'K' magic the way the teacher namespaces its own ioctls under 'T'.
var (
	kbdIocGSet = ioctl.IOR('K', 1, unsafe.Sizeof(uint8(0)))  // get active set (1 or 2)
	kbdIocSSet = ioctl.IOW('K', 2, unsafe.Sizeof(uint8(0)))  // switch active set
	kbdIocGMod = ioctl.IOR('K', 3, unsafe.Sizeof(uint16(0))) // get ModifierFlags
)

// Handle is anything that can service the three control requests;
// ps2.KeyboardState implements it directly.
type Handle interface {
	ActiveSet() uint8
	SetActiveSet(uint8) error
	ModifierFlags() uint16
}

// Ioctl dispatches req against h, writing results into arg the way a real
// ioctl(2) call would write through a userspace pointer. arg must be a
// pointer of the type the request expects (*uint8 for kbdIocGSet/SSet,
// *uint16 for kbdIocGMod).
func Ioctl(h Handle, req uintptr, arg uintptr) error {
	switch req {
	case kbdIocGSet:
		*(*uint8)(unsafe.Pointer(arg)) = h.ActiveSet()
		return nil
	case kbdIocSSet:
		return h.SetActiveSet(*(*uint8)(unsafe.Pointer(arg)))
	case kbdIocGMod:
		*(*uint16)(unsafe.Pointer(arg)) = h.ModifierFlags()
		return nil
	default:
		return ErrUnknownRequest
	}
}

// GSet, SSet and GMod are exported accessors for the request numbers, for
// callers that want to issue them without reaching into the package's
// unexported vars.
func GSet() uintptr { return kbdIocGSet }
func SSet() uintptr { return kbdIocSSet }
func GMod() uintptr { return kbdIocGMod }
