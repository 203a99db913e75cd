package ctlioctl

import "errors"

// ErrUnknownRequest is returned by Ioctl for a request number it does not
// recognize, mirroring ENOTTY from a real ioctl(2) call.
var ErrUnknownRequest = errors.New("ctlioctl: unknown request")
