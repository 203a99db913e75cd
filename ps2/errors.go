package ps2

import "errors"

// Error wraps a lower-level error with a short descriptive message,
// adapted directly from the teacher's wrapping shape so every package in
// this module reports I/O and protocol failures the same way.
type Error struct {
	msg string
	err error
}

func (e Error) Error() string {
	if e.msg != "" {
		if e.err != nil {
			return e.msg + ": " + e.err.Error()
		}
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e Error) Unwrap() error {
	return e.err
}

func wrapErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	return Error{msg: msg, err: err}
}

// ErrInterrupted is returned by Open when the blocking wait for the first
// event is canceled (Read never blocks and never returns it), the Go analogue of -ERESTARTSYS from
// spec.md §4.5 and §7: the caller is expected to retry.
var ErrInterrupted = errors.New("ps2: interrupted while waiting for an event")

// ErrAlreadyOpen is returned by Open when another reader already holds the
// device, per spec.md's single-reader exclusion (property 8).
var ErrAlreadyOpen = errors.New("ps2: device already open")

// ErrLineTooLong is returned by Reader.Read when the caller's buffer is too
// small to hold even the single oldest pending line, since spec.md §4.5
// requires partial reads to always be whole-line (never split mid-line).
var ErrLineTooLong = errors.New("ps2: read buffer too small for one line")
