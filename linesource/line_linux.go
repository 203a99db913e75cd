// Package linesource implements bytesource.Source over a raw tty: a
// PS/2-to-USB/serial bridge or KVM capture device that exposes itself as a
// serial line rather than a raw I/O port. It is a direct adaptation of the
// teacher's Port/Termios type (port_linux.go): same termios ioctls, same
// raw-mode transform, same read-with-timeout via fdev/poll, generalized
// from "a general-purpose serial port" to "the one specific byte-at-a-time
// source that feeds a PS/2 decoder".
package linesource

import (
	"fmt"
	"sync/atomic"
	"syscall"
	"time"
	"unsafe"

	"github.com/daedaluz/fdev/poll"
	ioctl "github.com/daedaluz/goioctl"
)

// IFlag, OFlag, CFlag and LFlag are the termios mode bitfields needed to
// drive a line into raw mode, trimmed from the teacher's much larger set to
// just what MakeRaw touches.
type (
	IFlag uint32
	OFlag uint32
	CFlag uint32
	LFlag uint32
)

const (
	ignbrk = IFlag(0000001)
	brkint = IFlag(0000002)
	parmrk = IFlag(0000010)
	istrip = IFlag(0000040)
	inlcr  = IFlag(0000100)
	igncr  = IFlag(0000200)
	icrnl  = IFlag(0000400)
	ixon   = IFlag(0002000)

	opost = OFlag(0000001)

	csize  = CFlag(0000060)
	cs8    = CFlag(0000060)
	parenb = CFlag(0000400)

	echo   = LFlag(0000010)
	echonl = LFlag(0000100)
	icanon = LFlag(0000002)
	isig   = LFlag(0000001)
	iexten = LFlag(0100000)
)

// Termios mirrors struct termios, matching the teacher's Termios layout.
type Termios struct {
	Iflag IFlag
	Oflag OFlag
	Cflag CFlag
	Lflag LFlag
	Line  byte
	Cc    [19]byte
}

// MakeRaw clears the flags that would otherwise let the tty layer
// interpret, echo, or line-buffer the raw scan-code byte stream, identical
// in shape to the teacher's Termios.MakeRaw.
func (t *Termios) MakeRaw() {
	t.Iflag &^= ignbrk | brkint | parmrk | istrip | inlcr | igncr | icrnl | ixon
	t.Oflag &^= opost
	t.Lflag &^= echo | echonl | icanon | isig | iexten
	t.Cflag &^= csize | parenb
	t.Cflag |= cs8
}

// LineSource is a raw tty byte source, one byte per ReadByte call.
type LineSource struct {
	fd      int
	timeout time.Duration
	closed  atomic.Bool
}

// Open opens path (e.g. "/dev/ttyUSB0") and switches it to raw mode.
func Open(path string, readTimeout time.Duration) (*LineSource, error) {
	fd, err := syscall.Open(path, syscall.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("linesource: open %s: %w", path, err)
	}
	l := &LineSource{fd: fd, timeout: readTimeout}
	if err := l.makeRaw(); err != nil {
		syscall.Close(fd)
		return nil, err
	}
	return l, nil
}

func (l *LineSource) getAttr() (*Termios, error) {
	t := &Termios{}
	if err := ioctl.Ioctl(uintptr(l.fd), tcgets, uintptr(unsafe.Pointer(t))); err != nil {
		return nil, fmt.Errorf("linesource: tcgets: %w", err)
	}
	return t, nil
}

func (l *LineSource) setAttr(t *Termios) error {
	if err := ioctl.Ioctl(uintptr(l.fd), tcsets, uintptr(unsafe.Pointer(t))); err != nil {
		return fmt.Errorf("linesource: tcsets: %w", err)
	}
	return nil
}

func (l *LineSource) makeRaw() error {
	attrs, err := l.getAttr()
	if err != nil {
		return err
	}
	attrs.MakeRaw()
	return l.setAttr(attrs)
}

// ReadByte blocks, bounded by the configured read timeout (0 means no
// timeout), for the next byte off the line.
func (l *LineSource) ReadByte() (byte, error) {
	if l.closed.Load() {
		return 0, syscall.EBADF
	}
	if l.timeout > 0 {
		if err := poll.WaitInput(l.fd, l.timeout); err != nil {
			return 0, fmt.Errorf("linesource: wait: %w", err)
		}
	}
	var buf [1]byte
	n, err := syscall.Read(l.fd, buf[:])
	if err != nil {
		return 0, fmt.Errorf("linesource: read: %w", err)
	}
	if n != 1 {
		return 0, fmt.Errorf("linesource: short read")
	}
	return buf[0], nil
}

// Close releases the underlying file descriptor.
func (l *LineSource) Close() error {
	if !l.closed.Swap(true) {
		return syscall.Close(l.fd)
	}
	return nil
}
