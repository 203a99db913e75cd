// Package portsource implements bytesource.Source by reading raw bytes
// directly off an x86 I/O port through /dev/port, the same access path
// original_source/test.c used to sanity-check the real kernel driver
// against port 0x60.
package portsource

import (
	"fmt"
	"sync/atomic"
	"syscall"
)

// PortSource reads one byte at a time from the given I/O port address
// (default 0x60, the keyboard data port) by seeking /dev/port before every
// read, since the port device is not stream-positioned the way a tty is.
type PortSource struct {
	port   int64
	fd     int
	closed atomic.Bool
}

// DefaultPort is the x86 keyboard data port, matching spec.md §6.
const DefaultPort = 0x60

// Open opens /dev/port for reading a single I/O port address.
func Open(port int64) (*PortSource, error) {
	if port == 0 {
		port = DefaultPort
	}
	fd, err := syscall.Open("/dev/port", syscall.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("portsource: open /dev/port: %w", err)
	}
	return &PortSource{port: port, fd: fd}, nil
}

// ReadByte blocks until one byte is available at the configured port.
func (p *PortSource) ReadByte() (byte, error) {
	if p.closed.Load() {
		return 0, syscall.EBADF
	}
	if _, err := syscall.Seek(p.fd, p.port, 0); err != nil {
		return 0, fmt.Errorf("portsource: seek to port %#x: %w", p.port, err)
	}
	var buf [1]byte
	n, err := syscall.Read(p.fd, buf[:])
	if err != nil {
		return 0, fmt.Errorf("portsource: read port %#x: %w", p.port, err)
	}
	if n != 1 {
		return 0, fmt.Errorf("portsource: short read from port %#x", p.port)
	}
	return buf[0], nil
}

// Close releases the underlying file descriptor.
func (p *PortSource) Close() error {
	if !p.closed.Swap(true) {
		return syscall.Close(p.fd)
	}
	return nil
}
