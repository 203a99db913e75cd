package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"unsafe"

	"github.com/sclolus/ps2kbd/ctlioctl"
	"github.com/sclolus/ps2kbd/keyboard"
)

// serveControlConnections accepts connections on the control socket and
// dispatches each newline-delimited command through ctlioctl.Ioctl against
// the device's KeyboardState, the userspace stand-in for an ioctl(2) call
// on the character device's control handle (SPEC_FULL.md §4.7).
func serveControlConnections(ln net.Listener, dev *keyboard.Device) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go serveControlConn(conn, dev)
	}
}

// Commands: "gset" (get active scan-code set id), "sset <id>" (switch it),
// "gmod" (get the live ModifierFlags bitmask), one per line, one reply per
// line.
func serveControlConn(conn net.Conn, dev *keyboard.Device) {
	defer conn.Close()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		reply, err := dispatchControl(dev, scanner.Text())
		if err != nil {
			fmt.Fprintf(conn, "ERR %v\n", err)
			continue
		}
		fmt.Fprintf(conn, "OK %s\n", reply)
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("ps2kbdd: control connection error", "err", err)
	}
}

func dispatchControl(dev *keyboard.Device, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}

	h := dev.State()
	switch strings.ToLower(fields[0]) {
	case "gset":
		var v uint8
		if err := ctlioctl.Ioctl(h, ctlioctl.GSet(), uintptr(unsafe.Pointer(&v))); err != nil {
			return "", err
		}
		return strconv.Itoa(int(v)), nil

	case "sset":
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: sset <1|2>")
		}
		id, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return "", fmt.Errorf("invalid set id %q: %w", fields[1], err)
		}
		v := uint8(id)
		if err := ctlioctl.Ioctl(h, ctlioctl.SSet(), uintptr(unsafe.Pointer(&v))); err != nil {
			return "", err
		}
		return "", nil

	case "gmod":
		var v uint16
		if err := ctlioctl.Ioctl(h, ctlioctl.GMod(), uintptr(unsafe.Pointer(&v))); err != nil {
			return "", err
		}
		return strconv.Itoa(int(v)), nil

	default:
		return "", fmt.Errorf("unknown command %q", fields[0])
	}
}
