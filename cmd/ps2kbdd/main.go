// ps2kbdd serves the PS/2 scan-code event log: it opens a byte source,
// feeds it to a keyboard.Device, and serves a lazy reader over a Unix
// socket listener, taking the place of the original driver's misc device
// registration.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sclolus/ps2kbd/bytesource"
	"github.com/sclolus/ps2kbd/keyboard"
	"github.com/sclolus/ps2kbd/linesource"
	"github.com/sclolus/ps2kbd/portsource"
	"github.com/sclolus/ps2kbd/ps2"
)

func main() {
	source := flag.String("source", "port", "byte source: port, line")
	portAddr := flag.Int64("port", portsource.DefaultPort, "I/O port address (source=port)")
	linePath := flag.String("line", "/dev/ttyUSB0", "tty device path (source=line)")
	lineTimeout := flag.Duration("line-timeout", 5*time.Second, "read timeout for source=line")
	socketPath := flag.String("socket", "/run/ps2kbdd.sock", "Unix socket to serve the reader on")
	controlSocketPath := flag.String("control-socket", "/run/ps2kbdd.ctl.sock", "Unix socket to serve the control surface on")
	scanSet := flag.Int("scan-set", 1, "active scan-code set: 1 or 2")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*source, *portAddr, *linePath, *lineTimeout, *socketPath, *controlSocketPath, *scanSet); err != nil {
		fmt.Fprintf(os.Stderr, "ps2kbdd: %v\n", err)
		os.Exit(1)
	}
}

func run(sourceKind string, portAddr int64, linePath string, lineTimeout time.Duration, socketPath, controlSocketPath string, scanSetID int) error {
	src, err := openSource(sourceKind, portAddr, linePath, lineTimeout)
	if err != nil {
		return fmt.Errorf("open byte source: %w", err)
	}

	set := ps2.Set1
	if scanSetID == 2 {
		set = ps2.Set2
	}
	dev := keyboard.New(src, keyboard.Options{ScanSet: set})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Remove(socketPath)
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	defer ln.Close()

	os.Remove(controlSocketPath)
	ctlLn, err := net.Listen("unix", controlSocketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", controlSocketPath, err)
	}
	defer ctlLn.Close()

	runErrc := make(chan error, 1)
	go func() { runErrc <- dev.Run(ctx) }()

	go serveConnections(ctx, ln, dev)
	go serveControlConnections(ctlLn, dev)

	slog.Info("ps2kbdd: serving", "socket", socketPath, "control_socket", controlSocketPath, "source", sourceKind)
	select {
	case <-ctx.Done():
		return <-runErrc
	case err := <-runErrc:
		return err
	}
}

func openSource(kind string, portAddr int64, linePath string, lineTimeout time.Duration) (bytesource.Source, error) {
	switch kind {
	case "port":
		return portsource.Open(portAddr)
	case "line":
		return linesource.Open(linePath, lineTimeout)
	default:
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
}

func serveConnections(ctx context.Context, ln net.Listener, dev *keyboard.Device) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("ps2kbdd: accept failed", "err", err)
			continue
		}
		go serveConn(ctx, conn, dev)
	}
}

func serveConn(ctx context.Context, conn net.Conn, dev *keyboard.Device) {
	defer conn.Close()
	r, err := dev.Open(ctx)
	if err != nil {
		fmt.Fprintf(conn, "ps2kbdd: %v\n", err)
		return
	}
	defer r.Close()
	io.Copy(conn, readerFunc(r.Read))
}

// readerFunc adapts r.Read (which never returns io.EOF and can return
// (0, nil) at the tail) into an io.Reader usable with io.Copy by polling
// briefly between empty reads instead of spinning.
type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	for {
		n, err := f(p)
		if n > 0 || err != nil {
			return n, err
		}
		time.Sleep(20 * time.Millisecond)
	}
}
