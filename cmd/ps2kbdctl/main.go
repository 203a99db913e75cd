// ps2kbdctl is a small control and demonstration CLI for ps2kbdd. It has
// three subcommands: "tail", which connects to a running daemon's Unix
// socket and prints the event log as it grows; "replay", which drives an
// in-process keyboard.Device from a literal byte sequence (the S1-S6
// scenarios from the scan-code specification) without any real hardware;
// and "ctl", which talks to the daemon's control socket to query or switch
// the active scan-code set and read the live modifier flags.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/sclolus/ps2kbd/keyboard"
	"github.com/sclolus/ps2kbd/ps2"
	"github.com/sclolus/ps2kbd/replay"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "tail":
		err = runTail(os.Args[2:])
	case "replay":
		err = runReplay(os.Args[2:])
	case "ctl":
		err = runCtl(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ps2kbdctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ps2kbdctl <tail|replay|ctl> [flags]\n")
}

// runCtl dials the daemon's control socket and issues one of gset, sset, or
// gmod (SPEC_FULL.md §4.7), printing the daemon's reply.
func runCtl(args []string) error {
	fs := flag.NewFlagSet("ctl", flag.ExitOnError)
	socketPath := fs.String("socket", "/run/ps2kbdd.ctl.sock", "control Unix socket to connect to")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: ps2kbdctl ctl [-socket path] <gset|sset <1|2>|gmod>")
	}

	conn, err := net.Dial("unix", *socketPath)
	if err != nil {
		return fmt.Errorf("dial %s: %w", *socketPath, err)
	}
	defer conn.Close()

	fmt.Fprintf(conn, "%s\n", strings.Join(rest, " "))

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading reply: %w", err)
		}
		return fmt.Errorf("no reply from %s", *socketPath)
	}
	reply := scanner.Text()
	if strings.HasPrefix(reply, "ERR ") {
		return fmt.Errorf("%s", strings.TrimPrefix(reply, "ERR "))
	}
	fmt.Println(strings.TrimPrefix(reply, "OK "))
	return nil
}

func runTail(args []string) error {
	fs := flag.NewFlagSet("tail", flag.ExitOnError)
	socketPath := fs.String("socket", "/run/ps2kbdd.sock", "Unix socket to connect to")
	fs.Parse(args)

	conn, err := net.Dial("unix", *socketPath)
	if err != nil {
		return fmt.Errorf("dial %s: %w", *socketPath, err)
	}
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		fmt.Println(scanner.Text())
	}
	return scanner.Err()
}

// runReplay decodes a comma-separated list of hex scan-code bytes (e.g.
// "1e,9e" for A pressed then released) through an in-process
// keyboard.Device and prints the resulting event-log lines, exercising
// the same path ps2kbdd's byte-source loop does.
func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	bytesFlag := fs.String("bytes", "", "comma-separated hex scan-code bytes, e.g. 1e,9e")
	scanSetID := fs.Int("scan-set", 1, "active scan-code set: 1 or 2")
	fs.Parse(args)

	seq, err := parseHexBytes(*bytesFlag)
	if err != nil {
		return err
	}

	set := ps2.Set1
	if *scanSetID == 2 {
		set = ps2.Set2
	}

	src := replay.New(seq)
	dev := keyboard.New(src, keyboard.Options{ScanSet: set})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan struct{})
	go func() {
		dev.Run(ctx)
		close(runDone)
	}()

	r, err := dev.Open(context.Background())
	if err != nil {
		return fmt.Errorf("open reader: %w", err)
	}
	defer r.Close()

	src.Close() // no more bytes after the fixed sequence
	<-runDone   // Run returns once every queued byte has been decoded

	buf := make([]byte, 4096)
	n, err := r.Read(buf)
	if err != nil {
		return err
	}
	fmt.Print(string(buf[:n]))
	return nil
}

func parseHexBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("no bytes given, pass -bytes=1e,9e")
	}
	parts := strings.Split(s, ",")
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q: %w", p, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}
