// compositorctl is a standalone introspection client for compositord's debug
// port. It shares no code with the compositor itself — the same shape as the
// teacher's ie32to64 converter tool — so its copy of the abstract-namespace
// dial/reply-port dance is intentionally duplicated rather than imported
// from the root package (a second package main cannot import another).
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/term"
)

const (
	debugDumpScene  = "DUMP_SCENE "
	recvBufferSize  = 4096
	recvTimeout     = 500 * time.Millisecond
	replyPortPrefix = "compositorctl-reply-"
)

func main() {
	debugPort := flag.String("debug-port", "arbor-compositor-debug", "compositord's debug port name")
	interval := flag.Duration("interval", 500*time.Millisecond, "poll interval for the watch command")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: compositorctl [options] <command>\n\nCommands:\n  dump-scene   print a one-line scene summary\n  watch        redraw the scene summary in place until q is pressed\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch flag.Arg(0) {
	case "dump-scene":
		var summary string
		summary, err = dumpScene(*debugPort)
		if err == nil {
			fmt.Println(summary)
		}
	case "watch":
		err = watchScene(*debugPort, *interval)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "compositorctl: %v\n", err)
		os.Exit(1)
	}
}

// watchScene puts stdin in raw mode (so a single 'q' keypress can end the
// loop without waiting on Enter) and redraws the scene summary on one line
// at the configured interval, grounded on the teacher's own
// term.MakeRaw/term.Restore pairing for its stdin host.
func watchScene(debugPort string, interval time.Duration) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	if err := syscall.SetNonblock(fd, true); err != nil {
		return fmt.Errorf("set stdin nonblocking: %w", err)
	}
	defer syscall.SetNonblock(fd, false)

	keyBuf := make([]byte, 1)
	for {
		summary, err := dumpScene(debugPort)
		if err != nil {
			summary = err.Error()
		}
		fmt.Print("\r\x1b[K" + summary)

		deadline := time.Now().Add(interval)
		for time.Now().Before(deadline) {
			n, _ := syscall.Read(fd, keyBuf)
			if n > 0 && keyBuf[0] == 'q' {
				fmt.Print("\r\n")
				return nil
			}
			time.Sleep(20 * time.Millisecond)
		}
	}
}

// dumpScene dials debugPortName, creates a throwaway reply port, asks for a
// scene dump and waits for the one-line answer.
func dumpScene(debugPortName string) (string, error) {
	replyName := replyPortPrefix + strconv.Itoa(os.Getpid())

	reply, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: "@" + replyName, Net: "unixgram"})
	if err != nil {
		return "", fmt.Errorf("bind reply port: %w", err)
	}
	defer reply.Close()

	req, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: "@" + debugPortName, Net: "unixgram"})
	if err != nil {
		return "", fmt.Errorf("dial debug port %q (is compositord running?): %w", debugPortName, err)
	}
	defer req.Close()

	if _, err := req.Write([]byte(debugDumpScene + replyName)); err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	reply.SetReadDeadline(time.Now().Add(recvTimeout))
	buf := make([]byte, recvBufferSize)
	n, err := reply.Read(buf)
	if err != nil {
		return "", fmt.Errorf("no reply from compositord: %w", err)
	}
	return string(buf[:n]), nil
}
