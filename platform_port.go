// platform_port.go - named datagram ports over abstract-namespace Unix sockets
//
// Grounded on runtime_ipc.go's IPCServer: named-socket bind, dial to an
// existing named socket, deadline-bounded read. Reworked from a stream
// net.Listen("unix", ...) JSON request/response protocol into the datagram
// net.ListenUnixgram packed-binary protocol spec.md §6 calls for, and named
// via Linux's abstract socket namespace (a "@name" address maps to a
// leading NUL byte) instead of a filesystem path under XDG_RUNTIME_DIR —
// there is no file to go stale, so the stale-socket dial-then-remove retry
// runtime_ipc.go needed has no counterpart here.

package main

import (
	"errors"
	"net"
	"time"
)

// maxDatagramSize bounds a single Recv; spec.md §6 calls for "bounded-size
// datagram semantics" and the largest message on the wire (CREATE_WINDOW)
// is well under this.
const maxDatagramSize = 4096

// ErrWouldBlock is returned by Recv(0) (or any Recv that times out) instead
// of blocking, matching spec.md §6's "non-blocking, timeout 0" requirement.
var ErrWouldBlock = errors.New("platform_port: would block")

// Port is a named, bounded datagram endpoint: Send to whatever it was
// bound or connected to, Recv from it with an explicit timeout.
type Port interface {
	Send(data []byte) error
	Recv(timeout time.Duration) ([]byte, error)
	Close() error
}

type unixgramPort struct {
	conn *net.UnixConn
}

func abstractAddr(name string) *net.UnixAddr {
	return &net.UnixAddr{Name: "@" + name, Net: "unixgram"}
}

// CreatePort binds a new named port for receiving, e.g. the compositor's
// client inbox or a client's own reply port.
func CreatePort(name string) (Port, error) {
	conn, err := net.ListenUnixgram("unixgram", abstractAddr(name))
	if err != nil {
		return nil, newErr(PlatformFatal, "create_port", name, err)
	}
	return &unixgramPort{conn: conn}, nil
}

// ConnectPort dials an existing named port once, so Send addresses it
// without a destination on every call. It does not retry; callers that need
// the spec's 10x10ms retry budget (CREATE_WINDOW's reply-port connect, §4.I)
// use ConnectPortRetry.
func ConnectPort(name string) (Port, error) {
	conn, err := net.DialUnix("unixgram", nil, abstractAddr(name))
	if err != nil {
		return nil, err
	}
	return &unixgramPort{conn: conn}, nil
}

// ConnectPortRetry attempts ConnectPort up to attempts times, sleep
// between tries, and returns the last error if all attempts fail. This is
// the compositor's only time-bounded action (spec.md §9): the retry budget
// must be applied consistently by every caller, so it lives here rather
// than being re-implemented per handler.
func ConnectPortRetry(name string, attempts int, sleep time.Duration) (Port, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		p, err := ConnectPort(name)
		if err == nil {
			return p, nil
		}
		lastErr = err
		if i < attempts-1 {
			PlatformSleep(sleep)
		}
	}
	return nil, newErr(ClientUnreachable, "connect_port_retry", name, lastErr)
}

func (p *unixgramPort) Send(data []byte) error {
	_, err := p.conn.Write(data)
	return err
}

// Recv reads one datagram, waiting at most timeout. timeout==0 sets an
// immediate deadline and returns ErrWouldBlock rather than parking, which is
// what the server loop's non-blocking drain relies on.
func (p *unixgramPort) Recv(timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		p.conn.SetReadDeadline(time.Now())
	} else {
		p.conn.SetReadDeadline(time.Now().Add(timeout))
	}
	buf := make([]byte, maxDatagramSize)
	n, err := p.conn.Read(buf)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ErrWouldBlock
		}
		return nil, err
	}
	return buf[:n], nil
}

func (p *unixgramPort) Close() error {
	return p.conn.Close()
}
