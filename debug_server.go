// debug_server.go - the introspection-only debug port compositorctl talks to
//
// New code: nothing in debug_monitor.go concerns a window scene graph, but
// the shape — dial a port, ask a question, print a one-line answer — is
// this repo's adaptation of that file's interactive-monitor role (spec.md
// §4.N, expansion). Distinct from the client-facing protocol in
// protocol_messages.go; clients never see this port. Requests carry their
// own reply-port name, the same request/reply shape CREATE_WINDOW uses,
// since a bound (not connected) datagram port can receive from anyone but
// cannot address a reply back without one.

package main

import "strings"

// debugDumpScene is the one request compositorctl issues today; its
// argument is the reply port name to connect to and answer on.
const debugDumpScene = "DUMP_SCENE "

// DebugServer answers scene-introspection requests on its own named port,
// never the client inbox.
type DebugServer struct {
	engine *RenderEngine
	port   Port
}

// NewDebugServer binds the debug port and wires it to engine.
func NewDebugServer(engine *RenderEngine, portName string) (*DebugServer, error) {
	port, err := CreatePort(portName)
	if err != nil {
		return nil, err
	}
	return &DebugServer{engine: engine, port: port}, nil
}

// Poll answers at most one queued debug request, non-blocking. The caller
// folds this into the same drain-per-tick loop the client inbox uses.
func (d *DebugServer) Poll() {
	msg, err := d.port.Recv(0)
	if err != nil {
		return
	}
	text := string(msg)
	if !strings.HasPrefix(text, debugDumpScene) {
		return
	}
	replyName := strings.TrimPrefix(text, debugDumpScene)
	reply, err := ConnectPort(replyName)
	if err != nil {
		return
	}
	defer reply.Close()
	reply.Send([]byte(d.engine.String()))
}

// Close releases the debug port.
func (d *DebugServer) Close() error {
	return d.port.Close()
}
