// main.go - compositord process entry point
//
// Grounded on the teacher's own root-level main.go: construct subsystems,
// wire them, run. Unlike the teacher's cmd/ie32to64 (a fully standalone
// tool with no shared code), this binary IS the root package, so it lives
// at repo root rather than under cmd/ — a second package main under cmd/
// cannot import this one (Go disallows importing a "main" package), and
// splitting the root into a library package purely to host one binary
// under cmd/ would be churn with no reader benefit. compositorctl, which
// genuinely has no shared code with the engine, keeps the teacher's
// cmd/ie32to64 shape.

package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	width := flag.Int("width", 1280, "framebuffer width")
	height := flag.Int("height", 800, "framebuffer height")
	scale := flag.Int("scale", 1, "window scale factor (non-headless builds only)")
	inboxName := flag.String("inbox", "arbor-compositor-inbox", "named port clients send requests to")
	debugName := flag.String("debug-port", "arbor-compositor-debug", "named port compositorctl talks to")
	flag.Parse()

	if err := run(*width, *height, *scale, *inboxName, *debugName); err != nil {
		fmt.Fprintf(os.Stderr, "compositord: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height, scale int, inboxName, debugName string) error {
	engine := NewRenderEngine(DisplayConfig{Width: width, Height: height, Scale: scale})
	server := NewServer(engine, stdLogger{})

	display := NewEbitenDisplay(engine.Display)
	if err := display.Start(); err != nil {
		return newErr(PlatformFatal, "run", "display start", err)
	}
	defer display.Close()

	inbox, err := CreatePort(inboxName)
	if err != nil {
		return err
	}
	defer inbox.Close()

	debug, err := NewDebugServer(engine, debugName)
	if err != nil {
		return err
	}
	defer debug.Close()

	loop := NewServerLoop(server, engine, display, inbox)

	// The debug server's poll is folded into the same frame cadence as the
	// client inbox rather than given its own goroutine, preserving the
	// single-threaded-owner invariant (spec.md §5).
	return runLoopWithDebug(loop, debug)
}

func runLoopWithDebug(loop *ServerLoop, debug *DebugServer) error {
	for {
		debug.Poll()
		done, err := loop.Tick()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
