//go:build !headless

// platform_display_ebiten.go - Ebiten-windowed framebuffer backend
//
// Adapted from video_backend_ebiten.go's EbitenOutput: kept the
// vsyncChan-gated Start (block until the first Draw call proves the game
// loop is alive), the bufferMutex-guarded frame copy, and F11
// fullscreen-toggle/window-close detection. Dropped entirely: keyboard-to
// -byte-stream VT100 translation and clipboard paste, since this backend's
// job is raw mouse/key capture feeding INPUT_UPDATE (§4.H) into the input
// dispatcher, not a terminal's character stream. Input decoded in Update
// (Ebiten's own goroutine) is only ever queued, never applied directly —
// see InputSource/DrainInput in platform_display.go — so the engine is
// still mutated from a single goroutine (spec.md §5).

package main

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ebitenOutput struct {
	mu          sync.RWMutex
	running     bool
	window      *ebiten.Image
	config      DisplayConfig
	frameBuffer []byte
	vsyncChan   chan struct{}
	fullscreen  bool
	pending     []InputUpdateMsg
}

// NewEbitenDisplay constructs an Ebiten-backed FramebufferOutput sized to
// config. Mouse/key state decoded on Ebiten's own Update goroutine is only
// ever appended to the pending queue under eo.mu, never applied directly —
// DrainInput is how the server loop picks it up on its own goroutine.
func NewEbitenDisplay(config DisplayConfig) FramebufferOutput {
	return &ebitenOutput{
		config:      config,
		frameBuffer: make([]byte, config.Width*config.Height*4),
		vsyncChan:   make(chan struct{}, 1),
	}
}

func (eo *ebitenOutput) Start() error {
	eo.mu.Lock()
	if eo.running {
		eo.mu.Unlock()
		return nil
	}
	eo.running = true
	eo.mu.Unlock()

	ebiten.SetWindowSize(eo.config.Width*max(eo.config.Scale, 1), eo.config.Height*max(eo.config.Scale, 1))
	ebiten.SetWindowTitle("compositord")
	ebiten.SetWindowResizable(false)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("compositord: ebiten exited: %v\n", err)
		}
	}()

	<-eo.vsyncChan
	return nil
}

func (eo *ebitenOutput) Close() error {
	eo.mu.Lock()
	eo.running = false
	eo.mu.Unlock()
	return nil
}

func (eo *ebitenOutput) DisplayConfig() DisplayConfig {
	eo.mu.RLock()
	defer eo.mu.RUnlock()
	return eo.config
}

func (eo *ebitenOutput) Present(pixels []byte) error {
	eo.mu.Lock()
	copy(eo.frameBuffer, pixels)
	eo.mu.Unlock()
	return nil
}

// Update implements ebiten.Game: polls keyboard/mouse and queues
// translated INPUT_UPDATE-shaped events for DrainInput to pick up, and
// handles F11 fullscreen toggle and window-close detection (kept from
// the teacher).
func (eo *ebitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	eo.mu.RLock()
	running := eo.running
	eo.mu.RUnlock()
	if !running {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.mu.Lock()
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		eo.mu.Unlock()
	}

	eo.pollInput()
	return nil
}

// pollInput runs on Ebiten's own game-loop goroutine; it only ever appends
// to eo.pending under lock, never touches engine state directly.
func (eo *ebitenOutput) pollInput() {
	x, y := ebiten.CursorPosition()
	var buttons uint32
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= 1
	}

	eo.mu.Lock()
	defer eo.mu.Unlock()

	eo.pending = append(eo.pending, InputUpdateMsg{
		EventType:    uint32(InputEventMouse),
		MouseX:       int32(x),
		MouseY:       int32(y),
		MouseButtons: buttons,
	})

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		eo.pending = append(eo.pending, InputUpdateMsg{
			EventType:  uint32(InputEventKey),
			KeyCode:    uint32(key),
			KeyPressed: 1,
		})
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		eo.pending = append(eo.pending, InputUpdateMsg{
			EventType:  uint32(InputEventKey),
			KeyCode:    uint32(key),
			KeyPressed: 0,
		})
	}
}

// DrainInput implements InputSource: returns and clears everything queued
// since the last call. Safe to call concurrently with pollInput — both
// sides only ever touch eo.pending under eo.mu.
func (eo *ebitenOutput) DrainInput() []InputUpdateMsg {
	eo.mu.Lock()
	defer eo.mu.Unlock()
	if len(eo.pending) == 0 {
		return nil
	}
	out := eo.pending
	eo.pending = nil
	return out
}

func (eo *ebitenOutput) Draw(screen *ebiten.Image) {
	eo.mu.Lock()
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.config.Width, eo.config.Height)
	}
	eo.window.WritePixels(eo.frameBuffer)
	eo.mu.Unlock()

	screen.DrawImage(eo.window, nil)

	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *ebitenOutput) Layout(_, _ int) (int, int) {
	return eo.config.Width, eo.config.Height
}
