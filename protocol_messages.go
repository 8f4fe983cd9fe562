// protocol_messages.go - fixed-size packed wire records, little-endian
//
// Every message's first 32-bit word is its opcode (spec.md §4.I, §6). Title
// and port-name fields are bounded byte arrays holding NUL-terminated UTF-8,
// never slices, so every record is a fixed-size struct encoding/binary can
// write and read in one shot (protocol_codec.go).

package main

// Opcode identifies a wire message's shape and handler.
type Opcode uint32

const (
	OpCreateWindow Opcode = iota + 1
	OpDestroyWindow
	OpCommitBuffer
	OpMinimizeWindow
	OpRestoreWindow
	OpRegisterTaskbar
	OpInputUpdate
	OpWindowCreated        // reply to CREATE_WINDOW
	OpEventInput           // server -> client
	OpEventWindowLifecycle // server -> taskbar
)

const (
	titleFieldSize = 64
	portFieldSize  = 32
)

// InputEventType distinguishes the two INPUT_UPDATE event kinds.
type InputEventType uint32

const (
	InputEventKey   InputEventType = 1
	InputEventMouse InputEventType = 2
)

// LifecycleEvent is the event kind carried by EVENT_WINDOW_LIFECYCLE.
type LifecycleEvent uint32

const (
	LifecycleCreated LifecycleEvent = iota + 1
	LifecycleDestroyed
	LifecycleMinimized
	LifecycleRestored
	LifecycleFocused
)

// ClientEventType is the event kind carried by EVENT_INPUT (to a client).
type ClientEventType uint32

const (
	EventKeyDown ClientEventType = iota + 1
	EventKeyUp
	EventMouseDown
	EventMouseUp
)

// CreateWindowMsg is the CREATE_WINDOW request body (opcode excluded; the
// codec reads/writes the opcode word separately).
type CreateWindowMsg struct {
	Width, Height int32
	X, Y          int32
	Flags         uint32
	Title         [titleFieldSize]byte
	ReplyPort     [portFieldSize]byte
}

// WindowIDMsg is the body shared by DESTROY_WINDOW, COMMIT_BUFFER,
// MINIMIZE_WINDOW and RESTORE_WINDOW: a single window id.
type WindowIDMsg struct {
	WindowID uint32
}

type RegisterTaskbarMsg struct {
	ListenerPort [portFieldSize]byte
}

// InputUpdateMsg carries one hardware event. Per the REDESIGN FLAG in
// spec.md §9 (packed 16-bit coordinate halves risk sign-extension bugs on
// negative window-local coordinates), mouse coordinates are full int32
// fields rather than packed halves.
type InputUpdateMsg struct {
	EventType    uint32
	KeyCode      uint32
	KeyPressed   uint32 // 0 or 1
	MouseX       int32
	MouseY       int32
	MouseButtons uint32
}

// WindowCreatedMsg is the reply to a successful CREATE_WINDOW.
type WindowCreatedMsg struct {
	WindowID   uint32
	ShmHandle  uint64
	BufferSize uint32
}

// EventInputMsg is pushed to a client's reply port for KEY_DOWN/KEY_UP and
// MOUSE_DOWN/MOUSE_UP, with window-local coordinates in Param1/Param2 for
// the mouse events.
type EventInputMsg struct {
	EventType uint32
	Param1    int32
	Param2    int32
}

// EventWindowLifecycleMsg is pushed to the taskbar's listener port.
type EventWindowLifecycleMsg struct {
	EventType uint32
	WindowID  uint32
	Title     [titleFieldSize]byte
}

// packTitle truncates s to titleFieldSize-1 bytes and NUL-terminates it.
func packTitle(s string) [titleFieldSize]byte {
	var out [titleFieldSize]byte
	copy(out[:titleFieldSize-1], s)
	return out
}

// packPort truncates s to portFieldSize-1 bytes and NUL-terminates it.
func packPort(s string) [portFieldSize]byte {
	var out [portFieldSize]byte
	copy(out[:portFieldSize-1], s)
	return out
}

// unpackString returns the NUL-terminated string held in a fixed field.
func unpackString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
