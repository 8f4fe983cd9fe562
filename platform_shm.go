// platform_shm.go - shared-memory segments backing one window's pixels
//
// Grounded on the teacher's headless/non-headless build-tag split
// (video_backend_headless.go vs video_backend_ebiten.go): the concrete
// segment implementation lives in platform_shm_unix.go (/dev/shm mmap,
// golang.org/x/sys/unix) or platform_shm_headless.go (plain Go slice, for
// sandboxed test execution), but both satisfy this same SharedMemory shape
// and both satisfy Window's PixelMemory interface.

package main

import "sync/atomic"

// ShmHandle is the synthetic, process-local identifier handed to the client
// in WINDOW_CREATED. spec.md §6 treats the hand-off of a real OS handle
// across the process boundary as a platform-specific detail already out of
// scope, so this is just a monotonic counter mapped internally to the open
// segment.
type ShmHandle uint64

var nextShmHandle atomic.Uint64

func allocShmHandle() ShmHandle {
	return ShmHandle(nextShmHandle.Add(1))
}

// SharedMemory is a window's owned pixel-carrying segment, sized exactly
// width*height*4 bytes at creation and fixed for its lifetime (spec.md §3).
type SharedMemory struct {
	handle ShmHandle
	bytes  []byte
	closer func() error
}

// Handle returns the segment's synthetic handle.
func (s *SharedMemory) Handle() ShmHandle { return s.handle }

// Bytes returns the raw backing bytes, row-major ARGB, no copy.
func (s *SharedMemory) Bytes() []byte { return s.bytes }

// Pixels views the segment as Color words. This aliases s.bytes; every call
// returns a view over the same backing array (spec.md §9's zero-copy
// contract — callers must not expect isolation between calls).
func (s *SharedMemory) Pixels() []Color {
	return bytesToColors(s.bytes)
}

// Close releases the segment.
func (s *SharedMemory) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
