//go:build !headless

// platform_shm_unix.go - /dev/shm-backed mmap segments

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CreateSharedMemory opens a fresh /dev/shm-backed segment of exactly size
// bytes. mmap zero-fills new pages, which is fully transparent black
// (0x00000000), not the opaque black CREATE_WINDOW must initialize new
// windows to (spec.md §4.D) — the handler is responsible for writing
// ColorOpaqueBlack across the segment itself.
func CreateSharedMemory(size int) (*SharedMemory, error) {
	if size <= 0 {
		return nil, newErr(Resource, "create_shm", "non-positive size", nil)
	}

	handle := allocShmHandle()
	path := fmt.Sprintf("/dev/shm/compositor-shm-%d", handle)

	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_EXCL, 0600)
	if err != nil {
		return nil, newErr(Resource, "create_shm", path, err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		unix.Unlink(path)
		return nil, newErr(Resource, "create_shm", "ftruncate", err)
	}

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		unix.Unlink(path)
		return nil, newErr(Resource, "create_shm", "mmap", err)
	}

	closed := false
	closer := func() error {
		if closed {
			return nil
		}
		closed = true
		err := unix.Munmap(data)
		unix.Close(fd)
		unix.Unlink(path)
		return err
	}

	return &SharedMemory{handle: handle, bytes: data, closer: closer}, nil
}

// bytesToColors reinterprets a mmap'd byte slice as a Color slice without
// copying. Safe because SharedMemory.bytes is 4-byte-aligned (mmap always
// returns page-aligned memory) and its length is always a multiple of 4.
func bytesToColors(b []byte) []Color {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*Color)(unsafe.Pointer(&b[0])), len(b)/4)
}
