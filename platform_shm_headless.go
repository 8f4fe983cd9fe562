//go:build headless

// platform_shm_headless.go - plain Go-slice-backed segments for sandboxed tests

package main

import "unsafe"

// CreateSharedMemory allocates a zeroed Go slice standing in for a real
// /dev/shm segment. Same zero-copy Pixels() contract, same lifetime rules,
// no real mmap — this is the build used under test sandboxes that cannot
// touch /dev/shm.
func CreateSharedMemory(size int) (*SharedMemory, error) {
	if size <= 0 {
		return nil, newErr(Resource, "create_shm", "non-positive size", nil)
	}
	handle := allocShmHandle()
	data := make([]byte, size)
	return &SharedMemory{handle: handle, bytes: data, closer: nil}, nil
}

// bytesToColors reinterprets b as a Color slice without copying.
func bytesToColors(b []byte) []Color {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*Color)(unsafe.Pointer(&b[0])), len(b)/4)
}
