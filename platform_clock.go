// platform_clock.go - the single frame-pacing sleep seam

package main

import "time"

// PlatformSleep blocks for d. The server loop's 16ms frame throttle and the
// reply-port retry's 10ms backoff both go through it, so every platform
// sleep has one call point. It is a plain function, not a replaceable
// variable, so tests cannot substitute it.
func PlatformSleep(d time.Duration) {
	time.Sleep(d)
}
