//go:build linux

package minilog

import "golang.org/x/sys/unix"

// threadID returns the kernel id of the OS thread running the caller.
func threadID() uint64 {
	return uint64(unix.Gettid())
}
