//go:build !linux && !windows

package minilog

import (
	"bytes"
	"runtime"
	"strconv"
)

// threadID falls back to the goroutine id where the OS offers no portable
// thread id call. It is parsed from the "goroutine N [" stack header.
func threadID() uint64 {
	var scratch [64]byte
	b := scratch[:runtime.Stack(scratch[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
