package minilog

import (
	"runtime"
	"strings"
)

const unknownFile = "???"

// callerLocation returns the file and line of the function skip frames above
// the caller of callerLocation. Paths are shortened to "dir/file.go".
func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return unknownFile, 0
	}
	return trimFilePath(file), line
}

func trimFilePath(path string) string {
	if path == "" {
		return unknownFile
	}
	idx := strings.LastIndexByte(path, '/')
	if idx <= 0 {
		return path
	}
	if prev := strings.LastIndexByte(path[:idx], '/'); prev >= 0 {
		return path[prev+1:]
	}
	return path
}
