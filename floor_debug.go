//go:build !minilog_release

package minilog

// compiledFloor keeps every level in default builds.
const compiledFloor = TraceLevel

const buildMode = "debug"
