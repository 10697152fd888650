//go:build minilog_release

package minilog

// compiledFloor drops Trace and Debug records before any runtime check when
// the module is built with -tags minilog_release.
const compiledFloor = InfoLevel

const buildMode = "release"
