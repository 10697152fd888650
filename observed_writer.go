package minilog

import (
	"io"
	"sync/atomic"
)

// WriteFailure describes one line the sink failed to write completely.
type WriteFailure struct {
	Target    Target
	Err       error
	Written   int
	Attempted int
}

// WriteStats captures how many lines were lost on the active sink.
type WriteStats struct {
	Failures    uint64
	ShortWrites uint64
}

// observedWriter counts failed writes so log loss stays visible even though
// Emit never reports errors to its caller.
type observedWriter struct {
	dst        io.Writer
	kind       Target
	onFailure  func(WriteFailure)
	failures   atomic.Uint64
	shortWrite atomic.Uint64
}

func newObservedWriter(dst io.Writer, kind Target, onFailure func(WriteFailure)) *observedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &observedWriter{dst: dst, kind: kind, onFailure: onFailure}
}

// writeLine performs exactly one Write on the destination. Errors stop here.
func (w *observedWriter) writeLine(p []byte) {
	n, err := w.dst.Write(p)
	if n != len(p) {
		w.shortWrite.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	if err == nil {
		return
	}
	w.failures.Add(1)
	if w.onFailure != nil {
		w.onFailure(WriteFailure{Target: w.kind, Err: err, Written: n, Attempted: len(p)})
	}
}

func (w *observedWriter) stats() WriteStats {
	return WriteStats{
		Failures:    w.failures.Load(),
		ShortWrites: w.shortWrite.Load(),
	}
}
