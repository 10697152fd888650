package minilog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"
)

// Target is the kind of destination a Logger writes to.
type Target uint8

const (
	// TargetStdout writes to the process's standard output.
	TargetStdout Target = iota
	// TargetStderr writes to the process's standard error. It is the default.
	TargetStderr
	// TargetFile writes to a file opened by SetFile.
	TargetFile
	// TargetWriter writes to a caller supplied io.Writer.
	TargetWriter
)

func (t Target) String() string {
	switch t {
	case TargetStdout:
		return "stdout"
	case TargetStderr:
		return "stderr"
	case TargetFile:
		return "file"
	case TargetWriter:
		return "writer"
	default:
		return "unknown"
	}
}

// sink is the concrete destination behind a Target. mu serialises writes so
// that every line lands with a single, uninterrupted Write.
type sink struct {
	kind  Target
	mu    sync.Mutex
	out   *observedWriter
	owned *ownedOutput
}

func (s *sink) write(line []byte) {
	s.mu.Lock()
	s.out.writeLine(line)
	s.mu.Unlock()
}

func (s *sink) interactive() bool {
	switch s.kind {
	case TargetStdout:
		return stdoutInteractive()
	case TargetStderr:
		return stderrInteractive()
	default:
		return false
	}
}

func (s *sink) close() error {
	if s.owned == nil {
		return nil
	}
	return s.owned.Close()
}

// outputCell holds the sink of one Logger. It starts empty and is claimed by
// a single compare-and-swap; the winner is published to every goroutine and
// never replaced.
type outputCell struct {
	ptr atomic.Pointer[sink]
}

func (c *outputCell) claim(s *sink) bool {
	return c.ptr.CompareAndSwap(nil, s)
}

func (c *outputCell) load() *sink {
	return c.ptr.Load()
}

// loadOrDefault returns the claimed sink, materialising fallback() when
// nothing was claimed yet. Concurrent callers all observe the same winner.
func (c *outputCell) loadOrDefault(fallback func() *sink) *sink {
	if s := c.ptr.Load(); s != nil {
		return s
	}
	c.ptr.CompareAndSwap(nil, fallback())
	return c.ptr.Load()
}

func (l *Logger) newSink(kind Target, w io.Writer, owned *ownedOutput) *sink {
	return &sink{
		kind:  kind,
		out:   newObservedWriter(w, kind, l.onWriteFailure),
		owned: owned,
	}
}

func (l *Logger) stdioSink(kind Target) *sink {
	f := os.Stderr
	if kind == TargetStdout {
		f = os.Stdout
	}
	// colorable translates escapes for legacy Windows consoles and returns f
	// unchanged everywhere else.
	return l.newSink(kind, colorable.NewColorable(f), nil)
}

func (l *Logger) defaultSink() *sink {
	return l.stdioSink(TargetStderr)
}

func (l *Logger) output() *sink {
	return l.out.loadOrDefault(l.defaultSink)
}

// SetTarget selects the destination kind. Only the first successful
// SetTarget, SetWriter or SetFile call (or the first emitted line, which
// claims TargetStderr) takes effect; later calls return ErrTargetAlreadySet.
// TargetFile and TargetWriter claimed without a handle discard every line.
func (l *Logger) SetTarget(t Target) error {
	var s *sink
	switch t {
	case TargetStdout, TargetStderr:
		s = l.stdioSink(t)
	default:
		s = l.newSink(t, io.Discard, nil)
	}
	if !l.out.claim(s) {
		return ErrTargetAlreadySet
	}
	return nil
}

// SetWriter claims TargetWriter with w as the destination. The Logger
// serialises writes to w; w must not be written concurrently by others if
// lines are to stay intact. ColorAuto never colours a writer target.
func (l *Logger) SetWriter(w io.Writer) error {
	if l.out.load() != nil {
		return ErrTargetAlreadySet
	}
	if !l.out.claim(l.newSink(TargetWriter, w, nil)) {
		return ErrTargetAlreadySet
	}
	return nil
}

// SetFile opens path for appending (creating it with mode 0644 if needed) and
// claims TargetFile. Open failures are returned as *IoError. If the target
// was already claimed, the file is not opened, or is closed again when
// another goroutine won the claim meanwhile.
func (l *Logger) SetFile(path string) error {
	if l.out.load() != nil {
		return ErrTargetAlreadySet
	}
	f, err := openLogFile(path)
	if err != nil {
		return err
	}
	owned := newOwnedOutput(f, f)
	if !l.out.claim(l.newSink(TargetFile, owned, owned)) {
		_ = owned.Close()
		return ErrTargetAlreadySet
	}
	return nil
}

// claimOwned installs a destination minilog opened itself.
func (l *Logger) claimOwned(kind Target, owned *ownedOutput) error {
	if !l.out.claim(l.newSink(kind, owned, owned)) {
		_ = owned.Close()
		return ErrTargetAlreadySet
	}
	return nil
}

// Target reports the claimed destination kind. ok is false until a target
// was set or the first line was emitted.
func (l *Logger) Target() (t Target, ok bool) {
	s := l.out.load()
	if s == nil {
		return TargetStderr, false
	}
	return s.kind, true
}

// Stats returns the cumulative write failures of the active sink.
func (l *Logger) Stats() WriteStats {
	s := l.out.load()
	if s == nil {
		return WriteStats{}
	}
	return s.out.stats()
}

// Close releases a file opened by SetFile or by an environment/config output
// setting. Standard streams and caller supplied writers are left open. The
// target stays claimed; lines emitted after Close are counted as failures.
func (l *Logger) Close() error {
	s := l.out.load()
	if s == nil {
		return nil
	}
	return s.close()
}
