package minilog

import (
	"bytes"
	"strings"
	"sync"
)

// syncBuffer records every Write as its own chunk so tests can check that a
// line arrived in one piece.
type syncBuffer struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes [][]byte
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes = append(b.writes, append([]byte(nil), p...))
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (b *syncBuffer) Writes() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]byte(nil), b.writes...)
}

func newTestLogger(opts Options) (*Logger, *syncBuffer) {
	buf := &syncBuffer{}
	l := NewWithOptions(opts)
	if err := l.SetWriter(buf); err != nil {
		panic(err)
	}
	return l, buf
}
