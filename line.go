package minilog

import "sync"

const (
	lineDefaultCap = 256
	lineMaxCap     = 64 << 10
)

// lineBuffer holds one record while it is assembled. Buffers are pooled so
// an emitted line costs no allocation once the pool is warm.
type lineBuffer struct {
	buf []byte
}

var linePool = sync.Pool{
	New: func() any {
		return &lineBuffer{buf: make([]byte, 0, lineDefaultCap)}
	},
}

func acquireLine() *lineBuffer {
	lb := linePool.Get().(*lineBuffer)
	lb.buf = lb.buf[:0]
	return lb
}

func releaseLine(lb *lineBuffer) {
	if cap(lb.buf) > lineMaxCap {
		lb.buf = make([]byte, 0, lineDefaultCap)
	} else {
		lb.buf = lb.buf[:0]
	}
	linePool.Put(lb)
}

func (lb *lineBuffer) writeByte(b byte) {
	lb.buf = append(lb.buf, b)
}

func (lb *lineBuffer) writeString(s string) {
	lb.buf = append(lb.buf, s...)
}

// writeStyled writes s wrapped in style and reset, or bare when style is
// empty.
func (lb *lineBuffer) writeStyled(style, s, reset string) {
	if style == "" {
		lb.writeString(s)
		return
	}
	lb.writeString(style)
	lb.writeString(s)
	lb.writeString(reset)
}

// writeEscaped writes caller supplied text so it can never end the line.
func (lb *lineBuffer) writeEscaped(s string) {
	lb.buf = appendEscaped(lb.buf, s)
}

func (lb *lineBuffer) writeStyledEscaped(style, s, reset string) {
	if style == "" {
		lb.writeEscaped(s)
		return
	}
	lb.writeString(style)
	lb.writeEscaped(s)
	lb.writeString(reset)
}
