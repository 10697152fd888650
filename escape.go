package minilog

const hexDigits = "0123456789abcdef"

// lineNeedsEscape marks the bytes that could break a record across wire
// lines or reach the terminal as a control sequence.
var lineNeedsEscape = func() [256]bool {
	var table [256]bool
	for i := range 0x20 {
		table[i] = true
	}
	table[0x7f] = true
	return table
}()

// appendEscaped appends s with control bytes rewritten as \n, \r, \t or
// \xNN. Printable text, including UTF-8, is copied unchanged.
func appendEscaped(dst []byte, s string) []byte {
	lastSafe := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !lineNeedsEscape[c] {
			continue
		}
		if lastSafe < i {
			dst = append(dst, s[lastSafe:i]...)
		}
		dst = appendEscapedByte(dst, c)
		lastSafe = i + 1
	}
	return append(dst, s[lastSafe:]...)
}

func appendEscapedByte(dst []byte, c byte) []byte {
	switch c {
	case '\n':
		return append(dst, '\\', 'n')
	case '\r':
		return append(dst, '\\', 'r')
	case '\t':
		return append(dst, '\\', 't')
	default:
		return append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0x0f])
	}
}
