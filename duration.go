package minilog

import (
	"strconv"
	"time"
)

const (
	nsPerMicro  = uint64(time.Microsecond)
	nsPerMilli  = uint64(time.Millisecond)
	nsPerSecond = uint64(time.Second)
	secPerMin   = 60
	secPerHour  = 3600
	secPerDay   = 86400
)

// FormatDuration renders ns nanoseconds for humans. The first matching band
// wins:
//
//	< 1µs   "42 ns"
//	< 1ms   "512 us"
//	< 1s    "1.234 ms"
//	< 1m    "1.234 s"
//	< 1h    "2m03.456s"
//	< 1d    "1h02m03.456s"
//	>= 1d   "3d01h02m03.456s"
//
// Sub-unit parts are truncated, never rounded, so a value never moves into a
// larger band than its magnitude.
func FormatDuration(ns uint64) string {
	return string(appendDuration(make([]byte, 0, 24), ns))
}

// HumanDuration is a time.Duration that prints with FormatDuration.
// Negative durations print as "0 ns".
type HumanDuration time.Duration

func (d HumanDuration) String() string {
	if d < 0 {
		return FormatDuration(0)
	}
	return FormatDuration(uint64(d))
}

func appendDuration(buf []byte, ns uint64) []byte {
	if ns < nsPerMicro {
		buf = strconv.AppendUint(buf, ns, 10)
		return append(buf, " ns"...)
	}
	if ns < nsPerMilli {
		buf = strconv.AppendUint(buf, ns/nsPerMicro, 10)
		return append(buf, " us"...)
	}
	if ns < nsPerSecond {
		buf = strconv.AppendUint(buf, ns/nsPerMilli, 10)
		buf = append(buf, '.')
		buf = appendThreeDigits(buf, int(ns/nsPerMicro%1000))
		return append(buf, " ms"...)
	}

	secs := ns / nsPerSecond
	millis := int(ns / nsPerMilli % 1000)
	if secs < secPerMin {
		buf = strconv.AppendUint(buf, secs, 10)
		buf = append(buf, '.')
		buf = appendThreeDigits(buf, millis)
		return append(buf, " s"...)
	}

	days := secs / secPerDay
	rem := secs % secPerDay
	hours := int(rem / secPerHour)
	minutes := int(rem % secPerHour / secPerMin)
	seconds := int(rem % secPerMin)

	switch {
	case secs < secPerHour:
		buf = strconv.AppendInt(buf, int64(minutes), 10)
	case secs < secPerDay:
		buf = strconv.AppendInt(buf, int64(hours), 10)
		buf = append(buf, 'h')
		buf = appendTwoDigits(buf, minutes)
	default:
		buf = strconv.AppendUint(buf, days, 10)
		buf = append(buf, 'd')
		buf = appendTwoDigits(buf, hours)
		buf = append(buf, 'h')
		buf = appendTwoDigits(buf, minutes)
	}
	buf = append(buf, 'm')
	buf = appendTwoDigits(buf, seconds)
	buf = append(buf, '.')
	buf = appendThreeDigits(buf, millis)
	return append(buf, 's')
}
