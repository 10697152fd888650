package minilog

import (
	"sync/atomic"
	"time"
)

// UTCFields is a proleptic Gregorian calendar breakdown of an instant in UTC.
type UTCFields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// ToUTCFields converts nanoseconds since the Unix epoch into UTC calendar
// fields without consulting any time zone database. Instants before 1970 are
// floored, so -1ns is 1969-12-31 23:59:59.999.
func ToUTCFields(epochNanos int64) UTCFields {
	secs := floorDiv(epochNanos, int64(time.Second))
	subNanos := epochNanos - secs*int64(time.Second)

	days := floorDiv(secs, secPerDay)
	secOfDay := secs - days*secPerDay

	year, month, day := civilFromDays(days)
	return UTCFields{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        int(secOfDay / secPerHour),
		Minute:      int(secOfDay % secPerHour / secPerMin),
		Second:      int(secOfDay % secPerMin),
		Millisecond: int(subNanos / int64(time.Millisecond)),
	}
}

// String renders f as "YYYY-MM-DD HH:MM:SS.mmmZ".
func (f UTCFields) String() string {
	return string(f.appendTo(make([]byte, 0, 24)))
}

// AppendTimestamp appends the UTC rendering of t ("YYYY-MM-DD HH:MM:SS.mmmZ")
// to buf.
func AppendTimestamp(buf []byte, t time.Time) []byte {
	return ToUTCFields(t.UnixNano()).appendTo(buf)
}

func (f UTCFields) appendTo(buf []byte) []byte {
	buf = appendDate(buf, f.Year, f.Month, f.Day)
	buf = append(buf, ' ')
	buf = appendClock(buf, f.Hour, f.Minute, f.Second)
	buf = append(buf, '.')
	buf = appendThreeDigits(buf, f.Millisecond)
	return append(buf, 'Z')
}

// civilFromDays maps days since 1970-01-01 onto (year, month, day). Eras are
// 400-year cycles of 146097 days starting on 0000-03-01, which puts the leap
// day at the end of each computational year.
func civilFromDays(days int64) (int, int, int) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // [0, 365]
	mp := (5*doy + 2) / 153                                // [0, 11], March based
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if month > 12 {
		month -= 12
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}
	return int(year), int(month), int(day)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// stampClock caches the "YYYY-MM-DD HH:MM:SS" prefix of the current second so
// the calendar math runs once per second instead of once per line. A nil now
// reads time.Now.
type stampClock struct {
	now    func() time.Time
	cached atomic.Pointer[stampPrefix]
}

type stampPrefix struct {
	sec    int64
	prefix []byte
}

func newStampClock() *stampClock {
	return &stampClock{now: time.Now}
}

func (c *stampClock) nowTime() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// appendUTC appends the current UTC timestamp.
func (c *stampClock) appendUTC(buf []byte) []byte {
	nanos := c.nowTime().UnixNano()
	sec := floorDiv(nanos, int64(time.Second))
	millis := int((nanos - sec*int64(time.Second)) / int64(time.Millisecond))

	p := c.cached.Load()
	if p == nil || p.sec != sec {
		f := ToUTCFields(sec * int64(time.Second))
		prefix := appendDate(make([]byte, 0, 19), f.Year, f.Month, f.Day)
		prefix = append(prefix, ' ')
		prefix = appendClock(prefix, f.Hour, f.Minute, f.Second)
		p = &stampPrefix{sec: sec, prefix: prefix}
		c.cached.Store(p)
	}
	buf = append(buf, p.prefix...)
	buf = append(buf, '.')
	buf = appendThreeDigits(buf, millis)
	return append(buf, 'Z')
}

// appendLocal appends the current wall-clock time in the process's local
// zone. Local stamps carry no zone suffix.
func (c *stampClock) appendLocal(buf []byte) []byte {
	t := c.nowTime().Local()
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	buf = appendDate(buf, year, int(month), day)
	buf = append(buf, ' ')
	buf = appendClock(buf, hour, minute, second)
	buf = append(buf, '.')
	return appendThreeDigits(buf, t.Nanosecond()/int(time.Millisecond))
}

func appendDate(buf []byte, year, month, day int) []byte {
	if year < 0 {
		buf = append(buf, '-')
		year = -year
	}
	buf = appendFourDigits(buf, year)
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, month)
	buf = append(buf, '-')
	return appendTwoDigits(buf, day)
}

func appendClock(buf []byte, hour, minute, second int) []byte {
	buf = appendTwoDigits(buf, hour)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, minute)
	buf = append(buf, ':')
	return appendTwoDigits(buf, second)
}

func appendFourDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/100%100)
	return appendTwoDigits(buf, v%100)
}

func appendThreeDigits(buf []byte, v int) []byte {
	buf = append(buf, byte('0'+v/100%10))
	return appendTwoDigits(buf, v%100)
}

func appendTwoDigits(buf []byte, value int) []byte {
	buf = append(buf, byte('0'+value/10%10))
	buf = append(buf, byte('0'+value%10))
	return buf
}
