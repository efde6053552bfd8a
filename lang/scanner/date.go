package scanner

import (
	"strings"
	"time"

	"github.com/mna/rencore/lang/value"
)

// Time scans src as a time of the form [-]H:MM[:SS[.FFF]] or M:SS.FFF.
func Time(out *value.Cell, src []byte) (int, error) { return DefaultLimits.Time(out, src) }

// Date scans src as a date with an optional time and zone.
func Date(out *value.Cell, src []byte) (int, error) { return DefaultLimits.Date(out, src) }

func (l *Limits) Time(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	if len(src) > l.MaxNumLen {
		return 0, tooLong("time", l.MaxNumLen)
	}
	d, n, ok := scanTime(src)
	if !ok || n != len(src) {
		return 0, ErrNoMatch
	}
	value.InitTime(out, d)
	return n, nil
}

// scanTime reads the time at the start of src and returns it along with the
// number of bytes read.
func scanTime(src []byte) (time.Duration, int, bool) {
	var i int
	var neg bool
	if i < len(src) && (src[i] == '-' || src[i] == '+') {
		neg = src[i] == '-'
		i++
	}

	field := func() (int, bool) {
		start := i
		var v int
		for ; i < len(src) && isDigit(src[i]); i++ {
			if v < 1<<31 {
				v = v*10 + int(src[i]-'0')
			}
		}
		return v, i > start
	}

	h, ok := field()
	if !ok || i >= len(src) || src[i] != ':' {
		return 0, 0, false
	}
	i++
	m, ok := field()
	if !ok {
		return 0, 0, false
	}

	var s int
	var nano time.Duration
	var minSec bool
	switch {
	case i < len(src) && src[i] == ':':
		i++
		if s, ok = field(); !ok {
			return 0, 0, false
		}
		nano, ok = fraction(src, &i)
		if !ok {
			return 0, 0, false
		}

	case i < len(src) && (src[i] == '.' || src[i] == ','):
		// minutes and seconds with a fraction
		h, m, s = 0, h, m
		minSec = true
		nano, ok = fraction(src, &i)
		if !ok {
			return 0, 0, false
		}
	}
	if m > 59 && !minSec || s > 59 {
		return 0, 0, false
	}

	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + nano
	if neg {
		d = -d
	}
	return d, i, true
}

// fraction reads an optional fraction of seconds at src[*i], up to
// nanosecond precision. Extra digits are ignored.
func fraction(src []byte, i *int) (time.Duration, bool) {
	if *i >= len(src) || (src[*i] != '.' && src[*i] != ',') {
		return 0, true
	}
	*i++
	start := *i
	var nano time.Duration
	scale := time.Duration(1e8)
	for ; *i < len(src) && isDigit(src[*i]); *i++ {
		nano += time.Duration(src[*i]-'0') * scale
		scale /= 10
	}
	return nano, *i > start
}

func (l *Limits) Date(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	d, hasTime, hasZone, n, ok := l.scanDate(src)
	if !ok {
		return 0, ErrNoMatch
	}
	if hasTime && hasZone {
		d = d.ToUTC()
	}
	value.InitDate(out, d, hasTime, hasZone)
	return n, nil
}

func (l *Limits) scanDate(src []byte) (d value.Date, hasTime, hasZone bool, n int, ok bool) {
	i := 0
	for i < len(src) && src[i] == ' ' {
		i++
	}
	// skip the day name and comma
	j := i
	for j < len(src) && isASCIILetter(src[j]) {
		j++
	}
	if j > i && j < len(src) && src[j] == ',' {
		i = j + 1
		for i < len(src) && src[i] == ' ' {
			i++
		}
	}
	if i == len(src) {
		return d, false, false, 0, false
	}

	// day or 4-digit year
	num, w := grabInt(src[i:])
	if num < 0 || w == 0 {
		return d, false, false, 0, false
	}
	var day, month, year int
	if w >= 4 {
		year = num
	} else {
		if day = num; day == 0 {
			return d, false, false, 0, false
		}
	}
	i += w

	if i >= len(src) || strings.IndexByte("/-. ", src[i]) < 0 {
		return d, false, false, 0, false
	}
	sep := src[i]
	i++

	// month as number or name
	num, w = grabInt(src[i:])
	if num < 0 {
		return d, false, false, 0, false
	}
	if w > 0 {
		month = num
	} else {
		start := i
		for i < len(src) && isASCIILetter(src[i]) {
			i++
		}
		name := string(src[start:i])
		if len(name) < 3 {
			return d, false, false, 0, false
		}
		month = lookupMonth(name)
		w = 0
	}
	if month < 1 || month > 12 {
		return d, false, false, 0, false
	}
	i += w
	if i >= len(src) || src[i] != sep {
		return d, false, false, 0, false
	}
	i++

	// year or day (if year was first)
	if i < len(src) && src[i] == '-' {
		return d, false, false, 0, false
	}
	num, w = grabInt(src[i:])
	if num < 0 || w == 0 {
		return d, false, false, 0, false
	}
	if day == 0 {
		day = num
	} else {
		// two-digit years are stored as typed (no century guessing)
		year = num
	}
	i += w

	if year > l.MaxYear || day < 1 || day > value.MonthDays[month-1] {
		return d, false, false, 0, false
	}
	if month == 2 && day == 29 && !value.IsLeapYear(year) {
		return d, false, false, 0, false
	}
	d = value.Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}
	if i >= len(src) {
		return d, false, false, i, true
	}

	if src[i] == '/' || src[i] == ' ' {
		sep = src[i]
		i++
		if i >= len(src) {
			return d, false, false, i, true
		}
		t, w, ok := scanTime(src[i:])
		if !ok || t < 0 || t >= 24*time.Hour {
			return d, false, false, 0, false
		}
		d.Nano = t
		hasTime = true
		i += w
	}
	if i < len(src) && src[i] == sep {
		i++
	}

	// zone as [+-]HH:MM or [+-]HHMM. Only the hours are bounded, +15:45 is a
	// valid zone.
	if i < len(src) && (src[i] == '-' || src[i] == '+') {
		neg := src[i] == '-'
		num, w := grabInt(src[i+1:])
		if w == 0 {
			return d, false, false, 0, false
		}
		j := i + 1 + w
		var tz int
		if j >= len(src) || src[j] != ':' {
			if num < -1500 || num > 1500 {
				return d, false, false, 0, false
			}
			h := num / 100
			m := num - h*100
			tz = (h*60 + m) / value.ZoneMins
		} else {
			if num < -15 || num > 15 {
				return d, false, false, 0, false
			}
			tz = num * (60 / value.ZoneMins)
			mins, w := grabInt(src[j+1:])
			if mins%value.ZoneMins != 0 {
				return d, false, false, 0, false
			}
			tz += mins / value.ZoneMins
			j += 1 + w
		}
		if j != len(src) {
			return d, false, false, 0, false
		}
		if neg {
			tz = -tz
		}
		d.Zone = int8(tz)
		hasZone = true
		i = j
	}
	return d, hasTime, hasZone, i, true
}

func isASCIILetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// lookupMonth returns the 1-based month of which name is a case-insensitive
// prefix, 13 if there is none.
func lookupMonth(name string) int {
	for i, m := range value.MonthNames {
		if len(name) <= len(m) && strings.EqualFold(m[:len(name)], name) {
			return i + 1
		}
	}
	return 13
}
