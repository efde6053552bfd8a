package value

import "time"

// Payload is the closed set of per-kind cell contents. A type switch over a
// cell's Payload is exhaustive over the types declared in this file; the
// kinds without content (trash, null, blank, void) have a nil payload.
type Payload interface {
	payload()
}

// MaxTuple is the maximum number of components stored in a tuple.
const MaxTuple = 10

// MaxYear is the highest year a date can represent.
const MaxYear = 16383

// ZoneMins is the granularity of a date's zone, in minutes.
const ZoneMins = 15

type (
	// Integer is the payload of integer cells.
	Integer int64

	// Decimal is the payload of decimal and percent cells. A percent holds its
	// value as a fraction, 50% is 0.5.
	Decimal float64

	// Char is the payload of char cells.
	Char rune

	// Logic is the payload of logic cells.
	Logic bool

	// Pair is the payload of pair cells.
	Pair struct {
		X, Y float64
	}

	// Tuple is the payload of tuple cells. Only the first Len bytes are
	// meaningful.
	Tuple struct {
		Len   uint8
		Bytes [MaxTuple]byte
	}

	// Time is the payload of time cells, a signed duration.
	Time time.Duration

	// Date is the payload of date cells. Nano is the time of day and Zone the
	// offset from UTC in ZoneMins units; each is meaningful only if the
	// corresponding FlagDateHasTime or FlagDateHasZone flag is set. When a
	// zone is present, Nano is in UTC.
	Date struct {
		Year  uint16
		Month uint8
		Day   uint8
		Zone  int8
		Nano  time.Duration
	}

	// SeriesAt is the payload of every series kind: a handle into the storage
	// and the current index. Index may exceed the current length of the
	// series and must be clamped by every consumer.
	SeriesAt struct {
		Series Series
		Index  int
	}

	// WordRef is the payload of the word kinds. Index is the slot of the word
	// in its binding and is only meaningful when the cell is bound.
	WordRef struct {
		Symbol *Symbol
		Index  int
	}

	// ContextRef is the payload of object, frame, module and error cells.
	ContextRef struct {
		Context *Context
	}

	// ActionRef is the payload of action cells.
	ActionRef struct {
		Action *Action
	}

	// MapRef is the payload of map cells.
	MapRef struct {
		Map *Map
	}

	// Handle is the payload of handle cells, an opaque native value.
	Handle struct {
		Code uintptr
		Data any
	}

	// Datatype is the payload of datatype cells.
	Datatype struct {
		Kind Kind
	}

	// Typeset is the payload of typeset cells.
	Typeset struct {
		Types TypeSet
	}
)

func (Integer) payload()    {}
func (Decimal) payload()    {}
func (Char) payload()       {}
func (Logic) payload()      {}
func (Pair) payload()       {}
func (Tuple) payload()      {}
func (Time) payload()       {}
func (Date) payload()       {}
func (SeriesAt) payload()   {}
func (WordRef) payload()    {}
func (ContextRef) payload() {}
func (ActionRef) payload()  {}
func (MapRef) payload()     {}
func (Handle) payload()     {}
func (Datatype) payload()   {}
func (Typeset) payload()    {}
func (Money) payload()      {}

// Components returns the meaningful bytes of the tuple.
func (t Tuple) Components() []byte { return t.Bytes[:t.Len] }

// MakeTuple returns the tuple with the provided components. It panics if
// there are more than MaxTuple.
func MakeTuple(bs ...byte) Tuple {
	if len(bs) > MaxTuple {
		panic(&ContractError{Op: "MakeTuple", Msg: "too many components"})
	}
	var t Tuple
	t.Len = uint8(copy(t.Bytes[:], bs))
	return t
}

// ZoneOffset returns the zone of the date as a duration.
func (d Date) ZoneOffset() time.Duration {
	return time.Duration(d.Zone) * ZoneMins * time.Minute
}

// Local returns the time of day adjusted to the date's zone, along with the
// possibly shifted calendar date.
func (d Date) Local() Date {
	return d.shift(d.ZoneOffset())
}

// shift moves the time of day by off, carrying into the calendar date.
func (d Date) shift(off time.Duration) Date {
	if off == 0 {
		return d
	}
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC).Add(d.Nano + off)
	y, m, dd := t.Date()
	d.Year, d.Month, d.Day = uint16(y), uint8(m), uint8(dd)
	d.Nano = time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
	return d
}

// ToUTC returns the date with its time of day moved from the zone to UTC.
func (d Date) ToUTC() Date {
	return d.shift(-d.ZoneOffset())
}

// Time returns the date as a Go time, in UTC.
func (d Date) Time() time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC).Add(d.Nano)
}

// MonthDays is the maximum number of days of each month.
var MonthDays = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthNames are the canonical month names, matched by prefix when scanning.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IsLeapYear returns true if year is divisible by 4, and not by 100 unless
// also by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
