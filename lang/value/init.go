package value

import (
	"fmt"
	"time"
)

// Every Init function resets the header of out to the kind it initializes,
// keeping only the persistent bits, writes the payload and returns out. They
// panic if out is protected.

func initPayload(out *Cell, k Kind, p Payload, flags ...Flag) *Cell {
	out.reset(k, flags...)
	out.payload = p
	return out
}

func InitInteger(out *Cell, i int64) *Cell {
	return initPayload(out, KindInteger, Integer(i))
}

func InitDecimal(out *Cell, f float64) *Cell {
	return initPayload(out, KindDecimal, Decimal(f))
}

// InitPercent initializes a percent from its fractional value, 0.5 for 50%.
func InitPercent(out *Cell, f float64) *Cell {
	return initPayload(out, KindPercent, Decimal(f))
}

func InitMoney(out *Cell, m Money) *Cell {
	return initPayload(out, KindMoney, m)
}

func InitChar(out *Cell, r rune) *Cell {
	return initPayload(out, KindChar, Char(r))
}

func InitLogic(out *Cell, b bool) *Cell {
	if b {
		return initPayload(out, KindLogic, Logic(true))
	}
	return initPayload(out, KindLogic, Logic(false), FlagFalsey)
}

func InitBlank(out *Cell) *Cell {
	return initPayload(out, KindBlank, nil, FlagFalsey)
}

func InitVoid(out *Cell) *Cell {
	return initPayload(out, KindVoid, nil)
}

// InitNull initializes out to null, which is falsey and cannot be stored in
// an array.
func InitNull(out *Cell) *Cell {
	return initPayload(out, KindNull, nil, FlagFalsey)
}

func InitPair(out *Cell, x, y float64) *Cell {
	return initPayload(out, KindPair, Pair{X: x, Y: y})
}

func InitTuple(out *Cell, t Tuple) *Cell {
	return initPayload(out, KindTuple, t)
}

func InitTime(out *Cell, d time.Duration) *Cell {
	return initPayload(out, KindTime, Time(d))
}

// InitDate initializes a date. The time of day and zone of d are only
// meaningful if the corresponding flag is provided.
func InitDate(out *Cell, d Date, hasTime, hasZone bool) *Cell {
	var flags []Flag
	if hasTime {
		flags = append(flags, FlagDateHasTime)
	} else {
		d.Nano = 0
	}
	if hasZone {
		flags = append(flags, FlagDateHasZone)
	} else {
		d.Zone = 0
	}
	return initPayload(out, KindDate, d, flags...)
}

func InitDatatype(out *Cell, k Kind) *Cell {
	return initPayload(out, KindDatatype, Datatype{Kind: k})
}

func InitTypeset(out *Cell, ts TypeSet) *Cell {
	return initPayload(out, KindTypeset, Typeset{Types: ts})
}

func InitHandle(out *Cell, code uintptr, data any) *Cell {
	return initPayload(out, KindHandle, Handle{Code: code, Data: data})
}

// InitWord initializes an unbound word of kind k, which must be one of the
// word kinds.
func InitWord(out *Cell, k Kind, sym *Symbol) *Cell {
	if !k.IsWord() {
		panic(&AccessError{Want: "word kind", Got: k})
	}
	return initPayload(out, k, WordRef{Symbol: sym})
}

// InitSeries initializes a series cell of kind k at index. The storage must
// match the kind: arrays for the array kinds, text for the string kinds.
func InitSeries(out *Cell, k Kind, s Series, index int) *Cell {
	var ok bool
	switch s.(type) {
	case *Array:
		ok = k.IsArray()
	case *Text:
		ok = k.IsString()
	case *Binary:
		ok = k == KindBinary
	case *Vector:
		ok = k == KindVector
	}
	if !ok {
		panic(&ContractError{Op: "InitSeries", Msg: fmt.Sprintf("storage %T cannot back a %s", s, k)})
	}
	return initPayload(out, k, SeriesAt{Series: s, Index: index})
}

// InitBlock is a shortcut for an array cell of kind block at index 0.
func InitBlock(out *Cell, a *Array) *Cell {
	return InitSeries(out, KindBlock, a, 0)
}

// InitText is a shortcut for a text cell holding s.
func InitText(out *Cell, s string) *Cell {
	return InitSeries(out, KindText, NewText(s), 0)
}

// InitContext initializes a context cell with the kind of ctx.
func InitContext(out *Cell, ctx *Context) *Cell {
	return initPayload(out, ctx.Kind(), ContextRef{Context: ctx})
}

// InitAction initializes an action cell. Actions without a body are native.
func InitAction(out *Cell, act *Action) *Cell {
	if act.Body() == nil {
		return initPayload(out, KindAction, ActionRef{Action: act}, FlagActionNative)
	}
	return initPayload(out, KindAction, ActionRef{Action: act})
}

func InitMap(out *Cell, m *Map) *Cell {
	return initPayload(out, KindMap, MapRef{Map: m})
}
