package scanner

import (
	"bytes"

	"github.com/mna/rencore/lang/value"
)

// scanners are the literal routines used to convert a string to a scalar.
var scanners = map[value.Kind]func(*Limits, *value.Cell, []byte) (int, error){
	value.KindInteger: (*Limits).Integer,
	value.KindDecimal: func(l *Limits, out *value.Cell, src []byte) (int, error) {
		return l.Decimal(out, src, false)
	},
	value.KindPercent: (*Limits).Percent,
	value.KindMoney:   (*Limits).Money,
	value.KindTime:    (*Limits).Time,
	value.KindDate:    (*Limits).Date,
	value.KindPair:    (*Limits).Pair,
	value.KindTuple:   (*Limits).Tuple,
}

func init() {
	for k := range scanners {
		value.Register(k, value.Hooks{Make: makeValue, To: toValue})
	}
	for k := value.KindBinary; k <= value.KindTag; k++ {
		value.Register(k, value.Hooks{Make: makeValue, To: toValue})
	}
}

func makeValue(out *value.Cell, k value.Kind, arg *value.Cell) error {
	return convert(out, k, arg, value.ErrBadMake)
}

func toValue(out *value.Cell, k value.Kind, arg *value.Cell) error {
	return convert(out, k, arg, value.ErrBadTo)
}

// convert converts arg to a value of kind k, which is one of the scalars
// with a literal routine or one of the string kinds.
func convert(out *value.Cell, k value.Kind, arg *value.Cell, errBad error) error {
	ak := arg.Kind()
	if ak == k && !k.IsSeries() {
		value.Move(out, arg)
		return nil
	}

	var src []byte
	switch {
	case ak.IsString():
		src = []byte(arg.Text().From(arg.SeriesAt().Clamped()))
	case ak == value.KindBinary:
		src = arg.Binary().Bytes()[arg.SeriesAt().Clamped():]
	case ak.IsWord() && k.IsString():
		src = []byte(arg.Symbol().String())
	case k.IsString() && ak != value.KindNull:
		src = []byte(value.Form(arg))
	default:
		if ok := convertNumber(out, k, arg); ok {
			return nil
		}
		return &value.MakeError{Kind: k, Arg: ak, Err: errBad}
	}

	switch {
	case k == value.KindBinary:
		value.InitSeries(out, k, value.NewBinary(bytes.Clone(src)), 0)
		return nil
	case k.IsString():
		_, err := Any(out, src, k)
		return err
	}

	fn := scanners[k]
	if fn == nil {
		return &value.MakeError{Kind: k, Arg: ak, Err: errBad}
	}
	src = bytes.TrimSpace(src)
	n, err := fn(DefaultLimits, out, src)
	if err == nil && n != len(src) {
		value.Trash(out)
		err = ErrNoMatch
	}
	return err
}

// convertNumber converts between the numeric kinds, chars and the
// hexadecimal spelling of issues.
func convertNumber(out *value.Cell, k value.Kind, arg *value.Cell) bool {
	switch ak := arg.Kind(); k {
	case value.KindInteger:
		switch ak {
		case value.KindDecimal, value.KindPercent:
			value.InitInteger(out, int64(arg.Float64()))
		case value.KindChar:
			value.InitInteger(out, int64(arg.Char()))
		case value.KindIssue:
			src := []byte(arg.Symbol().String())
			n, err := Hex(out, src, 1, DefaultLimits.MaxHexLen)
			return err == nil && n == len(src)
		default:
			return false
		}
	case value.KindDecimal, value.KindPercent:
		var f float64
		switch ak {
		case value.KindInteger:
			f = float64(arg.Int64())
		case value.KindDecimal, value.KindPercent:
			f = arg.Float64()
		case value.KindMoney:
			f = arg.Money().Float64()
		default:
			return false
		}
		if k == value.KindDecimal {
			value.InitDecimal(out, f)
		} else {
			value.InitPercent(out, f)
		}
	default:
		return false
	}
	return true
}
