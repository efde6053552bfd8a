package value

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// A CompareMode selects the relation tested by Compare.
type CompareMode int8

//nolint:revive
const (
	CompareEqual CompareMode = iota
	CompareLessEqual
	CompareLess
)

var compareModeNames = [...]string{
	CompareEqual:     "equal",
	CompareLessEqual: "less-or-equal",
	CompareLess:      "less",
}

func (m CompareMode) String() string {
	if int(m) >= len(compareModeNames) || m < 0 {
		return fmt.Sprintf("<invalid CompareMode %d>", m)
	}
	return compareModeNames[m]
}

// MaxCompareDepth bounds the recursion of comparisons of nested values.
const MaxCompareDepth = 1000

// ErrCompareDepth is returned when a comparison recurses deeper than
// MaxCompareDepth, which happens with cyclic arrays.
var ErrCompareDepth = errors.New("comparison exceeded maximum recursion depth")

// Compare tests the relation mode between a and b. The equality mode never
// fails: values that cannot be compared are unequal.
func Compare(a, b *Cell, mode CompareMode, cased bool) (bool, error) {
	c, err := Cmp(a, b, cased)
	if mode == CompareEqual {
		return err == nil && c == 0, nil
	}
	if err != nil {
		return false, err
	}
	if mode == CompareLessEqual {
		return c <= 0, nil
	}
	return c < 0, nil
}

// Equal returns true if a and b are equal, ignoring case unless cased is
// true.
func Equal(a, b *Cell, cased bool) bool {
	ok, _ := Compare(a, b, CompareEqual, cased)
	return ok
}

// Cmp is the three-way comparison of a and b: negative if a < b, positive
// if a > b, zero if equal. Numbers compare across integer, decimal, percent
// and money; other values of different kinds are ordered by kind.
func Cmp(a, b *Cell, cased bool) (int, error) {
	return CmpDepth(a, b, cased, MaxCompareDepth)
}

// CmpDepth is Cmp with an explicit recursion budget. Compare hooks of
// composite kinds call it with depth-1 for their elements.
func CmpDepth(a, b *Cell, cased bool, depth int) (int, error) {
	if depth < 1 {
		return 0, ErrCompareDepth
	}

	ka, kb := a.Kind(), b.Kind()
	if isNumeric(ka) && isNumeric(kb) && ka != kb {
		return cmpNumbers(a, b), nil
	}
	if ka != kb {
		return cmpInt(int(ka), int(kb)), nil
	}
	if h := hooks[ka].Compare; h != nil {
		return h(a, b, cased, depth)
	}

	switch ka {
	case KindInteger:
		return cmpInt64(a.Int64(), b.Int64()), nil
	case KindDecimal, KindPercent:
		return floatCmp(a.Float64(), b.Float64()), nil
	case KindMoney:
		return a.Money().Cmp(b.Money()), nil
	case KindChar:
		ra, rb := a.Char(), b.Char()
		if !cased {
			return strings.Compare(Fold(string(ra)), Fold(string(rb))), nil
		}
		return cmpInt(int(ra), int(rb)), nil
	case KindLogic:
		return cmpBool(a.Logic(), b.Logic()), nil
	case KindPair:
		pa, pb := a.Pair(), b.Pair()
		if c := floatCmp(pa.Y, pb.Y); c != 0 {
			return c, nil
		}
		return floatCmp(pa.X, pb.X), nil
	case KindTuple:
		return cmpTuples(a.Tuple(), b.Tuple()), nil
	case KindTime:
		return cmpInt64(int64(a.Duration()), int64(b.Duration())), nil
	case KindDate:
		return a.Date().Time().Compare(b.Date().Time()), nil
	case KindDatatype:
		return cmpInt(int(a.Datatype()), int(b.Datatype())), nil
	case KindTypeset:
		ta, tb := a.TypeSet(), b.TypeSet()
		if ta == tb {
			return 0, nil
		}
		if ta < tb {
			return -1, nil
		}
		return 1, nil
	case KindBinary:
		sa, sb := a.SeriesAt(), b.SeriesAt()
		return bytes.Compare(a.Binary().Bytes()[sa.Clamped():], b.Binary().Bytes()[sb.Clamped():]), nil
	case KindText, KindFile, KindEmail, KindURL, KindTag:
		return CmpText(a.Text().From(a.Index()), b.Text().From(b.Index()), cased), nil
	case KindWord, KindSetWord, KindGetWord, KindLitWord, KindRefinement, KindIssue:
		sa, sb := a.Symbol(), b.Symbol()
		if cased {
			return strings.Compare(sa.String(), sb.String()), nil
		}
		if sa.SameCanon(sb) {
			return 0, nil
		}
		return strings.Compare(sa.Canon().String(), sb.Canon().String()), nil
	case KindBlank, KindVoid, KindNull:
		return 0, nil
	case KindAction:
		return cmpIdentity(a.Action() == b.Action())
	case KindObject, KindFrame, KindModule, KindError:
		return cmpIdentity(a.Context() == b.Context())
	case KindMap:
		return cmpIdentity(a.Map() == b.Map())
	case KindVector:
		return cmpIdentity(a.Vector() == b.Vector() && a.Index() == b.Index())
	case KindHandle:
		return cmpIdentity(a.Handle().Code == b.Handle().Code)
	}
	return 0, fmt.Errorf("%s: %w", ka.TypeName(), ErrNotComparable)
}

// CmpText compares strings, case-insensitively unless cased is true.
func CmpText(a, b string, cased bool) int {
	if !cased {
		a, b = Fold(a), Fold(b)
	}
	return strings.Compare(a, b)
}

func isNumeric(k Kind) bool { return k.IsNumber() || k == KindMoney }

func numberOf(c *Cell) float64 {
	switch c.Kind() {
	case KindInteger:
		return float64(c.Int64())
	case KindMoney:
		return c.Money().Float64()
	default:
		return c.Float64()
	}
}

func cmpNumbers(a, b *Cell) int {
	return floatCmp(numberOf(a), numberOf(b))
}

func cmpIdentity(same bool) (int, error) {
	if same {
		return 0, nil
	}
	return 0, ErrNotComparable
}

func cmpTuples(a, b Tuple) int {
	// the shorter tuple is padded with zeros
	n := max(a.Len, b.Len)
	for i := uint8(0); i < n; i++ {
		if c := cmpInt(int(a.Bytes[i]), int(b.Bytes[i])); c != 0 {
			return c
		}
	}
	return 0
}

// floatCmp performs a three-valued comparison on floats, which are totally
// ordered with NaN > +Inf.
func floatCmp(x, y float64) int {
	if x > y {
		return +1
	} else if x < y {
		return -1
	} else if x == y {
		return 0
	}

	// At least one operand is NaN.
	if x == x {
		return -1 // y is NaN
	} else if y == y {
		return +1 // x is NaN
	}
	return 0 // both NaN
}

func cmpInt64(a, b int64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func cmpInt(a, b int) int { return cmpInt64(int64(a), int64(b)) }

func cmpBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}
