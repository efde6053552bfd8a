package array

import (
	"fmt"

	"github.com/mna/rencore/lang/value"
)

// pickIndex returns the absolute position in the array of v selected by
// picker, which may be out of range:
//   - a number is 1-based from the index, 0 selects nothing and negative
//     numbers count back so that -1 picks the element before the index;
//   - a word selects the element that follows the first word of the same
//     canon spelling;
//   - a logic true selects the first element, false the second one;
//   - any other value selects the element that follows the first element
//     equal to it.
func pickIndex(v, picker *value.Cell) int {
	arr := v.Array()
	index := v.Index()

	switch pk := picker.Kind(); pk {
	case value.KindInteger, value.KindDecimal:
		n, _ := intArg(picker, "pick")
		if n == 0 {
			return -1
		}
		if n < 0 {
			n++
		}
		return n + index - 1

	case value.KindWord:
		sym := picker.Symbol()
		for i := v.SeriesAt().Clamped(); i < arr.Len(); i++ {
			item := arr.At(i)
			if item.Kind().IsWord() && item.Symbol().SameCanon(sym) {
				return i + 1
			}
		}
		return -1

	case value.KindLogic:
		if picker.Logic() {
			return index
		}
		return index + 1
	}
	return 1 + findSimple(arr, v.SeriesAt().Clamped(), picker)
}

func pick(out, v, picker *value.Cell) error {
	n := pickIndex(v, picker)
	arr := v.Array()
	if n < 0 || n >= arr.Len() {
		value.InitNull(out)
		return nil
	}
	return value.Derelativize(out, arr.At(n), specifier(v))
}

func poke(v, picker, val *value.Cell) error {
	n := pickIndex(v, picker)
	arr := v.Array()
	if n < 0 || n >= arr.Len() {
		return fmt.Errorf("poke %s: %w", value.Mold(picker, 0), value.ErrOutOfRange)
	}
	return arr.Set(n, val)
}
