// Package array implements the array family of kinds: block, group and the
// four path kinds. Importing the package registers its hooks with the value
// package, after which the generic operations (value.Make, value.To,
// value.Cmp, value.Mold, value.Do) accept array cells.
package array

import (
	"errors"
	"fmt"

	"github.com/mna/rencore/lang/value"
)

// Kinds is the list of kinds implemented by the package.
var Kinds = []value.Kind{
	value.KindPath,
	value.KindSetPath,
	value.KindGetPath,
	value.KindLitPath,
	value.KindGroup,
	value.KindBlock,
}

// ErrModified is returned by SORT when the comparator changed the length of
// the array being sorted.
var ErrModified = errors.New("array modified during sort")

func init() {
	for _, k := range Kinds {
		value.Register(k, value.Hooks{
			Compare: compare,
			Make:    makeArray,
			To:      toArray,
			Mold:    mold,
			Pick:    pick,
			Poke:    poke,
			Action:  dispatch,
		})
	}
}

// specifier returns the context the relative elements of the array cell v
// resolve against, nil if it has none.
func specifier(v *value.Cell) *value.Context {
	ctx, _ := v.Binding().Specific()
	return ctx
}

// initAt initializes out as an array of kind k on arr at index, resolving
// relative elements with spec.
func initAt(out *value.Cell, k value.Kind, arr *value.Array, index int, spec *value.Context) *value.Cell {
	value.InitSeries(out, k, arr, index)
	if spec != nil {
		value.Bind(out, value.BindSpecific(spec), 0)
	}
	return out
}

// splices returns true if the elements of arg are inserted individually in
// an array of kind k when no /only is given. Blocks and groups splice into
// any array, paths only into paths.
func splices(k value.Kind, arg *value.Cell) bool {
	ak := arg.Kind()
	switch {
	case ak == value.KindBlock || ak == value.KindGroup:
		return true
	case ak.IsPath():
		return k.IsPath()
	}
	return false
}

// intArg returns the integer value of an integer or decimal argument.
func intArg(c *value.Cell, what string) (int, error) {
	switch c.Kind() {
	case value.KindInteger:
		return int(c.Int64()), nil
	case value.KindDecimal, value.KindPercent:
		return int(c.Float64()), nil
	}
	return 0, fmt.Errorf("%s: %s: %w", what, c.Kind().TypeName(), value.ErrInvalidArg)
}

// part returns the start index and the number of elements of v selected by
// the /part limit, clamped to the series. A nil limit selects up to the
// tail, a negative one selects elements before the index.
func part(v, limit *value.Cell) (start, n int, err error) {
	sa := v.SeriesAt()
	start = sa.Clamped()
	avail := sa.LenAt()
	if limit == nil {
		return start, avail, nil
	}

	switch k := limit.Kind(); {
	case k.IsSeries():
		lsa := limit.SeriesAt()
		if lsa.Series != sa.Series {
			return 0, 0, fmt.Errorf("part limit is another series: %w", value.ErrInvalidArg)
		}
		n = lsa.Clamped() - start
	default:
		if n, err = intArg(limit, "part limit"); err != nil {
			return 0, 0, err
		}
	}

	if n < 0 {
		n = -n
		if n > start {
			n = start
		}
		return start - n, n, nil
	}
	if n > avail {
		n = avail
	}
	return start, n, nil
}

// resolved returns copies of the cells of arr from start to end, made
// specific with spec.
func resolved(arr *value.Array, start, end int, spec *value.Context) ([]value.Cell, error) {
	if end > arr.Len() {
		end = arr.Len()
	}
	if start >= end {
		return nil, nil
	}
	cells := make([]value.Cell, end-start)
	for i := range cells {
		if err := value.Derelativize(&cells[i], arr.At(start+i), spec); err != nil {
			return nil, err
		}
	}
	return cells, nil
}
