package array

import (
	"fmt"

	"github.com/mna/rencore/lang/value"
)

func dispatch(out *value.Cell, verb value.Verb, v *value.Cell, args *value.Args) error {
	if ok, err := seriesCommon(out, verb, v, args); ok || err != nil {
		return err
	}

	switch verb {
	case value.VerbFind, value.VerbSelect:
		return find(out, verb, v, args)
	case value.VerbAppend, value.VerbInsert, value.VerbChange:
		return modify(out, verb, v, args)
	case value.VerbTake:
		return take(out, v, args)
	case value.VerbClear:
		arr := v.Array()
		if err := arr.CheckWritable(); err != nil {
			return err
		}
		if index := v.SeriesAt().Clamped(); index < arr.Len() {
			if err := arr.SetLen(index); err != nil {
				return err
			}
		}
		value.Move(out, v)
		return nil
	case value.VerbCopy:
		return copyArray(out, v, args)
	case value.VerbSwap:
		return swap(out, v, args.Arg)
	case value.VerbReverse:
		return reverse(out, v, args.Part)
	case value.VerbSort:
		return Sort(out, v, args)
	case value.VerbRandom:
		return random(out, v, args)
	}
	return &value.ActionError{Verb: verb, Kind: v.Kind()}
}

// seriesCommon implements the verbs shared by all series, which only move
// the index or report on it. It returns true if verb was handled.
func seriesCommon(out *value.Cell, verb value.Verb, v *value.Cell, args *value.Args) (bool, error) {
	sa := v.SeriesAt()
	length := sa.Series.Len()

	at := func(i int) {
		if i < 0 {
			i = 0
		}
		if i > length {
			i = length
		}
		value.Move(out, v)
		out.SetIndex(i)
	}

	switch verb {
	case value.VerbLength:
		value.InitInteger(out, int64(sa.LenAt()))
	case value.VerbIndex:
		value.InitInteger(out, int64(sa.Index+1))
	case value.VerbHead:
		at(0)
	case value.VerbTail:
		at(length)
	case value.VerbHeadQ:
		value.InitLogic(out, sa.Index == 0)
	case value.VerbTailQ:
		value.InitLogic(out, sa.Index >= length)
	case value.VerbNext:
		at(sa.Clamped() + 1)
	case value.VerbBack:
		at(sa.Clamped() - 1)
	case value.VerbAt, value.VerbSkip:
		if args.Arg == nil {
			return true, fmt.Errorf("%s: missing argument: %w", verb, value.ErrInvalidArg)
		}
		n, err := intArg(args.Arg, verb.String())
		if err != nil {
			return true, err
		}
		if verb == value.VerbAt && n > 0 {
			n--
		}
		at(sa.Clamped() + n)
	default:
		return false, nil
	}
	return true, nil
}

// modify implements APPEND, INSERT and CHANGE. The argument is spliced into
// the array if it is an array that splices into the kind and /only is not
// set, it is inserted as a single value otherwise. APPEND returns the array
// at its head, INSERT and CHANGE the position after the modification.
func modify(out *value.Cell, verb value.Verb, v *value.Cell, args *value.Args) error {
	arr := v.Array()
	if err := arr.CheckWritable(); err != nil {
		return err
	}
	arg := args.Arg
	index := v.SeriesAt().Clamped()
	if verb == value.VerbAppend {
		index = arr.Len()
	}

	result := func(i int) {
		if verb == value.VerbAppend {
			i = 0
		}
		value.Move(out, v)
		out.SetIndex(i)
	}
	if arg == nil || arg.IsNull() {
		result(index)
		return nil
	}

	dups := 1
	if args.Dup != nil {
		n, err := intArg(args.Dup, "dup")
		if err != nil {
			return err
		}
		dups = n
	}
	if dups <= 0 {
		result(index)
		return nil
	}

	// the inserted values are copied first, arg may be the array itself
	var items []value.Cell
	if !args.Only && splices(v.Kind(), arg) {
		start, n := arg.SeriesAt().Clamped(), arg.SeriesAt().LenAt()
		if args.Part != nil && verb != value.VerbChange {
			var err error
			if start, n, err = part(arg, args.Part); err != nil {
				return err
			}
		}
		cells, err := resolved(arg.Array(), start, start+n, specifier(arg))
		if err != nil {
			return err
		}
		items = cells
	} else {
		items = make([]value.Cell, 1)
		value.Move(&items[0], arg)
	}
	if args.Line && len(items) > 0 {
		items[0].Set(value.FlagLine)
	}

	size := len(items) * dups
	if verb == value.VerbChange {
		remove := size
		if args.Part != nil {
			_, n, err := part(v, args.Part)
			if err != nil {
				return err
			}
			remove = n
		}
		if err := arr.Remove(index, remove); err != nil {
			return err
		}
	}

	ptrs := make([]*value.Cell, 0, size)
	for d := 0; d < dups; d++ {
		for i := range items {
			ptrs = append(ptrs, &items[i])
		}
	}
	if err := arr.Insert(index, ptrs...); err != nil {
		return err
	}
	result(index + size)
	return nil
}

// take removes and returns the element at the index, or with /part a block
// of the elements in the range. With /last the elements are taken from the
// tail.
func take(out *value.Cell, v *value.Cell, args *value.Args) error {
	if args.Deep {
		return fmt.Errorf("take/deep: %w", value.ErrInvalidArg)
	}
	arr := v.Array()
	if err := arr.CheckWritable(); err != nil {
		return err
	}

	index, n := v.SeriesAt().Clamped(), 1
	if args.Part != nil {
		var err error
		if index, n, err = part(v, args.Part); err != nil {
			return err
		}
		if n == 0 {
			value.InitBlock(out, value.NewArray(0))
			return nil
		}
	}
	if args.Last {
		index = arr.Len() - n
	}
	if index < 0 || index >= arr.Len() {
		if args.Part == nil {
			value.InitNull(out)
			return nil
		}
		value.InitBlock(out, value.NewArray(0))
		return nil
	}

	spec := specifier(v)
	if args.Part != nil {
		cells, err := resolved(arr, index, index+n, spec)
		if err != nil {
			return err
		}
		taken := value.NewArray(len(cells))
		for i := range cells {
			if err := taken.Append(&cells[i]); err != nil {
				return err
			}
		}
		value.InitBlock(out, taken)
	} else if err := value.Derelativize(out, arr.At(index), spec); err != nil {
		return err
	}
	return arr.Remove(index, n)
}

// copyArray implements COPY, with /part and /deep. Relative elements of the
// copy are made specific.
func copyArray(out *value.Cell, v *value.Cell, args *value.Args) error {
	start, n, err := part(v, args.Part)
	if err != nil {
		return err
	}
	cp := v.Array().Copy(start, start+n, args.Deep)
	if spec := specifier(v); spec != nil {
		var tmp value.Cell
		for i := 0; i < cp.Len(); i++ {
			cell := cp.At(i)
			if !cell.Kind().IsBindable() || !value.IsRelative(cell) {
				continue
			}
			if err := value.Derelativize(&tmp, cell, spec); err != nil {
				return err
			}
			if err := cp.Set(i, &tmp); err != nil {
				return err
			}
		}
	}
	value.InitSeries(out, v.Kind(), cp, 0)
	return nil
}

// swap exchanges the element at the index of v with the element at the
// index of other, an array.
func swap(out *value.Cell, v, other *value.Cell) error {
	if other == nil || !other.Kind().IsArray() {
		return fmt.Errorf("swap: %w", value.ErrInvalidArg)
	}
	a, b := v.Array(), other.Array()
	if err := a.CheckWritable(); err != nil {
		return err
	}
	if err := b.CheckWritable(); err != nil {
		return err
	}

	i, j := v.Index(), other.Index()
	if i >= 0 && i < a.Len() && j >= 0 && j < b.Len() {
		x, y := a.At(i), b.At(j)
		if x != y {
			tmp := *x
			value.Blit(x, y)
			value.Blit(y, &tmp)
		}
	}
	value.Move(out, v)
	return nil
}

// reverse reverses the elements from the index in place, limited by the
// /part limit if non-nil.
func reverse(out *value.Cell, v, limit *value.Cell) error {
	arr := v.Array()
	if err := arr.CheckWritable(); err != nil {
		return err
	}
	start, n, err := part(v, limit)
	if err != nil {
		return err
	}
	for i, j := start, start+n-1; i < j; i, j = i+1, j-1 {
		x, y := arr.At(i), arr.At(j)
		tmp := *x
		value.Blit(x, y)
		value.Blit(y, &tmp)
	}
	value.Move(out, v)
	return nil
}
