package array

import (
	"fmt"

	"github.com/mna/rencore/lang/scanner"
	"github.com/mna/rencore/lang/value"
)

func makeArray(out *value.Cell, k value.Kind, arg *value.Cell) error {
	switch ak := arg.Kind(); {
	case ak == value.KindInteger || ak == value.KindDecimal:
		// size hint
		n, _ := intArg(arg, "make")
		if n < 0 {
			return fmt.Errorf("make %s %d: %w", k.TypeName(), n, value.ErrOutOfRange)
		}
		value.InitSeries(out, k, value.NewArray(n), 0)
		return nil

	case ak == value.KindText:
		arr, err := scanner.Load("", []byte(arg.Text().From(arg.Index())))
		if err != nil {
			return err
		}
		value.InitSeries(out, k, arr, 0)
		return nil

	case ak == value.KindBinary:
		arr, err := scanner.Load("", arg.Binary().Bytes()[arg.SeriesAt().Clamped():])
		if err != nil {
			return err
		}
		value.InitSeries(out, k, arr, 0)
		return nil

	case ak.IsArray():
		return makeAlias(out, k, arg)

	case ak == value.KindTypeset:
		kinds := arg.TypeSet().Kinds()
		arr := value.NewArray(len(kinds))
		var dt value.Cell
		for _, kind := range kinds {
			if err := arr.Append(value.InitDatatype(&dt, kind)); err != nil {
				return err
			}
		}
		value.InitSeries(out, k, arr, 0)
		return nil

	case ak == value.KindMap:
		pairs := arg.Map().Pairs()
		value.InitSeries(out, k, pairs.Copy(0, pairs.Len(), false), 0)
		return nil

	case ak.IsContext():
		ctx := arg.Context()
		arr := value.NewArray(ctx.Len() * 2)
		var key value.Cell
		for i := 0; i < ctx.Len(); i++ {
			v := ctx.Var(i)
			if v.IsTrash() || v.IsNull() {
				continue
			}
			value.InitWord(&key, value.KindSetWord, ctx.Key(i))
			if err := arr.Append(&key, v); err != nil {
				return err
			}
		}
		value.InitSeries(out, k, arr, 0)
		return nil

	case ak == value.KindVector:
		vec := arg.Vector()
		start := arg.SeriesAt().Clamped()
		arr := value.NewArray(vec.Len() - start)
		var elem value.Cell
		for i := start; i < vec.Len(); i++ {
			if err := arr.Append(vec.Elem(&elem, i)); err != nil {
				return err
			}
		}
		value.InitSeries(out, k, arr, 0)
		return nil
	}
	return &value.MakeError{Kind: k, Arg: arg.Kind(), Err: value.ErrBadMake}
}

// makeAlias makes an array from the construction spec [array index]: the
// result shares the storage of array, at its index plus index-1.
func makeAlias(out *value.Cell, k value.Kind, arg *value.Cell) error {
	bad := &value.MakeError{Kind: k, Arg: arg.Kind(), Err: value.ErrBadMake}

	spec := arg.Array()
	at := arg.SeriesAt().Clamped()
	if spec.Len()-at != 2 {
		return bad
	}
	inner, pos := spec.At(at), spec.At(at+1)
	if !inner.Kind().IsArray() || pos.Kind() != value.KindInteger {
		return bad
	}

	index := inner.Index() + int(pos.Int64()) - 1
	arr := inner.Array()
	if index < 0 || index > arr.Len() {
		return bad
	}
	derived, err := value.DeriveSpecifier(specifier(arg), inner)
	if err != nil {
		return err
	}
	initAt(out, k, arr, index, derived)
	return nil
}

func toArray(out *value.Cell, k value.Kind, arg *value.Cell) error {
	if arg.Kind() == k || splices(k, arg) {
		sa := arg.SeriesAt()
		cells, err := resolved(arg.Array(), sa.Clamped(), arg.Array().Len(), specifier(arg))
		if err != nil {
			return err
		}
		arr := value.NewArray(len(cells))
		for i := range cells {
			if err := arr.Append(&cells[i]); err != nil {
				return err
			}
		}
		value.InitSeries(out, k, arr, 0)
		return nil
	}

	if arg.IsNull() {
		return &value.MakeError{Kind: k, Arg: arg.Kind(), Err: value.ErrBadTo}
	}
	arr := value.NewArray(1)
	if err := arr.Append(arg); err != nil {
		return err
	}
	value.InitSeries(out, k, arr, 0)
	return nil
}
