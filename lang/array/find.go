package array

import (
	"github.com/mna/rencore/lang/value"
)

// FindFlags control the search of Find.
type FindFlags uint8

//nolint:revive
const (
	FindOnly    FindFlags = 1 << iota // an array target is a single value, not a sequence
	FindMatch                         // only match at the start index
	FindReverse                       // search backwards from the index
	FindCase                          // case-sensitive comparison
	FindLast                          // search backwards from the end
	FindTail                          // FIND returns the position after the match
)

// NotFound is the position returned by Find when there is no match.
const NotFound = -1

// Find returns the position of target in arr, searching from index up to
// (but excluding) end by increments of skip. An array target is searched as
// a sequence of length elements unless FindOnly is set; a datatype or
// typeset target matches values of those kinds; words match by canon
// spelling unless FindCase is set. With FindReverse the search starts at
// index-1 and goes towards the head, with FindLast it starts at end-length.
func Find(arr *value.Array, index, end int, target *value.Cell, length int, flags FindFlags, skip int) int {
	if end > arr.Len() {
		end = arr.Len()
	}
	if skip < 1 {
		skip = 1
	}
	start := index
	if flags&(FindReverse|FindLast) != 0 {
		skip = -skip
		start = 0
		if flags&FindLast != 0 {
			index = end - length
		} else {
			index--
		}
	}
	cased := flags&FindCase != 0
	match := flags&FindMatch != 0

	tk := target.Kind()
	switch {
	case tk.IsWord():
		sym := target.Symbol()
		for ; index >= start && index < end; index += skip {
			item := arr.At(index)
			if ik := item.Kind(); ik.IsWord() {
				if cased {
					if item.Symbol() == sym && ik == tk {
						return index
					}
				} else if item.Symbol().SameCanon(sym) {
					return index
				}
			}
			if match {
				break
			}
		}
		return NotFound

	case tk.IsArray() && flags&FindOnly == 0:
		seq := target.Array()
		first := target.SeriesAt().Clamped()
		if length < 1 {
			return NotFound
		}
		for ; index >= start && index < end; index += skip {
			if matchAt(arr, index, seq, first, length, cased) {
				return index
			}
			if match {
				break
			}
		}
		return NotFound

	case tk == value.KindDatatype || tk == value.KindTypeset:
		for ; index >= start && index < end; index += skip {
			if matchType(arr.At(index), target) {
				return index
			}
			if match {
				break
			}
		}
		return NotFound
	}

	for ; index >= start && index < end; index += skip {
		if value.Equal(arr.At(index), target, cased) {
			return index
		}
		if match {
			break
		}
	}
	return NotFound
}

// matchAt returns true if the length elements of seq from first equal the
// elements of arr at index.
func matchAt(arr *value.Array, index int, seq *value.Array, first, length int, cased bool) bool {
	for n := 0; n < length; n++ {
		if index+n >= arr.Len() || first+n >= seq.Len() {
			return false
		}
		if !value.Equal(arr.At(index+n), seq.At(first+n), cased) {
			return false
		}
	}
	return true
}

func matchType(item, target *value.Cell) bool {
	ik := item.Kind()
	if target.Kind() == value.KindDatatype {
		want := target.Datatype()
		return ik == want || ik == value.KindDatatype && item.Datatype() == want
	}
	ts := target.TypeSet()
	switch {
	case ts.Has(ik):
		return true
	case ik == value.KindDatatype:
		return ts.Has(item.Datatype())
	case ik == value.KindTypeset:
		return item.TypeSet() == ts
	}
	return false
}

// findSimple returns the position of the first element equal to target from
// index, or the length of arr if there is none.
func findSimple(arr *value.Array, index int, target *value.Cell) int {
	for i := index; i < arr.Len(); i++ {
		if value.Equal(arr.At(i), target, false) {
			return i
		}
	}
	return arr.Len()
}

// find implements FIND and SELECT.
func find(out *value.Cell, verb value.Verb, v *value.Cell, args *value.Args) error {
	target := args.Arg
	if target == nil || target.IsNull() {
		value.InitNull(out)
		return nil
	}

	arr := v.Array()
	index := v.SeriesAt().Clamped()
	length := 1
	if target.Kind().IsArray() && !args.Only {
		length = target.SeriesAt().LenAt()
	}

	end := arr.Len()
	if args.Part != nil {
		start, n, err := part(v, args.Part)
		if err != nil {
			return err
		}
		end = start + n
	}
	skip := 1
	if args.Skip != nil {
		n, err := intArg(args.Skip, "skip")
		if err != nil {
			return err
		}
		if n < 1 {
			n = 1
		}
		skip = n
	}

	var flags FindFlags
	for _, f := range []struct {
		set  bool
		flag FindFlags
	}{
		{args.Only, FindOnly},
		{args.Match, FindMatch},
		{args.Reverse, FindReverse},
		{args.Case, FindCase},
		{args.Last, FindLast},
		{args.Tail, FindTail},
	} {
		if f.set {
			flags |= f.flag
		}
	}

	ret := Find(arr, index, end, target, length, flags, skip)
	if ret == NotFound || ret >= end {
		value.InitNull(out)
		return nil
	}
	if args.Only {
		length = 1
	}

	if verb == value.VerbFind {
		if args.Tail || args.Match {
			ret += length
		}
		value.Move(out, v)
		out.SetIndex(ret)
		return nil
	}

	ret += length
	if ret >= end {
		value.InitNull(out)
		return nil
	}
	return value.Derelativize(out, arr.At(ret), specifier(v))
}
