package array

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/mna/rencore/lang/value"
	"golang.org/x/exp/slices"
)

// Sort sorts the array v in place from its index. The refinements in args
// are:
//   - Case for a case-sensitive comparison;
//   - Skip for records of that many elements, compared by their first
//     element (or the field selected by an integer Compare);
//   - Compare, an integer field offset (1-based) or an action called with
//     two elements through args.Applier;
//   - Part to sort only part of the array;
//   - Reverse for a descending order.
//
// The elements are sorted in a snapshot that is written back only if every
// comparison succeeded and the array length did not change, otherwise the
// array is left as it was and the error is returned. The comparator may
// mutate the array, the snapshot holds no pointer into its storage.
func Sort(out *value.Cell, v *value.Cell, args *value.Args) error {
	arr := v.Array()
	if err := arr.CheckWritable(); err != nil {
		return err
	}

	start, n, err := part(v, args.Part)
	if err != nil {
		return err
	}
	if n <= 1 {
		value.Move(out, v)
		return nil
	}

	skip := 1
	if args.Skip != nil {
		if skip, err = intArg(args.Skip, "sort/skip"); err != nil {
			return err
		}
		if skip <= 0 || n%skip != 0 || skip > n {
			return fmt.Errorf("sort/skip %d: %w", skip, value.ErrOutOfRange)
		}
	}

	var offset int
	var comparator *value.Cell
	if c := args.Compare; c != nil {
		switch c.Kind() {
		case value.KindAction:
			if args.Applier == nil {
				return fmt.Errorf("sort/compare: no applier: %w", value.ErrInvalidArg)
			}
			comparator = c
		case value.KindInteger:
			offset = int(c.Int64()) - 1
			if offset < 0 || offset >= skip {
				return fmt.Errorf("sort/compare offset %d: %w", offset+1, value.ErrOutOfRange)
			}
		default:
			return fmt.Errorf("sort/compare %s: %w", c.Kind().TypeName(), value.ErrInvalidArg)
		}
	}

	length := arr.Len()
	snap := slices.Clone(arr.Cells()[start : start+n])
	spec := specifier(v)
	records := make([]int, n/skip)
	for i := range records {
		records[i] = i * skip
	}

	var sortErr error
	cmpRecords := func(a, b int) int {
		if sortErr != nil {
			return 0
		}
		x, y := &snap[a+offset], &snap[b+offset]
		if args.Reverse {
			x, y = y, x
		}
		var c int
		if comparator != nil {
			c, sortErr = applyComparator(args.Applier, comparator, x, y, spec)
		} else {
			c, sortErr = value.Cmp(x, y, args.Case)
		}
		return c
	}
	slices.SortStableFunc(records, cmpRecords)

	if sortErr != nil {
		return sortErr
	}
	if arr.Len() != length {
		return ErrModified
	}
	if err := arr.CheckWritable(); err != nil {
		return err
	}

	for i, rec := range records {
		for j := 0; j < skip; j++ {
			value.Blit(arr.At(start+i*skip+j), &snap[rec+j])
		}
	}
	value.Move(out, v)
	return nil
}

// applyComparator calls the comparator action with y and x, made specific
// with spec, and maps its result to a three-way comparison: a logic true or
// a positive number is greater, zero is equal, any other truthy value is
// greater and anything else is less.
func applyComparator(ap value.Applier, comparator, x, y *value.Cell, spec *value.Context) (int, error) {
	var a, b, res value.Cell
	if err := value.Derelativize(&a, y, spec); err != nil {
		return 0, err
	}
	if err := value.Derelativize(&b, x, spec); err != nil {
		return 0, err
	}
	if err := ap.Apply(&res, comparator, &a, &b); err != nil {
		return 0, err
	}
	if res.IsTrash() {
		return -1, nil
	}
	switch res.Kind() {
	case value.KindLogic:
		if res.Logic() {
			return 1, nil
		}
		return -1, nil
	case value.KindInteger:
		return sign(float64(res.Int64())), nil
	case value.KindDecimal:
		return sign(res.Float64()), nil
	}
	if res.IsTruthy() {
		return 1, nil
	}
	return -1, nil
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f == 0:
		return 0
	}
	return -1
}

// random implements RANDOM: with /only it picks a random element from the
// index (null at the tail), otherwise it shuffles the elements from the
// index in place.
func random(out *value.Cell, v *value.Cell, args *value.Args) error {
	arr := v.Array()
	index := v.SeriesAt().Clamped()
	n := arr.Len() - index

	if args.Only {
		if n <= 0 {
			value.InitNull(out)
			return nil
		}
		k, err := randInt(n, args)
		if err != nil {
			return err
		}
		return value.Derelativize(out, arr.At(index+k), specifier(v))
	}

	if err := arr.CheckWritable(); err != nil {
		return err
	}
	for ; n > 1; n-- {
		k, err := randInt(n, args)
		if err != nil {
			return err
		}
		if x, y := arr.At(index+k), arr.At(index+n-1); x != y {
			tmp := *x
			value.Blit(x, y)
			value.Blit(y, &tmp)
		}
	}
	value.Move(out, v)
	return nil
}

// randInt returns a random integer in [0, n), from crypto/rand if
// args.Secure is set.
func randInt(n int, args *value.Args) (int, error) {
	if args.Secure {
		k, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return 0, err
		}
		return int(k.Int64()), nil
	}
	if args.Rand != nil {
		return args.Rand.Intn(n), nil
	}
	return rand.Intn(n), nil
}
