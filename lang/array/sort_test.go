package array

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/mna/rencore/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	cases := []struct {
		desc string
		src  string
		args value.Args
		want string
	}{
		{"asc", "3 1 2", value.Args{}, "[1 2 3]"},
		{"reverse", "3 1 2", value.Args{Reverse: true}, "[3 2 1]"},
		{"mixed-numbers", "3 1.5 2", value.Args{}, "[1.5 2 3]"},
		{"fold-stable", "b a A", value.Args{}, "[a A b]"},
		{"case", "b a A", value.Args{Case: true}, "[A a b]"},
		{"skip", "c 1 a 3 b 2", value.Args{Skip: integer(2)}, "[a 3 b 2 c 1]"},
		{"offset", "c 1 a 3 b 2", value.Args{Skip: integer(2), Compare: integer(2)}, "[c 1 b 2 a 3]"},
		{"part", "3 1 2 0", value.Args{Part: integer(3)}, "[1 2 3 0]"},
		{"single", "1", value.Args{}, "[1]"},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			b := block(t, c.src)
			var out value.Cell
			require.NoError(t, value.Do(&out, value.VerbSort, b, &c.args))
			assert.Equal(t, c.want, molded(b))
			assert.Equal(t, c.want, molded(&out))
		})
	}
}

func TestSortFromIndex(t *testing.T) {
	b := block(t, "9 3 1 2")
	b.SetIndex(1)
	var out value.Cell
	require.NoError(t, value.Do(&out, value.VerbSort, b, nil))
	b.SetIndex(0)
	assert.Equal(t, "[9 1 2 3]", molded(b))
}

func TestSortComparator(t *testing.T) {
	var cmp value.Cell
	value.InitAction(&cmp, value.NewAction("lesser?", nil, nil))

	lesser := value.ApplierFunc(func(out, action *value.Cell, args ...*value.Cell) error {
		c, err := value.Cmp(args[0], args[1], false)
		if err != nil {
			return err
		}
		value.InitLogic(out, c < 0)
		return nil
	})

	b := block(t, "3 1 2")
	var out value.Cell
	require.NoError(t, value.Do(&out, value.VerbSort, b, &value.Args{Compare: &cmp, Applier: lesser}))
	assert.Equal(t, "[1 2 3]", molded(b))

	require.NoError(t, value.Do(&out, value.VerbSort, b, &value.Args{Compare: &cmp, Applier: lesser, Reverse: true}))
	assert.Equal(t, "[3 2 1]", molded(b))

	// integer results are a three-way comparison
	diff := value.ApplierFunc(func(out, action *value.Cell, args ...*value.Cell) error {
		value.InitInteger(out, args[1].Int64()-args[0].Int64())
		return nil
	})
	b = block(t, "2 3 1")
	require.NoError(t, value.Do(&out, value.VerbSort, b, &value.Args{Compare: &cmp, Applier: diff}))
	assert.Equal(t, "[1 2 3]", molded(b))
}

func TestSortComparatorError(t *testing.T) {
	var cmp value.Cell
	value.InitAction(&cmp, value.NewAction("fail", nil, nil))
	errThrown := errors.New("thrown")

	calls := 0
	failing := value.ApplierFunc(func(out, action *value.Cell, args ...*value.Cell) error {
		calls++
		if calls > 1 {
			return errThrown
		}
		value.InitLogic(out, true)
		return nil
	})

	b := block(t, "3 1 2 5 4")
	var out value.Cell
	err := value.Do(&out, value.VerbSort, b, &value.Args{Compare: &cmp, Applier: failing})
	assert.ErrorIs(t, err, errThrown)
	assert.Equal(t, "[3 1 2 5 4]", molded(b))

	// a comparator that shrinks the array
	shrink := value.ApplierFunc(func(out, action *value.Cell, args ...*value.Cell) error {
		if err := b.Array().SetLen(1); err != nil {
			return err
		}
		value.InitLogic(out, false)
		return nil
	})
	err = value.Do(&out, value.VerbSort, b, &value.Args{Compare: &cmp, Applier: shrink})
	assert.ErrorIs(t, err, ErrModified)
	assert.Equal(t, "[3]", molded(b))
}

func TestSortComparatorGrows(t *testing.T) {
	var cmp value.Cell
	value.InitAction(&cmp, value.NewAction("grow", nil, nil))

	b := block(t, "3 1 2")
	inserted := false
	grow := value.ApplierFunc(func(out, action *value.Cell, args ...*value.Cell) error {
		if !inserted {
			inserted = true
			var c value.Cell
			if err := b.Array().Insert(0, value.InitInteger(&c, 99)); err != nil {
				return err
			}
		}
		value.InitLogic(out, args[0].Int64() > args[1].Int64())
		return nil
	})

	var out value.Cell
	err := value.Do(&out, value.VerbSort, b, &value.Args{Compare: &cmp, Applier: grow})
	assert.ErrorIs(t, err, ErrModified)
	assert.Equal(t, "[99 3 1 2]", molded(b))
}

func TestSortErrors(t *testing.T) {
	var out value.Cell
	b := block(t, "3 1 2")
	err := value.Do(&out, value.VerbSort, b, &value.Args{Skip: integer(2)})
	assert.ErrorIs(t, err, value.ErrOutOfRange)

	err = value.Do(&out, value.VerbSort, b, &value.Args{Compare: integer(2)})
	assert.ErrorIs(t, err, value.ErrOutOfRange)

	p := value.NewAction("p", nil, nil)
	q := value.NewAction("q", nil, nil)
	arr := value.ArrayOf(value.InitAction(&value.Cell{}, p), value.InitAction(&value.Cell{}, q))
	err = value.Do(&out, value.VerbSort, value.InitBlock(&value.Cell{}, arr), nil)
	assert.ErrorIs(t, err, value.ErrNotComparable)

	b.Array().Freeze()
	err = value.Do(&out, value.VerbSort, b, nil)
	assert.ErrorIs(t, err, value.ErrReadOnly)
}

func TestRandom(t *testing.T) {
	b := block(t, "1 2 3 4 5 6 7 8")
	var out value.Cell
	args := &value.Args{Rand: rand.New(rand.NewSource(1))}
	require.NoError(t, value.Do(&out, value.VerbRandom, b, args))
	assert.Equal(t, 8, b.Array().Len())

	require.NoError(t, value.Do(&out, value.VerbSort, b, nil))
	assert.Equal(t, "[1 2 3 4 5 6 7 8]", molded(b))

	require.NoError(t, value.Do(&out, value.VerbRandom, b, &value.Args{Only: true, Secure: true}))
	assert.Equal(t, value.KindInteger, out.Kind())
	n := out.Int64()
	assert.True(t, n >= 1 && n <= 8, "%d", n)

	b.SetIndex(8)
	require.NoError(t, value.Do(&out, value.VerbRandom, b, &value.Args{Only: true}))
	assert.True(t, out.IsNull())
}
