package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	for k := KindTrash; k <= KindNull; k++ {
		if k.String() == "" {
			t.Errorf("missing name for kind %d", k)
		}
	}
	k, ok := LookupKind("set-word!")
	require.True(t, ok)
	assert.Equal(t, KindSetWord, k)
	_, ok = LookupKind("trash")
	assert.False(t, ok)
	assert.Less(t, int(KindMax), 64)
}

func TestKindCategories(t *testing.T) {
	assert.True(t, KindBlock.IsArray())
	assert.True(t, KindBlock.IsSeries())
	assert.False(t, KindObject.IsSeries())
	assert.True(t, KindText.IsSeries())
	assert.True(t, KindLitPath.IsPath())
	assert.False(t, KindBlock.IsPath())
	assert.True(t, KindIssue.IsWord())
	assert.False(t, KindText.IsBindable())
	assert.True(t, AnySeries.Has(KindTag))
	assert.False(t, AnySeries.Has(KindError))
	assert.Equal(t, []Kind{KindInteger, KindDecimal}, TypesOf(KindDecimal, KindInteger).Kinds())
}

func TestZeroCellIsTrash(t *testing.T) {
	var c Cell
	assert.True(t, c.IsTrash())
	assert.False(t, c.IsReadable())
	assert.Panics(t, func() { c.Kind() })
	assert.Panics(t, func() { c.Payload() })
}

func TestHeaderFlags(t *testing.T) {
	var c Cell
	InitDate(&c, Date{Year: 2000, Month: 1, Day: 1, Nano: time.Hour}, true, false)
	assert.True(t, c.Has(FlagDateHasTime))
	assert.False(t, c.Has(FlagDateHasZone))

	c.Set(FlagLine)
	assert.True(t, c.Has(FlagLine))
	c.Clear(FlagLine)
	assert.False(t, c.Has(FlagLine))

	// kind-specific flags are not valid for other kinds
	assert.Panics(t, func() { c.Has(FlagArrayTailNewline) })

	// re-initialization replaces every non-persistent bit
	c.Set(FlagLine)
	InitInteger(&c, 1)
	assert.False(t, c.Has(FlagLine))
	assert.Panics(t, func() { c.Has(FlagDateHasTime) })
	assert.Equal(t, KindInteger, c.Header().Kind())
}

func TestPersistentBits(t *testing.T) {
	var c Cell
	Prepare(&c, true)
	InitInteger(&c, 1)
	InitText(&c, "x")
	assert.True(t, IsStack(&c))

	Protect(&c)
	assert.Panics(t, func() { InitInteger(&c, 2) })
	assert.Panics(t, func() { Trash(&c) })
	Unprotect(&c)
	InitInteger(&c, 2)
	assert.Equal(t, int64(2), c.Int64())

	Prepare(&c, false)
	assert.False(t, IsStack(&c))
	assert.True(t, c.IsTrash())
}

func TestAccessorKind(t *testing.T) {
	var c Cell
	InitInteger(&c, 42)
	assert.Equal(t, int64(42), c.Int64())

	defer func() {
		e := recover()
		require.NotNil(t, e)
		ke, ok := e.(*AccessError)
		require.True(t, ok, "%T", e)
		assert.Equal(t, KindInteger, ke.Got)
	}()
	c.Float64()
}

func TestFalsey(t *testing.T) {
	var c Cell
	assert.False(t, InitLogic(&c, false).IsTruthy())
	assert.True(t, InitLogic(&c, true).IsTruthy())
	assert.False(t, InitBlank(&c).IsTruthy())
	assert.False(t, InitNull(&c).IsTruthy())
	assert.True(t, InitInteger(&c, 0).IsTruthy())
	assert.Nil(t, Nullize(InitNull(&c)))
	assert.NotNil(t, Nullize(InitInteger(&c, 0)))
}

func TestMove(t *testing.T) {
	var a, b Cell
	InitText(&a, "abc")
	a.Set(FlagLine)
	Prepare(&b, true)
	Move(&b, &a)
	assert.True(t, b.Has(FlagLine))
	assert.True(t, IsStack(&b))
	assert.Equal(t, "abc", b.Text().String())

	assert.Panics(t, func() { Move(&a, &a) })
	var trash Cell
	assert.Panics(t, func() { Move(&a, &trash) })
}

func TestBlit(t *testing.T) {
	var a, b, s Cell
	InitInteger(&a, 1)
	Blit(&b, &a)
	assert.Equal(t, int64(1), b.Int64())

	Prepare(&s, true)
	assert.Panics(t, func() { Blit(&s, &a) })
	assert.Panics(t, func() { Blit(&a, &a) })
}

func TestNullRejectedByArray(t *testing.T) {
	var n, i Cell
	arr := NewArray(1)
	require.ErrorIs(t, arr.Append(InitNull(&n)), ErrNullInArray)
	require.NoError(t, arr.Append(InitInteger(&i, 1)))
	assert.Equal(t, 1, arr.Len())
	assert.False(t, arr.AtEnd(0))
	assert.True(t, arr.AtEnd(1))
}

func TestArrayReadOnly(t *testing.T) {
	var i Cell
	arr := ArrayOf(InitInteger(&i, 1))
	arr.Protect(true)
	assert.ErrorIs(t, arr.Append(&i), ErrReadOnly)
	assert.ErrorIs(t, arr.SetLen(0), ErrReadOnly)
	arr.Protect(false)
	require.NoError(t, arr.SetLen(0))
	arr.Freeze()
	assert.True(t, IsFrozen(arr))
	arr.Protect(false)
	assert.ErrorIs(t, arr.Append(&i), ErrReadOnly)
}

func TestArraySetLen(t *testing.T) {
	var i Cell
	arr := ArrayOf(InitInteger(&i, 1), InitInteger(&i, 2), InitInteger(&i, 3))
	require.NoError(t, arr.SetLen(1))
	assert.Equal(t, 1, arr.Len())
	require.NoError(t, arr.SetLen(2))
	assert.True(t, arr.At(1).IsTrash())
}

func TestSeriesIndexPastTail(t *testing.T) {
	var c Cell
	InitText(&c, "abc")
	c.SetIndex(2)
	require.NoError(t, c.Text().Append("d"))
	sa := c.SeriesAt()
	assert.Equal(t, 2, sa.LenAt())

	c.SetIndex(10)
	sa = c.SeriesAt()
	assert.Equal(t, 0, sa.LenAt())
	assert.Equal(t, 4, sa.Clamped())
}

func TestSymbols(t *testing.T) {
	a, b := Intern("Foo"), Intern("foo")
	assert.Same(t, a, Intern("Foo"))
	assert.NotSame(t, a, b)
	assert.True(t, a.SameCanon(b))
	assert.Same(t, b, a.Canon())
	assert.False(t, a.SameCanon(Intern("bar")))
}

func TestMapKeys(t *testing.T) {
	var k, v Cell
	m := NewMap(2)
	require.NoError(t, m.Put(InitWord(&k, KindWord, Intern("A")), InitInteger(&v, 1)))
	require.NoError(t, m.Put(InitText(&k, "x"), InitInteger(&v, 2)))

	got, ok := m.Get(InitWord(&k, KindSetWord, Intern("a")))
	require.True(t, ok)
	assert.Equal(t, int64(1), got.Int64())

	got, ok = m.Get(InitText(&k, "X"))
	require.True(t, ok)
	assert.Equal(t, int64(2), got.Int64())

	require.NoError(t, m.Put(InitWord(&k, KindWord, Intern("a")), InitNull(&v)))
	assert.Equal(t, 1, m.Len())
	got, ok = m.Get(InitText(&k, "x"))
	require.True(t, ok)
	assert.Equal(t, int64(2), got.Int64())
}

func TestReachableNodes(t *testing.T) {
	var blk, inner, txt Cell
	in := ArrayOf(InitText(&txt, "x"))
	outer := ArrayOf(InitBlock(&inner, in), &inner)
	InitBlock(&blk, outer)

	assert.True(t, blk.HoldsCells())
	assert.True(t, blk.HoldsSeries())
	nodes := ReachableNodes(&blk)
	assert.Len(t, nodes, 3) // outer, in, text
	assert.False(t, outer.Managed())
	for _, n := range nodes {
		n.Manage()
	}
	assert.True(t, in.Managed())
}
