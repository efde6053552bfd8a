package array

import (
	"testing"

	"github.com/mna/rencore/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	var out value.Cell

	require.NoError(t, value.Make(&out, value.KindBlock, integer(10)))
	assert.Equal(t, "[]", molded(&out))

	err := value.Make(&out, value.KindBlock, integer(-1))
	assert.ErrorIs(t, err, value.ErrOutOfRange)
	assert.True(t, out.IsTrash())

	require.NoError(t, value.Make(&out, value.KindGroup, value.InitText(&value.Cell{}, "a <b> #c")))
	assert.Equal(t, "(a <b> #c)", molded(&out))

	bin := value.InitSeries(&value.Cell{}, value.KindBinary, value.NewBinary([]byte("1 2")), 0)
	require.NoError(t, value.Make(&out, value.KindBlock, bin))
	assert.Equal(t, "[1 2]", molded(&out))

	ts := value.InitTypeset(&value.Cell{}, value.TypesOf(value.KindInteger, value.KindText))
	require.NoError(t, value.Make(&out, value.KindBlock, ts))
	assert.Equal(t, "[text! integer!]", molded(&out))

	m := value.NewMap(1)
	require.NoError(t, m.Put(word("k"), integer(1)))
	require.NoError(t, value.Make(&out, value.KindBlock, value.InitMap(&value.Cell{}, m)))
	assert.Equal(t, "[k 1]", molded(&out))

	ctx := value.NewContext(value.KindObject, 1)
	require.NoError(t, ctx.Append(value.Intern("a"), integer(1)))
	require.NoError(t, value.Make(&out, value.KindBlock, value.InitContext(&value.Cell{}, ctx)))
	assert.Equal(t, "[a: 1]", molded(&out))

	vec := value.NewVector(false, 2)
	require.NoError(t, vec.Set(1, 7))
	require.NoError(t, value.Make(&out, value.KindBlock, value.InitSeries(&value.Cell{}, value.KindVector, vec, 0)))
	assert.Equal(t, "[0 7]", molded(&out))

	require.NoError(t, value.Make(&out, value.KindBlock, value.InitBlank(&value.Cell{})))
	assert.True(t, out.IsNull())

	err = value.Make(&out, value.KindBlock, value.InitChar(&value.Cell{}, 'x'))
	var me *value.MakeError
	require.ErrorAs(t, err, &me)
	assert.ErrorIs(t, err, value.ErrBadMake)
}

func TestMakeAlias(t *testing.T) {
	inner := block(t, "a b c")
	spec := value.InitBlock(&value.Cell{}, value.ArrayOf(inner, integer(2)))

	var out value.Cell
	require.NoError(t, value.Make(&out, value.KindPath, spec))
	assert.Equal(t, "b/c", molded(&out))

	// the result aliases the storage
	require.NoError(t, inner.Array().Append(word("d")))
	assert.Equal(t, "b/c/d", molded(&out))
	assert.Same(t, inner.Array(), out.Array())

	bad := value.InitBlock(&value.Cell{}, value.ArrayOf(inner, integer(9)))
	assert.ErrorIs(t, value.Make(&out, value.KindPath, bad), value.ErrBadMake)

	bad = value.InitBlock(&value.Cell{}, value.ArrayOf(inner))
	assert.ErrorIs(t, value.Make(&out, value.KindPath, bad), value.ErrBadMake)
}

func TestTo(t *testing.T) {
	var out value.Cell

	b := block(t, "a b")
	require.NoError(t, value.To(&out, value.KindBlock, b))
	assert.Equal(t, "[a b]", molded(&out))
	assert.NotSame(t, b.Array(), out.Array())

	require.NoError(t, value.To(&out, value.KindPath, b))
	assert.Equal(t, "a/b", molded(&out))

	p := value.Move(&value.Cell{}, &out)
	require.NoError(t, value.To(&out, value.KindGroup, p))
	assert.Equal(t, "(a/b)", molded(&out))

	require.NoError(t, value.To(&out, value.KindSetPath, p))
	assert.Equal(t, "a/b:", molded(&out))

	require.NoError(t, value.To(&out, value.KindBlock, integer(1)))
	assert.Equal(t, "[1]", molded(&out))
}
