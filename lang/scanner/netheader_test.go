package scanner

import (
	"testing"

	"github.com/mna/rencore/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetHeader(t *testing.T) {
	src := "Subject: hello\r\nFrom: a@b.c\nX-Long: one\n two\nSubject: again\n\nbody: no"
	arr, err := NetHeader([]byte(src))
	require.NoError(t, err)
	require.Equal(t, 6, arr.Len())

	names := []string{"Subject", "From", "X-Long"}
	for i, name := range names {
		key := arr.At(i * 2)
		assert.Equal(t, value.KindSetWord, key.Kind())
		assert.Equal(t, name, key.Symbol().String())
	}

	subj := arr.At(1)
	require.Equal(t, value.KindBlock, subj.Kind())
	require.Equal(t, 2, subj.Array().Len())
	assert.Equal(t, "hello", subj.Array().At(0).Text().String())
	assert.Equal(t, "again", subj.Array().At(1).Text().String())

	assert.Equal(t, "a@b.c", arr.At(3).Text().String())
	assert.Equal(t, "onetwo", arr.At(5).Text().String())
}

func TestNetHeaderStop(t *testing.T) {
	arr, err := NetHeader([]byte("  no header here"))
	require.NoError(t, err)
	assert.Equal(t, 0, arr.Len())

	arr, err = NetHeader([]byte("A: 1\n-B: 2"))
	require.NoError(t, err)
	assert.Equal(t, 2, arr.Len())

	_, err = NetHeader([]byte("A: \xff"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
