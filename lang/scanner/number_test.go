package scanner

import (
	"math"
	"testing"

	"github.com/mna/rencore/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteger(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		err  error
	}{
		{"0", 0, nil},
		{"1", 1, nil},
		{"42", 42, nil},
		{"-42", -42, nil},
		{"+7", 7, nil},
		{"007", 7, nil},
		{"1'000'000", 1000000, nil},
		{"-", 0, nil},
		{"-0", 0, nil},
		{"9223372036854775807", math.MaxInt64, nil},
		{"-9223372036854775808", math.MinInt64, nil},
		{"9223372036854775808", 0, ErrOverflow},
		{"-9223372036854775809", 0, ErrOverflow},
		{"12345678901234567890", 0, ErrOverflow},
		{"12a", 0, ErrNoMatch},
		{"1.5", 0, ErrNoMatch},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out value.Cell
			n, err := Integer(&out, []byte(c.in))
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				assert.True(t, out.IsTrash())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(c.in), n)
			assert.Equal(t, c.want, out.Int64())
		})
	}
}

func TestIntegerLimits(t *testing.T) {
	lim := *DefaultLimits
	lim.MaxIntDigits = 3
	lim.MaxNumLen = 6

	var out value.Cell
	_, err := lim.Integer(&out, []byte("1234"))
	var le *LimitError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "integer", le.Kind)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = lim.Integer(&out, []byte("0000123"))
	assert.ErrorIs(t, err, ErrTooLong)

	// leading zeros are not significant digits
	n, err := lim.Integer(&out, []byte("000123"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, int64(123), out.Int64())
}

func TestDecimal(t *testing.T) {
	cases := []struct {
		in      string
		decOnly bool
		want    float64
		n       int
		err     error
	}{
		{"1.5", true, 1.5, 3, nil},
		{"-1.5", true, -1.5, 4, nil},
		{"1,5", true, 1.5, 3, nil},
		{".5", true, 0.5, 2, nil},
		{"1.", true, 1, 2, nil},
		{"1'000.25", true, 1000.25, 8, nil},
		{"1.5e3", true, 1500, 5, nil},
		{"1E-2", true, 0.01, 4, nil},
		{"2.5%", false, 2.5, 4, nil},
		{"2.5%", true, 0, 0, ErrNoMatch},
		{"1e", true, 0, 0, ErrNoMatch},
		{".", true, 0, 0, ErrNoMatch},
		{"1.5x", true, 0, 0, ErrNoMatch},
		{"1e400", true, 0, 0, ErrOverflow},
		{"1e-400", true, 0, 6, nil},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out value.Cell
			n, err := Decimal(&out, []byte(c.in), c.decOnly)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				assert.True(t, out.IsTrash())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.n, n)
			assert.InDelta(t, c.want, out.Float64(), 1e-12)
		})
	}
}

func TestPercent(t *testing.T) {
	var out value.Cell
	n, err := Percent(&out, []byte("50%"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, value.KindPercent, out.Kind())
	assert.InDelta(t, 0.5, out.Float64(), 1e-12)

	_, err = Percent(&out, []byte("50"))
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  error
	}{
		{"$1", "$1.00", nil},
		{"$1.50", "$1.50", nil},
		{"-$1.50", "-$1.50", nil},
		{"$-1.50", "-$1.50", nil},
		{"$1'000.5", "$1000.50", nil},
		{"$", "", ErrNoMatch},
		{"$1.5x", "", ErrNoMatch},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out value.Cell
			n, err := Money(&out, []byte(c.in))
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(c.in), n)
			assert.Equal(t, 0, out.Money().Cmp(moneyOf(t, c.want)))
		})
	}
}

func moneyOf(t *testing.T, s string) value.Money {
	t.Helper()

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	var digits []byte
	var frac, exp int
	for _, c := range []byte(s[1:]) {
		switch {
		case c == '.':
			frac = 1
		case isDigit(c):
			digits = append(digits, c)
			if frac > 0 {
				exp--
			}
		}
	}
	m, ok := value.MoneyFromDigits(neg, string(digits), exp)
	require.True(t, ok)
	return m
}

func TestPair(t *testing.T) {
	var out value.Cell
	n, err := Pair(&out, []byte("10x20"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, value.Pair{X: 10, Y: 20}, out.Pair())

	n, err = Pair(&out, []byte("-1.5X2.5"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, value.Pair{X: -1.5, Y: 2.5}, out.Pair())

	for _, in := range []string{"10x", "x20", "10", "10x20x"} {
		_, err := Pair(&out, []byte(in))
		assert.ErrorIs(t, err, ErrNoMatch, in)
		assert.True(t, out.IsTrash(), in)
	}
}

func TestTuple(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
		err  error
	}{
		{"1.2.3", []byte{1, 2, 3}, nil},
		{"255.255.255.0", []byte{255, 255, 255, 0}, nil},
		{"1.2", []byte{1, 2, 0}, nil},
		{"1.2.3.", []byte{1, 2, 3, 0}, nil},
		{"1.2.3.4.5.6.7.8.9.10", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil},
		{"1.2.3.4.5.6.7.8.9.10.11", nil, ErrTooLong},
		{"256.0.0", nil, ErrNoMatch},
		{"1.a.3", nil, ErrNoMatch},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out value.Cell
			n, err := Tuple(&out, []byte(c.in))
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				assert.True(t, out.IsTrash())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(c.in), n)
			assert.Equal(t, c.want, out.Tuple().Components())
		})
	}
}

func TestHex(t *testing.T) {
	var out value.Cell
	n, err := Hex(&out, []byte("ff"), 1, 16)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, int64(255), out.Int64())

	// stops at the first non-alphanumeric byte
	n, err = Hex(&out, []byte("1A}"), 1, 16)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, int64(26), out.Int64())

	_, err = Hex(&out, []byte("fg"), 1, 16)
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = Hex(&out, []byte("fff"), 1, 2)
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = Hex(&out, []byte("f"), 2, 4)
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = Hex(&out, []byte("f"), 1, 32)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestHex2(t *testing.T) {
	b, ok := Hex2([]byte("2F"))
	assert.True(t, ok)
	assert.Equal(t, byte('/'), b)

	_, ok = Hex2([]byte("2"))
	assert.False(t, ok)
	_, ok = Hex2([]byte("zz"))
	assert.False(t, ok)
}

func TestDecBuf(t *testing.T) {
	buf, n, err := DecBuf([]byte("-1'234,5e2 rest"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "-1234.5e2", string(buf))
}
