package scanner

import (
	"bytes"
	"math"
	"strconv"

	"github.com/mna/rencore/lang/value"
)

// Integer scans src as an integer. A leading sign and any apostrophe are
// accepted, src must contain only digits otherwise.
func Integer(out *value.Cell, src []byte) (int, error) { return DefaultLimits.Integer(out, src) }

// Decimal scans src as a decimal. If decOnly is false, a trailing '%' is
// accepted and ignored.
func Decimal(out *value.Cell, src []byte, decOnly bool) (int, error) {
	return DefaultLimits.Decimal(out, src, decOnly)
}

// Percent scans src as a percent, which must end with '%'.
func Percent(out *value.Cell, src []byte) (int, error) { return DefaultLimits.Percent(out, src) }

// Money scans src as a money amount, with an optional '$' sign.
func Money(out *value.Cell, src []byte) (int, error) { return DefaultLimits.Money(out, src) }

// Pair scans src as a pair of decimals separated by 'x'.
func Pair(out *value.Cell, src []byte) (int, error) { return DefaultLimits.Pair(out, src) }

// Tuple scans src as a tuple of dot-separated bytes.
func Tuple(out *value.Cell, src []byte) (int, error) { return DefaultLimits.Tuple(out, src) }

// Hex scans the hexadecimal digits at the start of src into an integer.
func Hex(out *value.Cell, src []byte, minLen, maxLen int) (int, error) {
	return DefaultLimits.Hex(out, src, minLen, maxLen)
}

// DecBuf validates the decimal number at the start of src and returns it
// normalized for strconv.ParseFloat, along with the number of bytes read.
func DecBuf(src []byte) ([]byte, int, error) { return DefaultLimits.DecBuf(src) }

func (l *Limits) Integer(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	if len(src) == 1 {
		switch src[0] {
		case '0':
			value.InitInteger(out, 0)
			return 1, nil
		case '1':
			value.InitInteger(out, 1)
			return 1, nil
		}
	}
	if len(src) > l.MaxNumLen {
		return 0, tooLong("integer", l.MaxNumLen)
	}

	var i int
	var neg bool
	if i < len(src) && (src[i] == '-' || src[i] == '+') {
		neg = src[i] == '-'
		i++
	}
	for i < len(src) && (src[i] == '0' || src[i] == '\'') {
		i++
	}
	if i == len(src) {
		// only zeros and separators, or nothing after the sign
		value.InitInteger(out, 0)
		return i, nil
	}

	buf := make([]byte, 0, len(src))
	if neg {
		buf = append(buf, '-')
	}
	for ; i < len(src); i++ {
		switch c := src[i]; {
		case isDigit(c):
			buf = append(buf, c)
		case c == '\'':
		default:
			return 0, ErrNoMatch
		}
	}

	digits := len(buf)
	if neg {
		digits--
	}
	if digits > l.MaxIntDigits {
		return 0, overflow("integer")
	}
	v, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return 0, overflow("integer")
	}
	// the parsed sign must be the requested one
	if v > 0 && neg || v < 0 && !neg {
		return 0, overflow("integer")
	}
	value.InitInteger(out, v)
	return len(src), nil
}

func (l *Limits) Decimal(out *value.Cell, src []byte, decOnly bool) (int, error) {
	value.Trash(out)

	f, n, err := l.decimal(src, "decimal", decOnly)
	if err != nil {
		return 0, err
	}
	value.InitDecimal(out, f)
	return n, nil
}

func (l *Limits) Percent(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	if len(src) == 0 || src[len(src)-1] != '%' {
		return 0, ErrNoMatch
	}
	f, n, err := l.decimal(src, "percent", false)
	if err != nil {
		return 0, err
	}
	value.InitPercent(out, f/100)
	return n, nil
}

// decimal parses the whole of src as a decimal, with an optional trailing
// '%' unless decOnly is set.
func (l *Limits) decimal(src []byte, kind string, decOnly bool) (float64, int, error) {
	if len(src) > l.MaxNumLen {
		return 0, 0, tooLong(kind, l.MaxNumLen)
	}
	buf, n, err := l.DecBuf(src)
	if err != nil {
		return 0, 0, err
	}
	if n < len(src) && src[n] == '%' {
		if decOnly {
			return 0, 0, ErrNoMatch
		}
		n++
	}
	if n != len(src) {
		return 0, 0, ErrNoMatch
	}
	f, err := parseFloat(buf, kind)
	if err != nil {
		return 0, 0, err
	}
	return f, n, nil
}

func parseFloat(buf []byte, kind string) (float64, error) {
	f, err := strconv.ParseFloat(string(buf), 64)
	if math.IsInf(f, 0) {
		return 0, overflow(kind)
	}
	if err != nil {
		// underflow is reported as a range error with a zero or denormal value
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, ErrNoMatch
		}
	}
	return f, nil
}

func (l *Limits) DecBuf(src []byte) ([]byte, int, error) {
	buf := make([]byte, 0, 16)
	push := func(c byte) error {
		buf = append(buf, c)
		if len(buf) >= l.MaxNumLen {
			return tooLong("decimal", l.MaxNumLen)
		}
		return nil
	}

	var i int
	if i < len(src) && (src[i] == '+' || src[i] == '-') {
		if err := push(src[i]); err != nil {
			return nil, 0, err
		}
		i++
	}

	var digit bool
	digits := func() error {
		for ; i < len(src) && (isDigit(src[i]) || src[i] == '\''); i++ {
			if src[i] == '\'' {
				continue
			}
			digit = true
			if err := push(src[i]); err != nil {
				return err
			}
		}
		return nil
	}

	if err := digits(); err != nil {
		return nil, 0, err
	}
	if i < len(src) && (src[i] == ',' || src[i] == '.') {
		i++
	}
	if err := push('.'); err != nil {
		return nil, 0, err
	}
	if err := digits(); err != nil {
		return nil, 0, err
	}
	if !digit {
		return nil, 0, ErrNoMatch
	}

	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		if err := push(src[i]); err != nil {
			return nil, 0, err
		}
		i++
		if i < len(src) && (src[i] == '+' || src[i] == '-') {
			if err := push(src[i]); err != nil {
				return nil, 0, err
			}
			i++
		}
		var exp bool
		for ; i < len(src) && isDigit(src[i]); i++ {
			exp = true
			if err := push(src[i]); err != nil {
				return nil, 0, err
			}
		}
		if !exp {
			return nil, 0, ErrNoMatch
		}
	}
	return buf, i, nil
}

func (l *Limits) Money(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	if len(src) > l.MaxNumLen {
		return 0, tooLong("money", l.MaxNumLen)
	}

	var i int
	var neg, signed bool
	sign := func() {
		if !signed && i < len(src) && (src[i] == '-' || src[i] == '+') {
			neg = src[i] == '-'
			signed = true
			i++
		}
	}
	sign()
	if i < len(src) && src[i] == '$' {
		i++
	}
	sign()

	var digits []byte
	var frac int
	for ; i < len(src) && (isDigit(src[i]) || src[i] == '\''); i++ {
		if src[i] != '\'' {
			digits = append(digits, src[i])
		}
	}
	if i < len(src) && (src[i] == '.' || src[i] == ',') {
		i++
		for ; i < len(src) && (isDigit(src[i]) || src[i] == '\''); i++ {
			if src[i] != '\'' {
				digits = append(digits, src[i])
				frac++
			}
		}
	}
	if len(digits) == 0 {
		return 0, ErrNoMatch
	}

	var exp int
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		i++
		n, w := grabInt(src[i:])
		if w == 0 || !isDigit(src[i+w-1]) {
			return 0, ErrNoMatch
		}
		exp = n
		i += w
	}
	if i != len(src) {
		return 0, ErrNoMatch
	}

	m, ok := value.MoneyFromDigits(neg, string(digits), exp-frac)
	if !ok {
		return 0, overflow("money")
	}
	value.InitMoney(out, m)
	return i, nil
}

func (l *Limits) Pair(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	buf, n, err := l.DecBuf(src)
	if err != nil {
		return 0, err
	}
	if n >= len(src) || (src[n] != 'x' && src[n] != 'X') {
		return 0, ErrNoMatch
	}
	x, err := parseFloat(buf, "pair")
	if err != nil {
		return 0, err
	}
	n++

	buf, m, err := l.DecBuf(src[n:])
	if err != nil {
		return 0, err
	}
	if n+m != len(src) {
		return 0, ErrNoMatch
	}
	y, err := parseFloat(buf, "pair")
	if err != nil {
		return 0, err
	}
	value.InitPair(out, x, y)
	return len(src), nil
}

func (l *Limits) Tuple(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	if len(src) == 0 {
		return 0, ErrNoMatch
	}
	if size := bytes.Count(src, []byte{'.'}) + 1; size > l.MaxTuple {
		return 0, tooLong("tuple", l.MaxTuple)
	}

	comps := make([]byte, 0, value.MaxTuple)
	var i int
	for {
		n, w := grabInt(src[i:])
		if n < 0 || n > 255 {
			return 0, ErrNoMatch
		}
		comps = append(comps, byte(n))
		i += w
		if i >= len(src) || src[i] != '.' {
			break
		}
		i++
		if i == len(src) {
			// trailing dot counts as an empty component
			comps = append(comps, 0)
			break
		}
	}
	if i != len(src) {
		return 0, ErrNoMatch
	}
	for len(comps) < 3 {
		comps = append(comps, 0)
	}
	value.InitTuple(out, value.MakeTuple(comps...))
	return i, nil
}

func (l *Limits) Hex(out *value.Cell, src []byte, minLen, maxLen int) (int, error) {
	value.Trash(out)

	if maxLen > l.MaxHexLen {
		return 0, tooLong("hex", l.MaxHexLen)
	}

	var v uint64
	var n int
	for ; n < len(src) && isAlnum(src[n]); n++ {
		d := digitVal(rune(src[n]))
		if d > 15 {
			return 0, ErrNoMatch
		}
		if n+1 > maxLen {
			return 0, ErrNoMatch
		}
		v = v<<4 | uint64(d)
	}
	if n < minLen {
		return 0, ErrNoMatch
	}
	value.InitInteger(out, int64(v))
	return n, nil
}

// Hex2 decodes the two hexadecimal digits at the start of src, as found
// after a '%' in files, urls and emails.
func Hex2(src []byte) (byte, bool) {
	if len(src) < 2 {
		return 0, false
	}
	d1, d2 := digitVal(rune(src[0])), digitVal(rune(src[1]))
	if d1 > 15 || d2 > 15 {
		return 0, false
	}
	return byte(d1<<4 | d2), true
}

// grabInt reads an optionally signed decimal integer at the start of src
// and returns its value and the number of bytes read. A sign without digits
// reads as 0. Values saturate instead of overflowing.
func grabInt(src []byte) (int, int) {
	var i, v int
	var neg bool
	if i < len(src) && (src[i] == '-' || src[i] == '+') {
		neg = src[i] == '-'
		i++
	}
	for ; i < len(src) && isDigit(src[i]); i++ {
		if v < math.MaxInt32 {
			v = v*10 + int(src[i]-'0')
		}
	}
	if neg {
		v = -v
	}
	return v, i
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func digitVal(rn rune) int {
	switch {
	case '0' <= rn && rn <= '9':
		return int(rn - '0')
	case 'a' <= rn && rn <= 'f':
		return int(rn - 'a' + 10)
	case 'A' <= rn && rn <= 'F':
		return int(rn - 'A' + 10)
	}
	return 16 // larger than any legal digit val
}
