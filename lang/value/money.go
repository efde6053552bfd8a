package value

import (
	"math/big"
	"strings"
)

// moneyBits is the size of the significand of a Money value.
const moneyBits = 87

var maxSignificand = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), moneyBits), big.NewInt(1))

// Money is the payload of money cells, a base-10 floating point value: Neg,
// a power of ten exponent and an unsigned significand split in a high and a
// low part. Its value is (-1)^Neg * (Hi<<64 | Lo) * 10^Exp.
type Money struct {
	Neg bool
	Exp int8
	Hi  uint32
	Lo  uint64
}

// MakeMoney returns the money value for the significand and exponent. It
// returns false if either does not fit the representation.
func MakeMoney(neg bool, sig *big.Int, exp int) (Money, bool) {
	if sig.Sign() < 0 || sig.Cmp(maxSignificand) > 0 || exp < -128 || exp > 127 {
		return Money{}, false
	}
	lo := new(big.Int).And(sig, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(sig, 64)
	return Money{Neg: neg && sig.Sign() != 0, Exp: int8(exp), Hi: uint32(hi.Uint64()), Lo: lo.Uint64()}, true
}

// MoneyFromDigits builds a money value from a string of decimal digits and
// the exponent to apply to it.
func MoneyFromDigits(neg bool, digits string, exp int) (Money, bool) {
	if digits == "" {
		digits = "0"
	}
	sig, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Money{}, false
	}
	// drop trailing zeros while the exponent allows it, to keep large
	// integral amounts representable.
	ten := big.NewInt(10)
	for exp < 0 && sig.Cmp(maxSignificand) > 0 {
		q, r := new(big.Int).QuoRem(sig, ten, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		sig = q
		exp++
	}
	return MakeMoney(neg, sig, exp)
}

// Significand returns the unsigned significand.
func (m Money) Significand() *big.Int {
	sig := new(big.Int).SetUint64(uint64(m.Hi))
	sig.Lsh(sig, 64)
	return sig.Or(sig, new(big.Int).SetUint64(m.Lo))
}

// Rat returns the exact value of m.
func (m Money) Rat() *big.Rat {
	r := new(big.Rat).SetInt(m.Significand())
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(int(m.Exp)))), nil)
	if m.Exp >= 0 {
		r.Mul(r, new(big.Rat).SetInt(pow))
	} else {
		r.Quo(r, new(big.Rat).SetInt(pow))
	}
	if m.Neg {
		r.Neg(r)
	}
	return r
}

// Float64 returns the nearest float64 value to m.
func (m Money) Float64() float64 {
	f, _ := m.Rat().Float64()
	return f
}

// Cmp compares m and o by value.
func (m Money) Cmp(o Money) int { return m.Rat().Cmp(o.Rat()) }

// String returns the molded money, e.g. "$1.50" or "-$0.25". At least two
// fractional digits are always printed.
func (m Money) String() string {
	digits := m.Significand().String()
	var intPart, frac string
	if m.Exp >= 0 {
		intPart = digits
		if digits != "0" {
			intPart += strings.Repeat("0", int(m.Exp))
		}
	} else {
		n := -int(m.Exp)
		if len(digits) <= n {
			digits = strings.Repeat("0", n-len(digits)+1) + digits
		}
		intPart, frac = digits[:len(digits)-n], digits[len(digits)-n:]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	var sb strings.Builder
	if m.Neg {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	sb.WriteString(intPart)
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
