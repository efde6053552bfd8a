package scanner

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/mna/rencore/lang/value"
)

// Limits are the hard bounds applied by the literal routines. Exceeding one
// of them is a LimitError, not a mismatch.
type Limits struct {
	// MaxNumLen is the maximum length in bytes of a numeric literal.
	MaxNumLen int `env:"MAX_NUM_LEN" envDefault:"64"`
	// MaxIntDigits is the maximum number of significant digits of an
	// integer.
	MaxIntDigits int `env:"MAX_INT_DIGITS" envDefault:"19"`
	// MaxTuple is the maximum number of components of a tuple, at most
	// value.MaxTuple.
	MaxTuple int `env:"MAX_TUPLE" envDefault:"10"`
	// MaxHexLen is the maximum number of digits of a hexadecimal number.
	MaxHexLen int `env:"MAX_HEX_LEN" envDefault:"16"`
	// MaxYear is the maximum year of a date, at most value.MaxYear.
	MaxYear int `env:"MAX_YEAR" envDefault:"16383"`
}

// DefaultLimits are the limits used by the package-level functions.
var DefaultLimits = &Limits{
	MaxNumLen:    64,
	MaxIntDigits: 19,
	MaxTuple:     value.MaxTuple,
	MaxHexLen:    16,
	MaxYear:      value.MaxYear,
}

// LoadLimits returns the limits configured in the environment variables
// with the provided prefix, e.g. RENCORE_MAX_NUM_LEN. If environ is not
// nil, it is used instead of the process' environment. Unset variables use
// the default limits.
func LoadLimits(prefix string, environ map[string]string) (*Limits, error) {
	var l Limits
	if err := env.Parse(&l, env.Options{Prefix: prefix, Environment: environ}); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate returns an error if a limit is outside the range supported by
// the value representation.
func (l *Limits) Validate() error {
	check := func(name string, v, lo, hi int) error {
		if v < lo || v > hi {
			return fmt.Errorf("invalid limit %s=%d: must be in [%d, %d]", name, v, lo, hi)
		}
		return nil
	}
	if err := check("MaxNumLen", l.MaxNumLen, 1, 1<<16); err != nil {
		return err
	}
	if err := check("MaxIntDigits", l.MaxIntDigits, 1, 19); err != nil {
		return err
	}
	if err := check("MaxTuple", l.MaxTuple, 3, value.MaxTuple); err != nil {
		return err
	}
	if err := check("MaxHexLen", l.MaxHexLen, 1, 16); err != nil {
		return err
	}
	return check("MaxYear", l.MaxYear, 1, value.MaxYear)
}
