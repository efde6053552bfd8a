package scanner

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoMatch is returned by the literal routines when the input does not
	// match the grammar of the literal. It is a recoverable condition, the
	// caller may try another literal form.
	ErrNoMatch = errors.New("no match")
	// ErrOverflow is the error wrapped by LimitError when a literal has the
	// right form but its value cannot be represented.
	ErrOverflow = errors.New("overflow")
	// ErrTooLong is the error wrapped by LimitError when a literal exceeds a
	// configured length limit.
	ErrTooLong = errors.New("literal too long")
	// ErrInvalidUTF8 is returned when a literal contains invalid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 encoding")
)

// A LimitError reports a literal that is recognizably of the right form but
// cannot be represented, either because its value overflows or because it
// exceeds a limit. Unlike ErrNoMatch, it should be reported to the user and
// not used to try another literal form.
type LimitError struct {
	Kind  string // the literal kind, e.g. "integer"
	Limit int    // the limit exceeded, 0 for a value overflow
	Err   error  // ErrOverflow or ErrTooLong
}

func (e *LimitError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("%s %s: limit is %d", e.Kind, e.Err, e.Limit)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Err)
}

func (e *LimitError) Unwrap() error { return e.Err }

func overflow(kind string) error {
	return &LimitError{Kind: kind, Err: ErrOverflow}
}

func tooLong(kind string, limit int) error {
	return &LimitError{Kind: kind, Limit: limit, Err: ErrTooLong}
}

// PrintError prints the error to w. If err is the result of joined errors
// (it implements Unwrap() []error), each error is printed on its own line.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range errs.Unwrap() {
			PrintError(w, e)
		}
		return
	}
	fmt.Fprintln(w, err)
}
