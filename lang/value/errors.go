package value

import (
	"errors"
	"fmt"
)

var (
	// ErrReadOnly is returned when mutating protected or frozen storage.
	ErrReadOnly = errors.New("series is read-only")
	// ErrNullInArray is returned when storing a null in an array.
	ErrNullInArray = errors.New("null cannot be stored in an array")
	// ErrUnspecified is returned when resolving a relative cell without a
	// specifier.
	ErrUnspecified = errors.New("relative value resolved without a specifier")
	// ErrBadMake is the error wrapped by MakeError for an unsupported MAKE.
	ErrBadMake = errors.New("bad make arg")
	// ErrBadTo is the error wrapped by MakeError for an unsupported TO.
	ErrBadTo = errors.New("bad to arg")
	// ErrOutOfRange is returned when an index or position is out of range.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidArg is returned when an argument is not valid for an
	// operation.
	ErrInvalidArg = errors.New("invalid argument")
	// ErrNotComparable is returned when two values have no order.
	ErrNotComparable = errors.New("values are not comparable")
	// ErrNoAction is returned when a kind does not implement a verb.
	ErrNoAction = errors.New("action not supported")
)

// A MakeError reports a MAKE or TO that the target kind cannot perform with
// the provided argument. It wraps ErrBadMake or ErrBadTo.
type MakeError struct {
	Kind Kind
	Arg  Kind
	Err  error
}

func (e *MakeError) Error() string {
	return fmt.Sprintf("%s: cannot produce %s from %s", e.Err, e.Kind.TypeName(), e.Arg.TypeName())
}

func (e *MakeError) Unwrap() error { return e.Err }

// A SpecifierError reports a relative cell resolved with a specifier that
// does not originate from the action the cell is relative to.
type SpecifierError struct {
	Action    *Action
	Specifier *Context
}

func (e *SpecifierError) Error() string {
	var got string
	if act := e.Specifier.Action(); act != nil {
		got = act.Name().String()
	} else {
		got = e.Specifier.Kind().String()
	}
	return fmt.Sprintf("value relative to %s resolved with specifier of %s", e.Action.Name(), got)
}

// An ActionError reports a verb not supported by a kind. It wraps
// ErrNoAction.
type ActionError struct {
	Verb Verb
	Kind Kind
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s does not support %s", ErrNoAction, e.Kind.TypeName(), e.Verb)
}

func (e *ActionError) Unwrap() error { return ErrNoAction }

// An AccessError is the panic value of a typed accessor used on a cell of the
// wrong kind.
type AccessError struct {
	Want string
	Got  Kind
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cell accessor: want %s, got %s", e.Want, e.Got)
}

// A ContractError is the panic value of a violated cell contract, such as
// reading trash or writing a protected cell.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return e.Op + ": " + e.Msg
}
