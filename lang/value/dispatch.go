package value

import (
	"fmt"
	"math/rand"
)

// Hooks are the per-kind implementations of the generic operations. A kind
// registers the hooks it supports with Register, a nil hook means the
// operation is not supported (or, for Compare and Mold, that the built-in
// implementation applies).
type Hooks struct {
	// Compare is the three-way comparison of two cells of the kind. Composite
	// kinds compare their elements with CmpDepth(x, y, cased, depth-1).
	Compare func(a, b *Cell, cased bool, depth int) (int, error)

	// Make constructs a value of kind k from an exemplar argument.
	Make func(out *Cell, k Kind, arg *Cell) error

	// To converts arg to kind k.
	To func(out *Cell, k Kind, arg *Cell) error

	// Mold writes the textual representation of v.
	Mold func(m *Molder, v *Cell)

	// Pick initializes out with the element of v selected by picker, null if
	// there is none.
	Pick func(out, v, picker *Cell) error

	// Poke stores val in the element of v selected by picker.
	Poke func(v, picker, val *Cell) error

	// Action executes verb on v.
	Action func(out *Cell, verb Verb, v *Cell, args *Args) error
}

var hooks [KindMax + 1]Hooks

// Register sets the non-nil hooks of h for kind k, keeping the hooks
// previously registered for the operations h does not define.
func Register(k Kind, h Hooks) {
	cur := &hooks[k]
	if h.Compare != nil {
		cur.Compare = h.Compare
	}
	if h.Make != nil {
		cur.Make = h.Make
	}
	if h.To != nil {
		cur.To = h.To
	}
	if h.Mold != nil {
		cur.Mold = h.Mold
	}
	if h.Pick != nil {
		cur.Pick = h.Pick
	}
	if h.Poke != nil {
		cur.Poke = h.Poke
	}
	if h.Action != nil {
		cur.Action = h.Action
	}
}

// Make constructs a value of kind k from arg into out. A blank arg makes a
// null for every kind but blank itself. On error out is trash.
func Make(out *Cell, k Kind, arg *Cell) error {
	if arg.Kind() == KindBlank && k != KindBlank {
		InitNull(out)
		return nil
	}
	switch k {
	case KindBlank:
		InitBlank(out)
		return nil
	case KindDatatype:
		if arg.Kind() == KindDatatype {
			Move(out, arg)
			return nil
		}
	}

	h := hooks[k].Make
	if h == nil {
		Trash(out)
		return &MakeError{Kind: k, Arg: arg.Kind(), Err: ErrBadMake}
	}
	if err := h(out, k, arg); err != nil {
		Trash(out)
		return err
	}
	return nil
}

// To converts arg to kind k into out. Converting a non-series value to its
// own kind is a copy. On error out is trash.
func To(out *Cell, k Kind, arg *Cell) error {
	if ak := arg.Kind(); ak == k && !ak.IsSeries() {
		Move(out, arg)
		return nil
	}
	if h := hooks[k].To; h != nil {
		if err := h(out, k, arg); err != nil {
			Trash(out)
			return err
		}
		return nil
	}
	Trash(out)
	return &MakeError{Kind: k, Arg: arg.Kind(), Err: ErrBadTo}
}

// Pick initializes out with the element of v selected by picker.
func Pick(out, v, picker *Cell) error {
	h := hooks[v.Kind()].Pick
	if h == nil {
		return &ActionError{Verb: VerbPick, Kind: v.Kind()}
	}
	return h(out, v, picker)
}

// Poke stores val in the element of v selected by picker.
func Poke(v, picker, val *Cell) error {
	h := hooks[v.Kind()].Poke
	if h == nil {
		return &ActionError{Verb: VerbPoke, Kind: v.Kind()}
	}
	return h(v, picker, val)
}

// Do executes verb on v, with the refinements and extra arguments in args,
// which may be nil.
func Do(out *Cell, verb Verb, v *Cell, args *Args) error {
	if args == nil {
		args = &Args{}
	}
	switch verb {
	case VerbPick:
		return Pick(out, v, args.Arg)
	case VerbPoke:
		if err := Poke(v, args.Arg, args.Value); err != nil {
			return err
		}
		Move(out, args.Value)
		return nil
	}

	h := hooks[v.Kind()].Action
	if h == nil {
		return &ActionError{Verb: verb, Kind: v.Kind()}
	}
	return h(out, verb, v, args)
}

// Reflect initializes out with the property of v. The type of null is
// null.
func Reflect(out, v *Cell, property string) error {
	switch property {
	case "type":
		if v.Kind() == KindNull {
			InitNull(out)
			return nil
		}
		InitDatatype(out, v.Kind())
		return nil
	case "length":
		return Do(out, VerbLength, v, nil)
	case "index":
		return Do(out, VerbIndex, v, nil)
	}
	return fmt.Errorf("reflect %s of %s: %w", property, v.Kind().TypeName(), ErrInvalidArg)
}

// An Applier invokes an action value with arguments. The evaluator provides
// it to operations that call back into user code, such as SORT with a
// comparator.
type Applier interface {
	Apply(out *Cell, action *Cell, args ...*Cell) error
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(out *Cell, action *Cell, args ...*Cell) error

func (f ApplierFunc) Apply(out *Cell, action *Cell, args ...*Cell) error {
	return f(out, action, args...)
}

// Args holds the arguments and refinements of a verb. Which fields are used
// depends on the verb.
type Args struct {
	// Arg is the main argument: the value to find, append, swap with, the
	// picker or the position for AT and SKIP.
	Arg *Cell
	// Value is the value stored by POKE.
	Value *Cell

	Part    *Cell // /part limit, a count or a position in the same series
	Skip    *Cell // /skip record size
	Dup     *Cell // /dup count
	Compare *Cell // SORT /compare, a comparator action or a field offset

	Only    bool
	Case    bool
	Reverse bool
	Last    bool
	Match   bool
	Tail    bool
	Line    bool
	Deep    bool
	All     bool
	Secure  bool

	// Applier invokes comparator actions for SORT.
	Applier Applier
	// Rand is the source of RANDOM without /secure, the global source if nil.
	Rand *rand.Rand
}

// A Verb identifies a generic action.
type Verb uint8

//nolint:revive
const (
	VerbPick Verb = iota
	VerbPoke
	VerbFind
	VerbSelect
	VerbAppend
	VerbInsert
	VerbChange
	VerbTake
	VerbClear
	VerbCopy
	VerbSwap
	VerbReverse
	VerbSort
	VerbRandom
	VerbLength
	VerbIndex
	VerbHead
	VerbTail
	VerbHeadQ
	VerbTailQ
	VerbAt
	VerbSkip
	VerbNext
	VerbBack
	maxVerb
)

var verbNames = [...]string{
	VerbPick:    "pick",
	VerbPoke:    "poke",
	VerbFind:    "find",
	VerbSelect:  "select",
	VerbAppend:  "append",
	VerbInsert:  "insert",
	VerbChange:  "change",
	VerbTake:    "take",
	VerbClear:   "clear",
	VerbCopy:    "copy",
	VerbSwap:    "swap",
	VerbReverse: "reverse",
	VerbSort:    "sort",
	VerbRandom:  "random",
	VerbLength:  "length?",
	VerbIndex:   "index?",
	VerbHead:    "head",
	VerbTail:    "tail",
	VerbHeadQ:   "head?",
	VerbTailQ:   "tail?",
	VerbAt:      "at",
	VerbSkip:    "skip",
	VerbNext:    "next",
	VerbBack:    "back",
}

func (v Verb) String() string {
	if v < maxVerb {
		return verbNames[v]
	}
	return fmt.Sprintf("<invalid Verb %d>", v)
}

// LookupVerb returns the verb named name.
func LookupVerb(name string) (Verb, bool) {
	for v := Verb(0); v < maxVerb; v++ {
		if verbNames[v] == name {
			return v, true
		}
	}
	return 0, false
}
