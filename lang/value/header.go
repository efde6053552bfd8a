package value

import "fmt"

// Header is the first word of a cell. It packs the kind, the general flags,
// the kind-specific flags and the persistent node bits:
//
//	bits  0-7   kind
//	bits  8-15  general flags
//	bits 16-23  kind-specific flags
//	bits 24-31  persistent bits (stack, protected)
//
// Persistent bits belong to the slot, not to the value it holds. They survive
// re-initialization, everything else is replaced.
type Header uint64

const (
	kindMask     Header = 0xFF
	generalShift        = 8
	specificShift       = 16

	nodeStack     Header = 1 << 24
	nodeProtected Header = 1 << 25
	persistMask          = nodeStack | nodeProtected
)

// Kind returns the raw kind stored in the header, without any readability
// check.
func (h Header) Kind() Kind { return Kind(h & kindMask) }

// A Flag is a single header bit along with the category of kinds it is
// valid for. The low byte is the bit, the next byte is the category.
type Flag uint16

type flagCategory uint8

const (
	catGeneral flagCategory = iota
	catDate
	catAction
	catArray
)

var flagCategories = [...]struct {
	name  string
	kinds TypeSet
}{
	catGeneral: {"general", AnyValue | TypesOf(KindNull)},
	catDate:    {"date", TypesOf(KindDate)},
	catAction:  {"action", TypesOf(KindAction)},
	catArray:   {"array", AnyArray},
}

// General flags, valid for every readable kind.
const (
	// FlagFalsey marks a conditionally false value (false, blank and null).
	FlagFalsey Flag = 1 << iota
	// FlagLine requests a line break before the value when molded.
	FlagLine
	// FlagThrown marks a value that is the signal of a non-local exit.
	FlagThrown
	// FlagRelative is set when the binding is relative to an action.
	FlagRelative
	// FlagUnevaluated marks a value that came from source as a literal.
	FlagUnevaluated
)

// Kind-specific flags.
const (
	FlagDateHasTime      = Flag(catDate)<<8 | 1
	FlagDateHasZone      = Flag(catDate)<<8 | 2
	FlagActionNative     = Flag(catAction)<<8 | 1
	FlagArrayTailNewline = Flag(catArray)<<8 | 1
)

var flagNames = map[Flag]string{
	FlagFalsey:           "falsey",
	FlagLine:             "line",
	FlagThrown:           "thrown",
	FlagRelative:         "relative",
	FlagUnevaluated:      "unevaluated",
	FlagDateHasTime:      "date-has-time",
	FlagDateHasZone:      "date-has-zone",
	FlagActionNative:     "action-native",
	FlagArrayTailNewline: "array-tail-newline",
}

func (f Flag) String() string {
	if s, ok := flagNames[f]; ok {
		return s
	}
	return fmt.Sprintf("<invalid Flag %#x>", uint16(f))
}

func (f Flag) category() flagCategory { return flagCategory(f >> 8) }

func (f Flag) bits() Header {
	b := Header(f & 0xFF)
	if f.category() == catGeneral {
		return b << generalShift
	}
	return b << specificShift
}

// check panics if the flag is not valid for the kind k.
func (f Flag) check(k Kind) {
	cat := flagCategories[f.category()]
	if !cat.kinds.Has(k) {
		panic(&ContractError{Op: "flag " + f.String(), Msg: fmt.Sprintf("%s flag used on a %s cell", cat.name, k)})
	}
}

// Has returns true if the flag is set on the cell. It panics if the cell is
// trash or if the flag is not valid for the cell's kind.
func (c *Cell) Has(f Flag) bool {
	f.check(c.Kind())
	return c.header&f.bits() != 0
}

// Set sets the flag on the cell, with the same checks as Has.
func (c *Cell) Set(f Flag) {
	f.check(c.Kind())
	c.header |= f.bits()
}

// Clear clears the flag on the cell, with the same checks as Has.
func (c *Cell) Clear(f Flag) {
	f.check(c.Kind())
	c.header &^= f.bits()
}

// Header returns the raw header word of the cell.
func (c *Cell) Header() Header { return c.header }

// reset replaces every non-persistent bit of the header with kind and the
// provided flags.
func (c *Cell) reset(k Kind, flags ...Flag) {
	AssertWritable(c)
	h := c.header&persistMask | Header(k)
	for _, f := range flags {
		f.check(k)
		h |= f.bits()
	}
	c.header = h
	c.binding = Binding{}
}
