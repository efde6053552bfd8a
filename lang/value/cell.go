package value

import "time"

// A Cell is the universal value slot. It is made of a header word, a binding
// (meaningful for bindable kinds only) and a payload whose type is determined
// by the kind.
//
// The zero Cell is prepared trash: writable, but unreadable until initialized
// by one of the Init functions.
type Cell struct {
	header  Header
	binding Binding
	payload Payload
}

// Kind returns the kind of the cell. It panics if the cell is trash.
func (c *Cell) Kind() Kind {
	k := c.header.Kind()
	if k == KindTrash {
		panic(&ContractError{Op: "Kind", Msg: "cell is trash"})
	}
	return k
}

// IsTrash returns true if the cell is prepared but not initialized.
func (c *Cell) IsTrash() bool { return c.header.Kind() == KindTrash }

// IsReadable is the opposite of IsTrash.
func (c *Cell) IsReadable() bool { return !c.IsTrash() }

// IsNull returns true if the cell holds null.
func (c *Cell) IsNull() bool { return c.Kind() == KindNull }

// IsTruthy returns true unless the cell is falsey (false, blank or null).
func (c *Cell) IsTruthy() bool { return !c.Has(FlagFalsey) }

// Payload returns the payload of the cell for an exhaustive type switch. It
// panics if the cell is trash.
func (c *Cell) Payload() Payload {
	_ = c.Kind()
	return c.payload
}

// Binding returns the binding of the cell, the zero Binding for unbindable
// kinds.
func (c *Cell) Binding() Binding { return c.binding }

func (c *Cell) want(ok bool, what string) {
	if !ok {
		panic(&AccessError{Want: what, Got: c.header.Kind()})
	}
}

// Int64 returns the value of an integer cell.
func (c *Cell) Int64() int64 {
	c.want(c.Kind() == KindInteger, "integer")
	return int64(c.payload.(Integer))
}

// Float64 returns the value of a decimal or percent cell.
func (c *Cell) Float64() float64 {
	k := c.Kind()
	c.want(k == KindDecimal || k == KindPercent, "decimal or percent")
	return float64(c.payload.(Decimal))
}

// Money returns the value of a money cell.
func (c *Cell) Money() Money {
	c.want(c.Kind() == KindMoney, "money")
	return c.payload.(Money)
}

// Char returns the value of a char cell.
func (c *Cell) Char() rune {
	c.want(c.Kind() == KindChar, "char")
	return rune(c.payload.(Char))
}

// Logic returns the value of a logic cell.
func (c *Cell) Logic() bool {
	c.want(c.Kind() == KindLogic, "logic")
	return bool(c.payload.(Logic))
}

// Pair returns the value of a pair cell.
func (c *Cell) Pair() Pair {
	c.want(c.Kind() == KindPair, "pair")
	return c.payload.(Pair)
}

// Tuple returns the value of a tuple cell.
func (c *Cell) Tuple() Tuple {
	c.want(c.Kind() == KindTuple, "tuple")
	return c.payload.(Tuple)
}

// Duration returns the value of a time cell.
func (c *Cell) Duration() time.Duration {
	c.want(c.Kind() == KindTime, "time")
	return time.Duration(c.payload.(Time))
}

// Date returns the value of a date cell.
func (c *Cell) Date() Date {
	c.want(c.Kind() == KindDate, "date")
	return c.payload.(Date)
}

// SeriesAt returns the series handle of a series or vector cell.
func (c *Cell) SeriesAt() SeriesAt {
	k := c.Kind()
	c.want(k.IsSeries() || k == KindVector, "series")
	return c.payload.(SeriesAt)
}

// Index returns the index of a series cell.
func (c *Cell) Index() int { return c.SeriesAt().Index }

// SetIndex sets the index of a series cell. The index is not validated.
func (c *Cell) SetIndex(i int) {
	sa := c.SeriesAt()
	AssertWritable(c)
	sa.Index = i
	c.payload = sa
}

// Array returns the storage of an array cell.
func (c *Cell) Array() *Array {
	c.want(c.Kind().IsArray(), "array")
	return c.payload.(SeriesAt).Series.(*Array)
}

// Text returns the storage of a string kind cell.
func (c *Cell) Text() *Text {
	c.want(c.Kind().IsString(), "string")
	return c.payload.(SeriesAt).Series.(*Text)
}

// Binary returns the storage of a binary cell.
func (c *Cell) Binary() *Binary {
	c.want(c.Kind() == KindBinary, "binary")
	return c.payload.(SeriesAt).Series.(*Binary)
}

// Vector returns the storage of a vector cell.
func (c *Cell) Vector() *Vector {
	c.want(c.Kind() == KindVector, "vector")
	return c.payload.(SeriesAt).Series.(*Vector)
}

// Symbol returns the spelling of a word cell.
func (c *Cell) Symbol() *Symbol {
	c.want(c.Kind().IsWord(), "word")
	return c.payload.(WordRef).Symbol
}

// WordIndex returns the binding index of a word cell.
func (c *Cell) WordIndex() int {
	c.want(c.Kind().IsWord(), "word")
	return c.payload.(WordRef).Index
}

// Context returns the context of an object, frame, module or error cell.
func (c *Cell) Context() *Context {
	c.want(c.Kind().IsContext(), "context")
	return c.payload.(ContextRef).Context
}

// Action returns the action of an action cell.
func (c *Cell) Action() *Action {
	c.want(c.Kind() == KindAction, "action")
	return c.payload.(ActionRef).Action
}

// Map returns the storage of a map cell.
func (c *Cell) Map() *Map {
	c.want(c.Kind() == KindMap, "map")
	return c.payload.(MapRef).Map
}

// Handle returns the value of a handle cell.
func (c *Cell) Handle() Handle {
	c.want(c.Kind() == KindHandle, "handle")
	return c.payload.(Handle)
}

// Datatype returns the kind denoted by a datatype cell.
func (c *Cell) Datatype() Kind {
	c.want(c.Kind() == KindDatatype, "datatype")
	return c.payload.(Datatype).Kind
}

// TypeSet returns the value of a typeset cell.
func (c *Cell) TypeSet() TypeSet {
	c.want(c.Kind() == KindTypeset, "typeset")
	return c.payload.(Typeset).Types
}
