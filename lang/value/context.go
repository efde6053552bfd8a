package value

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// A Context is a list of keys and their variables: the storage of objects,
// modules, errors and frames. A frame is the context of an action's
// invocation and records the action it originates from, which is what
// relative values are resolved against.
type Context struct {
	node
	kind   Kind
	stack  bool
	action *Action
	keys   []*Symbol
	vars   []Cell
	index  *swiss.Map[*Symbol, int] // canon symbol to slot
}

// NewContext returns an empty managed context of kind k, which must be one
// of the context kinds.
func NewContext(k Kind, capacity int) *Context {
	if !k.IsContext() {
		panic(&AccessError{Want: "context kind", Got: k})
	}
	ctx := &Context{
		kind:  k,
		keys:  make([]*Symbol, 0, capacity),
		vars:  make([]Cell, 0, capacity),
		index: swiss.NewMap[*Symbol, int](uint32(capacity)),
	}
	ctx.Manage()
	return ctx
}

// NewFrame returns the frame of an invocation of act, with one variable per
// parameter, initialized to null. The frame is stack scoped and unmanaged
// until a value bound to it is moved out of the stack.
func NewFrame(act *Action) *Context {
	ctx := &Context{
		kind:   KindFrame,
		stack:  true,
		action: act,
		index:  swiss.NewMap[*Symbol, int](uint32(len(act.params))),
	}
	for _, p := range act.params {
		InitNull(ctx.add(p.Symbol))
	}
	return ctx
}

func (c *Context) add(sym *Symbol) *Cell {
	c.index.Put(sym.Canon(), len(c.keys))
	c.keys = append(c.keys, sym)
	c.vars = append(c.vars, Cell{})
	return Prepare(&c.vars[len(c.vars)-1], c.stack)
}

func (c *Context) Kind() Kind { return c.kind }

// Action returns the action a frame originates from, nil for other
// contexts.
func (c *Context) Action() *Action { return c.action }

// Stack returns true if the context was created for a stack frame.
func (c *Context) Stack() bool { return c.stack }

func (c *Context) Len() int { return len(c.keys) }

// Key returns the key of slot i.
func (c *Context) Key(i int) *Symbol { return c.keys[i] }

// Var returns the variable of slot i. The cell is invalidated by Append.
func (c *Context) Var(i int) *Cell { return &c.vars[i] }

// Lookup returns the slot of the key with the same canon as sym.
func (c *Context) Lookup(sym *Symbol) (int, bool) {
	return c.index.Get(sym.Canon())
}

// Get returns the variable of sym, or nil if it is not a key of c.
func (c *Context) Get(sym *Symbol) *Cell {
	if i, ok := c.Lookup(sym); ok {
		return &c.vars[i]
	}
	return nil
}

// Append adds the key sym with a copy of v, or overwrites the variable if
// the key exists. Frames have a fixed set of keys.
func (c *Context) Append(sym *Symbol, v *Cell) error {
	if i, ok := c.Lookup(sym); ok {
		Move(&c.vars[i], v)
		return nil
	}
	if c.kind == KindFrame {
		return fmt.Errorf("%s is not a parameter of %s: %w", sym, c.action.Name(), ErrInvalidArg)
	}
	Move(c.add(sym), v)
	return nil
}

// Bind binds every word of arr, recursively, whose spelling is a key of c.
func (c *Context) Bind(arr *Array) {
	for i := range arr.cells {
		cell := &arr.cells[i]
		switch k := cell.Kind(); {
		case k.IsWord():
			if slot, ok := c.Lookup(cell.Symbol()); ok {
				Bind(cell, BindSpecific(c), slot)
			}
		case k.IsArray():
			c.Bind(cell.Array())
		}
	}
}
