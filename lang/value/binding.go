package value

// A Binding is the extra slot of a bindable cell. It is one of three states:
// unbound (the zero Binding), relative to an action whose frame is not known
// yet, or specific to a context.
type Binding struct {
	ref Node // nil, *Action or *Context
}

// BindRelative returns a binding relative to act.
func BindRelative(act *Action) Binding { return Binding{ref: act} }

// BindSpecific returns a binding to ctx. A nil ctx is the unbound binding.
func BindSpecific(ctx *Context) Binding {
	if ctx == nil {
		return Binding{}
	}
	return Binding{ref: ctx}
}

// IsUnbound returns true for the zero Binding.
func (b Binding) IsUnbound() bool { return b.ref == nil }

// Relative returns the action of a relative binding.
func (b Binding) Relative() (*Action, bool) {
	act, ok := b.ref.(*Action)
	return act, ok
}

// Specific returns the context of a specific binding.
func (b Binding) Specific() (*Context, bool) {
	ctx, ok := b.ref.(*Context)
	return ctx, ok
}

// Bind sets the binding of a word or array cell. The index is the slot of a
// word in the binding, it is ignored for arrays. Binding relative sets
// FlagRelative, binding specific (or unbound) clears it.
func Bind(c *Cell, b Binding, index int) {
	k := c.Kind()
	if !k.IsBindable() {
		panic(&AccessError{Want: "bindable", Got: k})
	}
	AssertWritable(c)
	c.binding = b
	if wr, ok := c.payload.(WordRef); ok {
		wr.Index = index
		c.payload = wr
	}
	if _, ok := b.Relative(); ok {
		c.Set(FlagRelative)
	} else {
		c.Clear(FlagRelative)
	}
}

// IsRelative returns true if the cell is relative to an action.
func IsRelative(c *Cell) bool { return c.Has(FlagRelative) }

// Derelativize copies v into out. A relative v is made specific to
// specifier, which must be a frame of the action v is relative to; a
// *SpecifierError is returned otherwise, and ErrUnspecified if specifier is
// nil. Specific and unbound values are copied unchanged and the specifier is
// ignored. On error out is left untouched.
func Derelativize(out, v *Cell, specifier *Context) error {
	if !v.Has(FlagRelative) {
		Move(out, v)
		return nil
	}

	act, _ := v.binding.Relative()
	if specifier == nil {
		return ErrUnspecified
	}
	if specifier.Action() != act {
		return &SpecifierError{Action: act, Specifier: specifier}
	}
	if out == v {
		panic(&ContractError{Op: "Derelativize", Msg: "source and destination alias"})
	}

	AssertWritable(out)
	out.header = out.header&persistMask | v.header&^persistMask
	out.payload = v.payload
	out.Clear(FlagRelative)
	out.binding = Binding{ref: specifier}
	promote(out)
	return nil
}

// DeriveSpecifier returns the specifier to use for the elements of the
// array value v found in an array resolved with parent. A relative v must be
// relative to parent's action and yields parent, a specific v yields its own
// context (nil if unbound).
func DeriveSpecifier(parent *Context, v *Cell) (*Context, error) {
	if act, ok := v.binding.Relative(); ok {
		if parent == nil {
			return nil, ErrUnspecified
		}
		if parent.Action() != act {
			return nil, &SpecifierError{Action: act, Specifier: parent}
		}
		return parent, nil
	}
	ctx, _ := v.binding.Specific()
	return ctx, nil
}

// promote manages a stack context reached through the binding of c when c
// itself is not on the stack, as it may outlive the frame.
func promote(c *Cell) {
	if c.header&nodeStack != 0 {
		return
	}
	if ctx, ok := c.binding.Specific(); ok && ctx.Stack() && !ctx.Managed() {
		ctx.Manage()
	}
}
