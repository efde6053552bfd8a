package value

// Prepare formats c as a writable trash cell, discarding anything it held
// including its persistent bits. If stack is true, the slot is marked as
// living on a stack frame.
func Prepare(c *Cell, stack bool) *Cell {
	*c = Cell{}
	if stack {
		c.header = nodeStack
	}
	return c
}

// Move copies the specific value v into out. The persistent bits of out are
// kept, everything else comes from v. If v is bound to an unmanaged stack
// context and out is not a stack slot, the context is promoted to managed.
//
// It panics if out and v are the same cell, if v is trash or if v is
// relative (use Derelativize).
func Move(out, v *Cell) *Cell {
	if out == v {
		panic(&ContractError{Op: "Move", Msg: "source and destination alias"})
	}
	k := v.Kind()
	if k.IsBindable() && v.header&FlagRelative.bits() != 0 {
		panic(&ContractError{Op: "Move", Msg: "source is relative"})
	}
	AssertWritable(out)

	out.header = out.header&persistMask | v.header&^persistMask
	out.binding = v.binding
	out.payload = v.payload
	if k.IsBindable() {
		promote(out)
	}
	return out
}

// Blit is a raw copy of v into out, without any binding policy. Both cells
// must live in the same storage class, which is checked by requiring the
// same persistent bits. It is meant for reordering cells within one array.
func Blit(out, v *Cell) *Cell {
	if out == v {
		panic(&ContractError{Op: "Blit", Msg: "source and destination alias"})
	}
	if out.header&persistMask != v.header&persistMask {
		panic(&ContractError{Op: "Blit", Msg: "cells have different persistent bits"})
	}
	*out = *v
	return out
}

// Trash marks c as unreadable, keeping its persistent bits.
func Trash(c *Cell) *Cell {
	AssertWritable(c)
	c.header &= persistMask
	c.binding = Binding{}
	c.payload = nil
	return c
}

// Protect marks the slot as protected, all subsequent writes panic until
// Unprotect is called.
func Protect(c *Cell) { c.header |= nodeProtected }

// Unprotect removes the protection of the slot.
func Unprotect(c *Cell) { c.header &^= nodeProtected }

// IsProtected returns true if the slot is protected.
func IsProtected(c *Cell) bool { return c.header&nodeProtected != 0 }

// IsStack returns true if the slot was prepared as a stack slot.
func IsStack(c *Cell) bool { return c.header&nodeStack != 0 }

// AssertWritable panics if the slot is protected.
func AssertWritable(c *Cell) {
	if c.header&nodeProtected != 0 {
		panic(&ContractError{Op: "write", Msg: "cell is protected"})
	}
}

// Nullize returns nil if c holds null, c otherwise. It is used at API
// boundaries where null means "no value".
func Nullize(c *Cell) *Cell {
	if c == nil || c.header.Kind() == KindNull {
		return nil
	}
	return c
}

// copyCell copies v into a storage slot, including a relative binding. It
// is used by series storage which owns its cells.
func copyCell(out, v *Cell) {
	out.header = out.header&persistMask | v.header&^persistMask
	out.binding = v.binding
	out.payload = v.payload
}
