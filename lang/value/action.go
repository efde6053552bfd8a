package value

// A Param is a parameter of an action.
type Param struct {
	Symbol     *Symbol
	Types      TypeSet
	Refinement bool
}

// An Action is a function value: a name, a parameter list and a body. The
// words of the body that name a parameter are relative to the action, as are
// the nested arrays of the body; they are resolved with the frame of a
// particular invocation. Natives have no body.
type Action struct {
	node
	name   *Symbol
	params []Param
	body   *Array
}

// NewAction returns a managed action. The body, if non-nil, is relativized
// in place and becomes owned by the action.
func NewAction(name string, params []Param, body *Array) *Action {
	act := &Action{name: Intern(name), params: params, body: body}
	act.Manage()
	if body != nil {
		act.relativize(body)
		body.Manage()
	}
	return act
}

func (a *Action) relativize(arr *Array) {
	for i := range arr.cells {
		cell := &arr.cells[i]
		switch k := cell.Kind(); {
		case k.IsWord():
			if slot, ok := a.ParamIndex(cell.Symbol()); ok {
				Bind(cell, BindRelative(a), slot)
			}
		case k.IsArray():
			Bind(cell, BindRelative(a), 0)
			a.relativize(cell.Array())
		}
	}
}

func (a *Action) Name() *Symbol    { return a.name }
func (a *Action) Params() []Param  { return a.params }
func (a *Action) Body() *Array     { return a.body }
func (a *Action) IsNative() bool   { return a.body == nil }

// ParamIndex returns the index of the parameter with the same canon as sym.
func (a *Action) ParamIndex(sym *Symbol) (int, bool) {
	for i, p := range a.params {
		if p.Symbol.SameCanon(sym) {
			return i, true
		}
	}
	return -1, false
}
