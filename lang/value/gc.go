package value

// Walk calls fn with every node referenced by c: its binding, and the
// series, context, action or map of its payload. It does not descend into
// the nodes.
func (c *Cell) Walk(fn func(Node)) {
	if c.IsTrash() {
		return
	}
	if c.binding.ref != nil {
		fn(c.binding.ref)
	}
	switch p := c.payload.(type) {
	case SeriesAt:
		fn(p.Series)
	case ContextRef:
		fn(p.Context)
	case ActionRef:
		fn(p.Action)
	case MapRef:
		fn(p.Map)
	}
}

// HoldsCells returns true if the kind of c references storage made of cells,
// which the collector must traverse.
func (c *Cell) HoldsCells() bool {
	k := c.Kind()
	return k.IsArray() || k.IsContext() || k == KindMap || k == KindAction
}

// HoldsSeries returns true if the payload of c is a series handle.
func (c *Cell) HoldsSeries() bool {
	k := c.Kind()
	return k.IsSeries() || k == KindVector
}

// ReachableNodes returns the nodes referenced by c and, transitively, by the
// cells of arrays, contexts and maps it references. Each node appears once.
func ReachableNodes(c *Cell) []Node {
	seen := make(map[Node]bool)
	var nodes []Node
	var visit func(*Cell)
	visit = func(c *Cell) {
		c.Walk(func(n Node) {
			if seen[n] {
				return
			}
			seen[n] = true
			nodes = append(nodes, n)
			switch n := n.(type) {
			case *Array:
				for i := range n.cells {
					visit(&n.cells[i])
				}
			case *Context:
				for i := range n.vars {
					visit(&n.vars[i])
				}
			case *Map:
				visit(&Cell{header: Header(KindBlock), payload: SeriesAt{Series: n.pairs}})
			case *Action:
				if n.body != nil {
					visit(&Cell{header: Header(KindBlock), payload: SeriesAt{Series: n.body}})
				}
			}
		})
	}
	visit(c)
	return nodes
}
