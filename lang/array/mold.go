package array

import (
	"github.com/mna/rencore/lang/value"
)

// delims are the opening and closing delimiters of a kind, and whether the
// elements are separated by slashes.
type delims struct {
	open, close byte
	path        bool
}

var kindDelims = map[value.Kind]delims{
	value.KindBlock:   {open: '[', close: ']'},
	value.KindGroup:   {open: '(', close: ')'},
	value.KindPath:    {path: true},
	value.KindSetPath: {path: true},
	value.KindGetPath: {path: true},
	value.KindLitPath: {path: true},
}

func mold(m *value.Molder, v *value.Cell) {
	k := v.Kind()
	arr := v.Array()
	index := v.SeriesAt().Clamped()

	if m.IsForm() && (k == value.KindBlock || k == value.KindGroup) {
		formCells(m, arr, index)
		return
	}

	if index > 0 && m.All() {
		m.Printf("#[%s [", k.TypeName())
		moldCells(m, v, arr, 0, kindDelims[value.KindBlock])
		m.Printf(" %d]]", index+1)
		return
	}

	switch k {
	case value.KindGetPath:
		m.WriteByte(':')
	case value.KindLitPath:
		m.WriteByte('\'')
	}
	moldCells(m, v, arr, index, kindDelims[k])
	if k == value.KindSetPath {
		m.WriteByte(':')
	}
}

// moldCells writes the elements of arr from index with the delimiters d. An
// element with FlagLine starts on a new line, and the closing delimiter does
// if v has FlagArrayTailNewline.
func moldCells(m *value.Molder, v *value.Cell, arr *value.Array, index int, d delims) {
	if d.open != 0 {
		m.WriteByte(d.open)
	}
	if !m.Push(arr) {
		m.WriteString("...")
		if d.close != 0 {
			m.WriteByte(d.close)
		}
		return
	}
	defer m.Pop()

	m.Indent(1)
	for i := index; i < arr.Len(); i++ {
		item := arr.At(i)
		switch {
		case !d.path && item.Has(value.FlagLine):
			m.Newline()
		case i > index && d.path:
			m.WriteByte('/')
		case i > index:
			m.WriteByte(' ')
		}
		m.Value(item)
	}
	m.Indent(-1)

	if d.close != 0 {
		if v.Kind() == value.KindBlock || v.Kind() == value.KindGroup {
			if v.Has(value.FlagArrayTailNewline) {
				m.Newline()
			}
		}
		m.WriteByte(d.close)
	}
}

// formCells writes the display form of the elements of arr from index,
// separated by spaces, nested blocks and groups without their delimiters.
func formCells(m *value.Molder, arr *value.Array, index int) {
	if !m.Push(arr) {
		m.WriteString("...")
		return
	}
	defer m.Pop()

	for i := index; i < arr.Len(); i++ {
		item := arr.At(i)
		switch {
		case item.Has(value.FlagLine) && i > index:
			m.Newline()
		case i > index:
			m.WriteByte(' ')
		}
		m.Value(item)
	}
}
