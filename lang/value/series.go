package value

import "fmt"

// A Node is storage that the collector tracks: series, contexts and actions.
// Nodes start unmanaged and become managed once, never going back.
type Node interface {
	Managed() bool
	Manage()
}

type node struct {
	managed bool
}

func (n *node) Managed() bool { return n.managed }
func (n *node) Manage()       { n.managed = true }

// A Series is the storage referenced by a SeriesAt handle. The set of series
// types is closed: *Array, *Text, *Binary and *Vector.
type Series interface {
	Node

	// Len returns the current number of elements.
	Len() int

	// CheckWritable returns ErrReadOnly if the series is protected or frozen.
	CheckWritable() error

	// Protect sets or removes the protection of the series.
	Protect(on bool)

	// Freeze makes the series permanently read-only.
	Freeze()

	series() *seriesNode
}

type seriesNode struct {
	node
	protected bool
	frozen    bool
}

func (s *seriesNode) series() *seriesNode { return s }
func (s *seriesNode) Protect(on bool)     { s.protected = on }
func (s *seriesNode) Freeze()             { s.frozen = true }

func (s *seriesNode) CheckWritable() error {
	if s.protected || s.frozen {
		return ErrReadOnly
	}
	return nil
}

// IsFrozen returns true if the series was frozen.
func IsFrozen(s Series) bool { return s.series().frozen }

// LenAt returns the number of elements from the index to the tail, 0 if the
// index is past the tail.
func (sa SeriesAt) LenAt() int {
	n := sa.Series.Len() - sa.Index
	if n < 0 {
		return 0
	}
	return n
}

// Clamped returns the index bounded by the current length of the series.
func (sa SeriesAt) Clamped() int {
	if n := sa.Series.Len(); sa.Index > n {
		return n
	}
	if sa.Index < 0 {
		return 0
	}
	return sa.Index
}

// An Array is the storage of the array kinds, a length-tracked sequence of
// cells. The end of the array is its length, there is no end marker.
type Array struct {
	seriesNode
	cells []Cell
}

var (
	_ Series = (*Array)(nil)
	_ Series = (*Text)(nil)
	_ Series = (*Binary)(nil)
	_ Series = (*Vector)(nil)
)

// NewArray returns an empty array with room for capacity cells.
func NewArray(capacity int) *Array {
	return &Array{cells: make([]Cell, 0, capacity)}
}

// ArrayOf returns a new array holding copies of vs.
func ArrayOf(vs ...*Cell) *Array {
	a := NewArray(len(vs))
	for _, v := range vs {
		if err := a.Append(v); err != nil {
			panic(err)
		}
	}
	return a
}

func (a *Array) Len() int { return len(a.cells) }

// At returns the cell at index i, which must be in range.
func (a *Array) At(i int) *Cell { return &a.cells[i] }

// AtEnd returns true if i is at or past the tail.
func (a *Array) AtEnd(i int) bool { return i >= len(a.cells) }

// Cells returns the cells of the array. The slice is not valid anymore after
// a mutation of the array's length.
func (a *Array) Cells() []Cell { return a.cells }

// SetLen truncates the array to n cells, or extends it with trash cells.
func (a *Array) SetLen(n int) error {
	if err := a.CheckWritable(); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("array length %d: %w", n, ErrOutOfRange)
	}
	if n <= len(a.cells) {
		clear(a.cells[n:])
		a.cells = a.cells[:n]
		return nil
	}
	a.cells = append(a.cells, make([]Cell, n-len(a.cells))...)
	return nil
}

// Append adds a copy of each value at the tail of the array.
func (a *Array) Append(vs ...*Cell) error {
	return a.Insert(len(a.cells), vs...)
}

// Insert adds a copy of each value before index at, which must be in the
// range [0, Len()].
func (a *Array) Insert(at int, vs ...*Cell) error {
	if err := a.CheckWritable(); err != nil {
		return err
	}
	if at < 0 || at > len(a.cells) {
		return fmt.Errorf("insert at %d: %w", at, ErrOutOfRange)
	}
	for _, v := range vs {
		if v.Kind() == KindNull {
			return ErrNullInArray
		}
	}

	a.cells = append(a.cells, make([]Cell, len(vs))...)
	copy(a.cells[at+len(vs):], a.cells[at:])
	for i, v := range vs {
		dst := &a.cells[at+i]
		*dst = Cell{}
		copyCell(dst, v)
		if v.Kind().IsBindable() {
			promote(dst)
		}
	}
	return nil
}

// Remove deletes n cells starting at index at. The range is clamped to the
// tail.
func (a *Array) Remove(at, n int) error {
	if err := a.CheckWritable(); err != nil {
		return err
	}
	if at < 0 || at > len(a.cells) {
		return fmt.Errorf("remove at %d: %w", at, ErrOutOfRange)
	}
	if at+n > len(a.cells) {
		n = len(a.cells) - at
	}
	if n <= 0 {
		return nil
	}
	copy(a.cells[at:], a.cells[at+n:])
	clear(a.cells[len(a.cells)-n:])
	a.cells = a.cells[:len(a.cells)-n]
	return nil
}

// Set overwrites the cell at index i with a copy of v.
func (a *Array) Set(i int, v *Cell) error {
	if err := a.CheckWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(a.cells) {
		return fmt.Errorf("set at %d: %w", i, ErrOutOfRange)
	}
	if v.Kind() == KindNull {
		return ErrNullInArray
	}
	copyCell(&a.cells[i], v)
	return nil
}

// Copy returns a new array with the cells from start to end. If deep is
// true, nested arrays are copied as well. Relative cells stay relative.
func (a *Array) Copy(start, end int, deep bool) *Array {
	if end > len(a.cells) {
		end = len(a.cells)
	}
	if start > end {
		start = end
	}
	cp := NewArray(end - start)
	cp.cells = cp.cells[:end-start]
	for i := start; i < end; i++ {
		src := &a.cells[i]
		dst := &cp.cells[i-start]
		copyCell(dst, src)
		if deep && src.Kind().IsArray() {
			sa := src.payload.(SeriesAt)
			inner := sa.Series.(*Array)
			dst.payload = SeriesAt{Series: inner.Copy(0, inner.Len(), true), Index: sa.Index}
		}
	}
	return cp
}

// A Text is the storage of the string kinds, as a sequence of code points.
type Text struct {
	seriesNode
	runes []rune
}

// NewText returns a text holding s.
func NewText(s string) *Text {
	return &Text{runes: []rune(s)}
}

func (t *Text) Len() int        { return len(t.runes) }
func (t *Text) String() string  { return string(t.runes) }
func (t *Text) Runes() []rune   { return t.runes }
func (t *Text) At(i int) rune   { return t.runes[i] }
func (t *Text) From(i int) string {
	if i >= len(t.runes) {
		return ""
	}
	return string(t.runes[i:])
}

// Append adds s at the tail of the text.
func (t *Text) Append(s string) error {
	if err := t.CheckWritable(); err != nil {
		return err
	}
	t.runes = append(t.runes, []rune(s)...)
	return nil
}

// A Binary is the storage of binary cells.
type Binary struct {
	seriesNode
	bytes []byte
}

// NewBinary returns a binary holding a copy of b.
func NewBinary(b []byte) *Binary {
	return &Binary{bytes: append([]byte(nil), b...)}
}

func (b *Binary) Len() int      { return len(b.bytes) }
func (b *Binary) Bytes() []byte { return b.bytes }

// Append adds p at the tail of the binary.
func (b *Binary) Append(p []byte) error {
	if err := b.CheckWritable(); err != nil {
		return err
	}
	b.bytes = append(b.bytes, p...)
	return nil
}

// A Vector is the storage of vector cells, a sequence of numbers that are
// all integers or all decimals.
type Vector struct {
	seriesNode
	float bool
	elems []float64
}

// NewVector returns a vector of n zero elements.
func NewVector(float bool, n int) *Vector {
	return &Vector{float: float, elems: make([]float64, n)}
}

func (v *Vector) Len() int        { return len(v.elems) }
func (v *Vector) IsFloat() bool   { return v.float }
func (v *Vector) At(i int) float64 { return v.elems[i] }

// Set stores f at index i, truncated to an integer for integer vectors.
func (v *Vector) Set(i int, f float64) error {
	if err := v.CheckWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(v.elems) {
		return fmt.Errorf("vector index %d: %w", i, ErrOutOfRange)
	}
	if !v.float {
		f = float64(int64(f))
	}
	v.elems[i] = f
	return nil
}

// Elem initializes out with the element at index i.
func (v *Vector) Elem(out *Cell, i int) *Cell {
	if v.float {
		return InitDecimal(out, v.elems[i])
	}
	return InitInteger(out, int64(v.elems[i]))
}
