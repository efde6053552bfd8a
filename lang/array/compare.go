package array

import (
	"github.com/mna/rencore/lang/value"
)

// compare orders two arrays of the same kind element by element from their
// index. When all elements compare equal the shorter array is less.
func compare(a, b *value.Cell, cased bool, depth int) (int, error) {
	sa, sb := a.SeriesAt(), b.SeriesAt()
	if sa.Series == sb.Series && sa.Index == sb.Index {
		return 0, nil
	}

	x, y := a.Array(), b.Array()
	i, j := sa.Clamped(), sb.Clamped()
	for ; i < x.Len() && j < y.Len(); i, j = i+1, j+1 {
		c, err := value.CmpDepth(x.At(i), y.At(j), cased, depth-1)
		if err != nil || c != 0 {
			return c, err
		}
	}

	switch ra, rb := x.Len()-i, y.Len()-j; {
	case ra < rb:
		return -1, nil
	case ra > rb:
		return 1, nil
	}
	return 0, nil
}
