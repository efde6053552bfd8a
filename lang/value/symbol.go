package value

import (
	"sync"

	"github.com/dolthub/swiss"
	"golang.org/x/text/cases"
)

// A Symbol is an interned spelling. There is a single Symbol per distinct
// spelling, so symbols compare by pointer. Each symbol links to its canon,
// the symbol of its case-folded spelling, so that case-insensitive
// comparison of words is also a pointer comparison.
type Symbol struct {
	spelling string
	canon    *Symbol
}

var symbols = struct {
	sync.Mutex
	m *swiss.Map[string, *Symbol]
}{m: swiss.NewMap[string, *Symbol](256)}

// Intern returns the symbol of spelling.
func Intern(spelling string) *Symbol {
	symbols.Lock()
	defer symbols.Unlock()
	return intern(spelling)
}

func intern(spelling string) *Symbol {
	if sym, ok := symbols.m.Get(spelling); ok {
		return sym
	}
	sym := &Symbol{spelling: spelling}
	if folded := Fold(spelling); folded == spelling {
		sym.canon = sym
	} else {
		sym.canon = intern(folded)
	}
	symbols.m.Put(spelling, sym)
	return sym
}

// Fold returns the case-folded form of s, used for case-insensitive
// comparisons of words and strings.
func Fold(s string) string {
	// a Caser is stateful, it cannot be shared.
	return cases.Fold().String(s)
}

func (s *Symbol) String() string { return s.spelling }

// Canon returns the case-insensitive representative of s.
func (s *Symbol) Canon() *Symbol { return s.canon }

// SameCanon returns true if s and o are the same spelling when case is
// ignored.
func (s *Symbol) SameCanon(o *Symbol) bool { return s.canon == o.canon }
