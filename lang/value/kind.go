package value

import (
	"fmt"
	"strings"
)

// A Kind identifies which variant of value a cell holds. There are fewer than
// 64 kinds so that a TypeSet fits in a single uint64.
type Kind uint8

//nolint:revive
const (
	// KindTrash is the reserved kind of a prepared but unreadable cell. It is
	// the kind of the zero Cell.
	KindTrash Kind = iota

	// Bindable kinds, all lower than the unbindable ones.
	KindAction

	KindWord
	KindSetWord
	KindGetWord
	KindLitWord
	KindRefinement
	KindIssue

	KindPath
	KindSetPath
	KindGetPath
	KindLitPath
	KindGroup
	KindBlock

	KindObject
	KindFrame
	KindModule
	KindError

	// Unbindable kinds.
	KindBinary
	KindText
	KindFile
	KindEmail
	KindURL
	KindTag

	KindInteger
	KindDecimal
	KindPercent
	KindMoney
	KindChar
	KindPair
	KindTuple
	KindTime
	KindDate

	KindDatatype
	KindTypeset
	KindMap
	KindVector
	KindHandle

	KindLogic
	KindBlank
	KindVoid

	// KindMax is one past the last real kind.
	KindMax

	// KindNull is the out-of-range kind of a nulled cell. Nulls are not values
	// and cannot be stored in arrays.
	KindNull = KindMax

	bindableStart, bindableEnd = KindAction, KindError
	wordStart, wordEnd         = KindWord, KindIssue
	arrayStart, arrayEnd       = KindPath, KindBlock
	pathStart, pathEnd         = KindPath, KindLitPath
	contextStart, contextEnd   = KindObject, KindError
	stringStart, stringEnd     = KindText, KindTag
	bytesStart, bytesEnd       = KindBinary, KindTag
	scalarStart, scalarEnd     = KindInteger, KindDate
)

var kindNames = [...]string{
	KindTrash:      "trash",
	KindAction:     "action",
	KindWord:       "word",
	KindSetWord:    "set-word",
	KindGetWord:    "get-word",
	KindLitWord:    "lit-word",
	KindRefinement: "refinement",
	KindIssue:      "issue",
	KindPath:       "path",
	KindSetPath:    "set-path",
	KindGetPath:    "get-path",
	KindLitPath:    "lit-path",
	KindGroup:      "group",
	KindBlock:      "block",
	KindObject:     "object",
	KindFrame:      "frame",
	KindModule:     "module",
	KindError:      "error",
	KindBinary:     "binary",
	KindText:       "text",
	KindFile:       "file",
	KindEmail:      "email",
	KindURL:        "url",
	KindTag:        "tag",
	KindInteger:    "integer",
	KindDecimal:    "decimal",
	KindPercent:    "percent",
	KindMoney:      "money",
	KindChar:       "char",
	KindPair:       "pair",
	KindTuple:      "tuple",
	KindTime:       "time",
	KindDate:       "date",
	KindDatatype:   "datatype",
	KindTypeset:    "typeset",
	KindMap:        "map",
	KindVector:     "vector",
	KindHandle:     "handle",
	KindLogic:      "logic",
	KindBlank:      "blank",
	KindVoid:       "void",
	KindNull:       "null",
}

// String returns the name of the kind without the datatype "!" suffix.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("<invalid Kind %d>", k)
}

// TypeName returns the datatype name of the kind, e.g. "integer!".
func (k Kind) TypeName() string { return k.String() + "!" }

// LookupKind returns the kind corresponding to a datatype name, with or
// without its "!" suffix. The trash and null kinds are never returned.
func LookupKind(name string) (Kind, bool) {
	name = strings.TrimSuffix(name, "!")
	for k := KindAction; k < KindMax; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindTrash, false
}

func (k Kind) IsBindable() bool { return k >= bindableStart && k <= bindableEnd }
func (k Kind) IsWord() bool     { return k >= wordStart && k <= wordEnd }
func (k Kind) IsArray() bool    { return k >= arrayStart && k <= arrayEnd }
func (k Kind) IsPath() bool     { return k >= pathStart && k <= pathEnd }
func (k Kind) IsContext() bool  { return k >= contextStart && k <= contextEnd }
func (k Kind) IsString() bool   { return k >= stringStart && k <= stringEnd }
func (k Kind) IsScalar() bool   { return k >= scalarStart && k <= scalarEnd }

// IsSeries returns true for kinds whose payload is a series handle.
func (k Kind) IsSeries() bool { return k.IsArray() || k >= bytesStart && k <= bytesEnd }

// IsNumber returns true for integer, decimal and percent.
func (k Kind) IsNumber() bool { return k == KindInteger || k == KindDecimal || k == KindPercent }

// A TypeSet is a bitmask with one bit per Kind.
type TypeSet uint64

// TypesOf returns the TypeSet containing the provided kinds.
func TypesOf(kinds ...Kind) TypeSet {
	var ts TypeSet
	for _, k := range kinds {
		ts |= 1 << k
	}
	return ts
}

func typeRange(start, end Kind) TypeSet {
	var ts TypeSet
	for k := start; k <= end; k++ {
		ts |= 1 << k
	}
	return ts
}

var (
	// AnyValue contains every real kind.
	AnyValue = typeRange(KindAction, KindMax-1)
	// AnyWord contains the word family.
	AnyWord = typeRange(wordStart, wordEnd)
	// AnyArray contains the array family.
	AnyArray = typeRange(arrayStart, arrayEnd)
	// AnyPath contains the path kinds.
	AnyPath = typeRange(pathStart, pathEnd)
	// AnyContext contains the context family.
	AnyContext = typeRange(contextStart, contextEnd)
	// AnyString contains the text-like kinds.
	AnyString = typeRange(stringStart, stringEnd)
	// AnySeries contains every kind with a series handle payload.
	AnySeries = AnyArray | typeRange(bytesStart, bytesEnd)
)

// Has returns true if k is in the set.
func (ts TypeSet) Has(k Kind) bool { return k < 64 && ts&(1<<k) != 0 }

// Kinds returns the kinds in the set, in order.
func (ts TypeSet) Kinds() []Kind {
	var ks []Kind
	for k := KindAction; k < KindMax; k++ {
		if ts.Has(k) {
			ks = append(ks, k)
		}
	}
	return ks
}
