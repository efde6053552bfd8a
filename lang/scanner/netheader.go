package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/mna/rencore/lang/value"
)

// NetHeader parses the lines of an internet-style header (name: value) into
// an array of set-word and text pairs. A line that starts with a space or a
// tab continues the value of the previous line. A repeated name collects its
// values in a block. Parsing stops at the first line that is not a header,
// e.g. the blank line that ends the header section.
func NetHeader(src []byte) (*value.Array, error) {
	if !utf8.Valid(src) {
		return nil, ErrInvalidUTF8
	}

	arr := value.NewArray(8)
	i := 0
	for i < len(src) && isSpace(src[i]) {
		i++
	}

	for i < len(src) && isASCIILetter(src[i]) {
		start := i
		for i < len(src) && (isAlnum(src[i]) || src[i] == '-' || src[i] == '_' || src[i] == '.') {
			i++
		}
		if i >= len(src) || src[i] != ':' {
			break
		}
		name := value.Intern(string(src[start:i]))
		i++

		var sb strings.Builder
		i = headerLine(src, i, &sb)
		for i < len(src) {
			if src[i] == '\r' {
				i++
			}
			if i < len(src) && src[i] == '\n' {
				i++
			}
			if i >= len(src) || src[i] != ' ' && src[i] != '\t' {
				break
			}
			i = headerLine(src, i, &sb)
		}

		var text value.Cell
		value.InitText(&text, sb.String())
		if err := addHeader(arr, name, &text); err != nil {
			return arr, err
		}
	}
	return arr, nil
}

// headerLine writes the content of the line starting at src[i] to sb,
// without its leading spaces and line ending, and returns the index of the
// line ending.
func headerLine(src []byte, i int, sb *strings.Builder) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	start := i
	for i < len(src) && src[i] != '\r' && src[i] != '\n' {
		i++
	}
	sb.Write(src[start:i])
	return i
}

func addHeader(arr *value.Array, name *value.Symbol, text *value.Cell) error {
	for j := 0; j < arr.Len(); j += 2 {
		if arr.At(j).Symbol() != name {
			continue
		}
		prev := arr.At(j + 1)
		if prev.Kind() == value.KindBlock {
			return prev.Array().Append(text)
		}
		var blk value.Cell
		value.InitBlock(&blk, value.ArrayOf(prev, text))
		return arr.Set(j+1, &blk)
	}

	var key value.Cell
	value.InitWord(&key, value.KindSetWord, name)
	return arr.Append(&key, text)
}
