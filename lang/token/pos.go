package token

import "fmt"

const (
	lineBits = 18
	colBits  = 32 - lineBits

	// MaxLines is the maximum 1-based line number value that can be encoded in
	// Pos.
	MaxLines = (1 << lineBits) - 1
	// MaxCols is the maximum 1-based column number value that can be encoded in
	// Pos.
	MaxCols = (1 << colBits) - 1

	lineMask = MaxLines
	colMask  = MaxCols
)

// Pos is an efficient encoding of a 1-based line and column position in a
// 32-bit unsigned integer. A value of 0 for either line or column should be
// interpreted as "unknown".
type Pos uint32

// MakePos creates a Pos value encoding the provided line and col. It is the
// caller's responsibility to ensure the values are > 0 and <= the maximum
// allowed.
func MakePos(line, col int) Pos {
	return Pos(col<<lineBits | line)
}

// LineCol returns the line and column values encoded in Pos.
func (p Pos) LineCol() (int, int) {
	l := p & lineMask
	c := (p >> lineBits) & colMask
	return int(l), int(c)
}

// Unknown returns true if either line or column value is unknown.
func (p Pos) Unknown() bool {
	l, c := p.LineCol()
	return l == 0 || c == 0
}

// Position is the fully resolved location of a token or error, with the
// byte offset in the source. Line and Col are 1-based, 0 means unknown.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Col      int
}

// MakePosition returns the Position for the filename, offset, line and
// column.
func MakePosition(filename string, off, line, col int) Position {
	return Position{Filename: filename, Offset: off, Line: line, Col: col}
}

// Position returns the Position of p in filename. The offset is unknown.
func (p Pos) Position(filename string) Position {
	l, c := p.LineCol()
	return Position{Filename: filename, Line: l, Col: c}
}

// IsValid returns true if the line is known.
func (p Position) IsValid() bool { return p.Line > 0 }

// String returns the position in one of these forms:
//
//	file:line:col    valid position with file name
//	file:line        valid position with file name and unknown column
//	line:col         valid position without file name
//	file             invalid position with file name
//	-                invalid position without file name
func (p Position) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d", p.Line)
		if p.Col != 0 {
			s += fmt.Sprintf(":%d", p.Col)
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}
