// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mna/rencore/lang/token"
)

// TokenAndValue combines the token type with the token value type in the same
// struct.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanFiles is a helper function that tokenizes the source files and returns
// the list of tokens, grouped by the file at the same index, and produces any
// error encountered. The error, if non-nil, is guaranteed to implement
// Unwrap() []error.
func ScanFiles(ctx context.Context, files ...string) ([][]TokenAndValue, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var (
		s      Scanner
		tokVal token.Value
		errs   []error
	)

	tokensByFile := make([][]TokenAndValue, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		b, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", token.MakePosition(file, 0, 0, 0), err))
			continue
		}

		s.Init(file, b, func(pos token.Position, msg string) {
			errs = append(errs, fmt.Errorf("%s: %s", pos, msg))
		})
		for {
			tok := s.Scan(&tokVal)
			tokensByFile[i] = append(tokensByFile[i], TokenAndValue{
				Token: tok,
				Value: tokVal,
			})
			if tok == token.EOF {
				break
			}
		}
	}
	return tokensByFile, errors.Join(errs...)
}

// Scanner tokenizes source text for the loader to consume.
type Scanner struct {
	// immutable state after Init
	filename string
	src      []byte
	err      func(pos token.Position, msg string) // error handler for scanning errors

	// mutable scanning state
	sb          strings.Builder // writes to Builder never fail, so errors are ignored
	invalidByte byte            // when cur==RuneError due to failed utf8 decode, this is the invalid byte
	cur         rune            // current character
	line, col   int             // line/col position of cur
	off         int             // character offset in bytes of cur
	roff        int             // reading offset in bytes (position after current character)

	// path state
	pathNext   bool  // the last token is followed by a path separator
	inPath     bool  // the next token is a path element
	parens     int   // depth of open parens
	pathParens []int // paren depths of the groups opened as path elements
}

var (
	// byte order mark, only permitted as very first characters
	bom = [3]byte{0xEF, 0xBB, 0xBF}
	// hashbang line, only permitted as very first line (or immediately after
	// bom)
	hashBang = [2]byte{'#', '!'}
)

// Init initializes the scanner to tokenize a new file.
func (s *Scanner) Init(filename string, src []byte, errHandler func(token.Position, string)) {
	s.filename = filename
	s.src = src
	s.err = errHandler

	s.sb.Reset()
	s.invalidByte = 0
	s.cur = ' '
	s.line, s.col = 1, 0
	s.off = 0
	s.roff = 0
	s.pathNext, s.inPath = false, false
	s.parens = 0
	s.pathParens = s.pathParens[:0]

	// skip initial BOM if present
	if len(src) >= len(bom) && bytes.Equal(src[:len(bom)], bom[:]) {
		s.off += len(bom)
		s.roff += len(bom)
	}
	// skip initial hashbang line if present
	if len(src)-s.roff >= len(hashBang) && bytes.Equal(src[s.roff:s.roff+len(hashBang)], hashBang[:]) {
		for s.cur != '\n' && s.cur != -1 {
			s.advance()
		}
	}
	s.advance()
}

// peek returns the byte following the most recently read character without
// advancing the scanner. If the scanner is at EOF, peek returns 0.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// peek2 is like peek but returns the byte after the one returned by peek.
func (s *Scanner) peek2() byte {
	if s.roff+1 < len(s.src) {
		return s.src[s.roff+1]
	}
	return 0
}

// read the next Unicode char into s.cur; s.cur < 0 means end-of-file.
func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.line++
			s.col = 0
		}
		s.cur = -1
		return
	}

	s.off = s.roff
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}

	// fast path if the rune is an ASCII char, no decoding necessary
	s.invalidByte = 0
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		// not ASCII
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.roff, s.line, s.col+1, "illegal UTF-8 encoding")
			// store the actual invalid byte
			s.invalidByte = s.src[s.roff]
		}
	}
	s.roff += w
	s.cur = r
	s.col++
}

func (s *Scanner) error(off, line, col int, msg string) {
	checkSafePos(line, col)
	s.err(token.MakePosition(s.filename, off, line, col), msg)
}

func (s *Scanner) errorf(off, line, col int, msg string, args ...any) {
	s.error(off, line, col, fmt.Sprintf(msg, args...))
}

func checkSafePos(line, col int) {
	if line > token.MaxLines || col > token.MaxCols {
		if line > token.MaxLines {
			panic(fmt.Sprintf("number of lines exceeded: %d", line))
		}
		panic(fmt.Sprintf("number of columns exceeded at line %d: %d", line, col))
	}
}

func makeSafePos(line, col int) token.Pos {
	checkSafePos(line, col)
	return token.MakePos(line, col)
}

// advance only if the current char matches any of the specified ones.
func (s *Scanner) advanceIf(matches ...byte) bool {
	if bytes.ContainsRune(matches, s.cur) {
		s.advance()
		return true
	}
	return false
}

// Scan returns the next token in the source file.
func (s *Scanner) Scan(tokVal *token.Value) (tok token.Token) {
	if s.pathNext {
		return s.pathSlash(tokVal)
	}

	inPath := s.inPath
	s.inPath = false
	var line bool
	if !inPath {
		line = s.skipWhitespace()
	}

	// current token start
	startOff, startLine, startCol := s.off, s.line, s.col
	var val string

	switch cur := s.cur; {
	case cur == -1:
		tok = token.EOF

	case s.isNumberStart():
		tok = s.number(inPath)

	case isWordStart(cur):
		tok, val = s.word()

	default:
		s.advance() // always make progress
		switch cur {
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '(':
			tok = token.LPAREN
			s.parens++
			if inPath {
				s.pathParens = append(s.pathParens, s.parens)
			}
		case ')':
			tok = token.RPAREN
			s.parens--
		case '"':
			tok = token.TEXT
			val = s.quotedText()
		case '{':
			tok = token.TEXT
			val = s.bracedText()
		case ';':
			tok = token.COMMENT
			val = s.comment()
		case '#':
			tok, val = s.pound()
		case '%':
			tok = s.file()
		case '<':
			tok, val = s.tagOrWord()
		case '>':
			tok, val = s.operator(startOff)
		case ':':
			tok, val = s.sigilWord(token.GETWORD, "get-word")
		case '\'':
			tok, val = s.sigilWord(token.LITWORD, "lit-word")
		case '/':
			tok, val = s.slashWord()

		default:
			if cur == utf8.RuneError && s.invalidByte > 0 {
				cur = rune(s.invalidByte)
				s.invalidByte = 0
			}
			s.errorf(startOff, startLine, startCol, "illegal character %#U", cur)
			tok = token.ILLEGAL
		}
	}

	*tokVal = token.Value{
		Raw:    string(s.src[startOff:s.off]),
		String: val,
		Pos:    makeSafePos(startLine, startCol),
		Line:   line,
	}
	if s.cur == '/' && s.continuesPath(tok) {
		s.pathNext = true
	}
	return tok
}

// continuesPath returns true if tok, immediately followed by a slash, is
// an element of a path.
func (s *Scanner) continuesPath(tok token.Token) bool {
	switch tok {
	case token.WORD, token.GETWORD, token.LITWORD, token.INTEGER, token.DECIMAL,
		token.TUPLE, token.TEXT, token.ISSUE, token.TAG, token.CHAR:
		return true
	case token.RPAREN:
		// s.parens is already decremented
		if n := len(s.pathParens); n > 0 && s.pathParens[n-1] == s.parens+1 {
			s.pathParens = s.pathParens[:n-1]
			return true
		}
	}
	return false
}

func (s *Scanner) pathSlash(tokVal *token.Value) token.Token {
	s.pathNext = false
	startOff, startLine, startCol := s.off, s.line, s.col
	s.advance()
	*tokVal = token.Value{Raw: "/", Pos: makeSafePos(startLine, startCol)}

	if s.cur == '(' || s.cur == '"' || !isDelim(s.cur) && s.cur != '/' {
		s.inPath = true
		return token.SLASH
	}
	s.error(startOff, startLine, startCol, "missing path element after '/'")
	return token.ILLEGAL
}

func (s *Scanner) isNumberStart() bool {
	switch cur := s.cur; {
	case isDecimal(cur) || cur == '$':
		return true
	case cur == '+' || cur == '-':
		next := s.peek()
		return isDecimal(rune(next)) || next == '$' || next == '.' && isDecimal(rune(s.peek2()))
	case cur == '.':
		return isDecimal(rune(s.peek()))
	}
	return false
}

func (s *Scanner) word() (token.Token, string) {
	startOff, startLine, startCol := s.off, s.line, s.col
	for isWordChar(s.cur) {
		s.advance()
	}
	name := string(s.src[startOff:s.off])

	switch s.cur {
	case '@':
		s.rest()
		return token.EMAIL, ""
	case '%':
		// %XX escapes are valid in the local part of an email
		if s.itemHasAt() {
			s.rest()
			return token.EMAIL, ""
		}
	case ':':
		if isDelimByte(s.peek()) {
			s.advance()
			return token.SETWORD, name
		}
		s.rest()
		return token.URL, ""
	}
	if !s.isItemEnd() {
		s.rest()
		s.errorf(startOff, startLine, startCol, "invalid word %s", s.src[startOff:s.off])
		return token.ILLEGAL, ""
	}
	return token.WORD, name
}

// itemHasAt returns true if the rest of the current item contains an '@'.
func (s *Scanner) itemHasAt() bool {
	for i := s.off; i < len(s.src) && !isDelimByte(s.src[i]); i++ {
		if s.src[i] == '@' {
			return true
		}
	}
	return false
}

// sigilWord scans the word following a get-word or lit-word sigil.
func (s *Scanner) sigilWord(tok token.Token, what string) (token.Token, string) {
	startOff, startLine, startCol := s.off-1, s.line, s.col-1
	if !isWordStart(s.cur) {
		s.rest()
		s.errorf(startOff, startLine, startCol, "invalid %s", what)
		return token.ILLEGAL, ""
	}
	t, name := s.word()
	if t != token.WORD {
		if t != token.ILLEGAL {
			s.errorf(startOff, startLine, startCol, "invalid %s", what)
		}
		return token.ILLEGAL, ""
	}
	return tok, name
}

func (s *Scanner) slashWord() (token.Token, string) {
	// '/' already consumed, hence the -1
	startOff, startLine, startCol := s.off-1, s.line, s.col-1
	if !isWordChar(s.cur) {
		// the slash words: / and //
		s.advanceIf('/')
		return token.WORD, string(s.src[startOff:s.off])
	}
	start := s.off
	for isWordChar(s.cur) {
		s.advance()
	}
	name := string(s.src[start:s.off])
	if !s.isItemEnd() {
		s.rest()
		s.error(startOff, startLine, startCol, "invalid refinement")
		return token.ILLEGAL, ""
	}
	return token.REFINEMENT, name
}

func (s *Scanner) operator(startOff int) (token.Token, string) {
	for s.cur == '<' || s.cur == '>' || s.cur == '=' {
		s.advance()
	}
	return token.WORD, string(s.src[startOff:s.off])
}

func (s *Scanner) tagOrWord() (token.Token, string) {
	// '<' already consumed, hence the -1
	startOff, startLine, startCol := s.off-1, s.line, s.col-1
	if isDelim(s.cur) || s.cur == '<' || s.cur == '>' || s.cur == '=' || s.cur == '-' {
		return s.operator(startOff)
	}

	start := s.off
	for s.cur != '>' {
		if s.cur < 0 {
			s.error(startOff, startLine, startCol, "tag not terminated")
			return token.TAG, string(s.src[start:s.off])
		}
		s.advance()
	}
	val := string(s.src[start:s.off])
	s.advance()
	return token.TAG, val
}

func (s *Scanner) pound() (token.Token, string) {
	// '#' already consumed, hence the -1
	startOff, startLine, startCol := s.off-1, s.line, s.col-1
	switch {
	case s.advanceIf('"'):
		val := s.quotedText()
		if utf8.RuneCountInString(val) != 1 {
			s.error(startOff, startLine, startCol, "invalid char literal")
		}
		return token.CHAR, val

	case s.cur == '{':
		s.binary(startOff, startLine, startCol)
		return token.BINARY, ""

	case s.advanceIf('['):
		return token.CONSTRUCT, ""

	case isWordChar(s.cur):
		start := s.off
		for isWordChar(s.cur) {
			s.advance()
		}
		name := string(s.src[start:s.off])
		if !s.isItemEnd() {
			s.rest()
			s.error(startOff, startLine, startCol, "invalid issue")
			return token.ILLEGAL, ""
		}
		return token.ISSUE, name
	}
	s.error(startOff, startLine, startCol, "invalid issue")
	return token.ILLEGAL, ""
}

// binary consumes the braces of a binary literal, the current char is the
// opening brace.
func (s *Scanner) binary(startOff, startLine, startCol int) {
	for s.cur != '}' {
		if s.cur < 0 {
			s.error(startOff, startLine, startCol, "binary not terminated")
			return
		}
		s.advance()
	}
	s.advance()
}

func (s *Scanner) file() token.Token {
	// '%' already consumed, hence the -1
	startOff, startLine, startCol := s.off-1, s.line, s.col-1
	if s.advanceIf('"') {
		for s.cur != '"' {
			if s.cur < 0 || s.cur == '\n' {
				s.error(startOff, startLine, startCol, "file not terminated")
				return token.FILE
			}
			s.advance()
		}
		s.advance()
		return token.FILE
	}
	s.rest()
	return token.FILE
}

// number scans a numeric item and classifies it by the characters it
// contains. Binaries with a radix prefix are also scanned here.
func (s *Scanner) number(inPath bool) token.Token {
	startOff, startLine, startCol := s.off, s.line, s.col
	for !isDelim(s.cur) && !(inPath && s.cur == '/') {
		if s.cur == '#' && s.peek() == '{' {
			s.advance()
			s.binary(startOff, startLine, startCol)
			return token.BINARY
		}
		s.advance()
	}
	return classifyNumber(s.src[startOff:s.off])
}

func classifyNumber(lit []byte) token.Token {
	var colon, dash, slash, letter, x, pct bool
	var dots int
	for i, c := range lit {
		switch {
		case c == '@':
			return token.EMAIL
		case c == '$':
			return token.MONEY
		case c == ':':
			colon = true
		case c == '/':
			slash = true
		case c == '.':
			dots++
		case c == '%':
			pct = i == len(lit)-1
		case c == 'x' || c == 'X':
			x = true
		case c == '-' && i > 0:
			if p := lit[i-1]; p != 'e' && p != 'E' && p != 'x' && p != 'X' {
				dash = true
			}
		case c == 'e' || c == 'E':
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
			letter = true
		}
	}

	switch {
	case pct:
		return token.PERCENT
	case colon:
		if dash || slash || letter {
			return token.DATE
		}
		return token.TIME
	case x:
		return token.PAIR
	case dash || slash || letter:
		return token.DATE
	case dots >= 2:
		return token.TUPLE
	case dots == 1 || bytes.ContainsAny(lit, ",eE"):
		return token.DECIMAL
	}
	return token.INTEGER
}

// rest consumes the remaining characters of the current item.
func (s *Scanner) rest() {
	for !isDelim(s.cur) {
		s.advance()
	}
}

func (s *Scanner) isItemEnd() bool {
	return isDelim(s.cur) || s.cur == '/'
}

// skipWhitespace skips whitespace and returns true if it contains a line
// break.
func (s *Scanner) skipWhitespace() bool {
	var line bool
	for isWhitespace(s.cur) {
		if s.cur == '\n' {
			line = true
		}
		s.advance()
	}
	return line
}

func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r'
}

// isDelim returns true if rn ends an item. End of file is a delimiter.
func isDelim(rn rune) bool {
	return rn < 0 || isWhitespace(rn) || strings.ContainsRune(`[](){}";`, rn)
}

func isDelimByte(b byte) bool {
	return b == 0 || isDelim(rune(b))
}

const wordPunct = "!&*+-.=?_|~`"

func isWordStart(rn rune) bool {
	return isLetter(rn) || rn >= 0 && rn < utf8.RuneSelf && strings.ContainsRune(wordPunct, rn)
}

func isWordChar(rn rune) bool {
	return isWordStart(rn) || isDigitRune(rn)
}

func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_' ||
		rn >= utf8.RuneSelf && unicode.IsLetter(rn)
}

func isDigitRune(rn rune) bool {
	return '0' <= rn && rn <= '9' ||
		rn >= utf8.RuneSelf && unicode.IsDigit(rn)
}

func isDecimal(rn rune) bool { return '0' <= rn && rn <= '9' }
