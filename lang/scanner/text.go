package scanner

import (
	"strings"
	"unicode"
)

// namedEscapes are the ^(name) escapes, matched case-insensitively.
var namedEscapes = map[string]rune{
	"null": 0,
	"line": '\n',
	"tab":  '\t',
	"page": '\f',
	"esc":  0x1B,
	"back": '\b',
	"del":  0x7F,
}

// quotedText scans a double-quoted text, the opening quote is already
// consumed. It returns the decoded text.
func (s *Scanner) quotedText() string {
	startOff, startLine, startCol := s.off-1, s.line, s.col-1

	s.sb.Reset()
	for {
		cur := s.cur
		if cur == '\n' || cur < 0 {
			s.error(startOff, startLine, startCol, "text not terminated")
			break
		}
		s.advance()
		if cur == '"' {
			break
		}
		if cur == '^' {
			s.escape()
			continue
		}
		s.sb.WriteRune(cur)
	}
	return s.sb.String()
}

// bracedText scans a text in braces, the opening brace is already consumed.
// Unescaped braces nest and the text may span multiple lines.
func (s *Scanner) bracedText() string {
	startOff, startLine, startCol := s.off-1, s.line, s.col-1

	s.sb.Reset()
	depth := 1
	for {
		cur := s.cur
		if cur < 0 {
			s.error(startOff, startLine, startCol, "text not terminated")
			break
		}
		s.advance()

		switch cur {
		case '{':
			depth++
		case '}':
			if depth--; depth == 0 {
				return s.sb.String()
			}
		case '^':
			s.escape()
			continue
		case '\r':
			if s.cur == '\n' {
				continue
			}
		}
		s.sb.WriteRune(cur)
	}
	return s.sb.String()
}

// escape decodes the escape sequence following a caret, the caret is already
// consumed.
func (s *Scanner) escape() {
	startOff, startLine, startCol := s.off-1, s.line, s.col-1

	cur := s.cur
	if cur < 0 || cur == '\n' {
		s.error(startOff, startLine, startCol, "escape sequence not terminated")
		return
	}
	s.advance()

	if cur != '(' {
		rn, ok := caretEscape(cur)
		if !ok {
			s.errorf(startOff, startLine, startCol, "unknown escape sequence ^%c", cur)
			return
		}
		s.sb.WriteRune(rn)
		return
	}

	start := s.off
	for s.cur >= 0 && s.cur != ')' && s.cur != '\n' {
		s.advance()
	}
	name := string(s.src[start:s.off])
	if !s.advanceIf(')') {
		s.error(startOff, startLine, startCol, "escape sequence not terminated")
		return
	}

	if rn, ok := namedEscapes[strings.ToLower(name)]; ok {
		s.sb.WriteRune(rn)
		return
	}
	if len(name) == 0 || len(name) > 6 {
		s.errorf(startOff, startLine, startCol, "invalid escape sequence ^(%s)", name)
		return
	}
	var rn rune
	for _, c := range []byte(name) {
		d := digitVal(rune(c))
		if d > 15 {
			s.errorf(startOff, startLine, startCol, "invalid escape sequence ^(%s)", name)
			return
		}
		rn = rn<<4 | rune(d)
	}
	if rn > unicode.MaxRune || 0xD800 <= rn && rn < 0xE000 {
		s.error(startOff, startLine, startCol, "escape sequence is invalid Unicode code point")
		return
	}
	s.sb.WriteRune(rn)
}

func caretEscape(rn rune) (rune, bool) {
	switch rn {
	case '/':
		return '\n', true
	case '-':
		return '\t', true
	case '^', '"', '{', '}':
		return rn, true
	case '@':
		return 0, true
	case '[':
		return 0x1B, true
	case '\\':
		return 0x1C, true
	case ']':
		return 0x1D, true
	case '_':
		return 0x1F, true
	case '~':
		return 0x7F, true
	}
	switch {
	case 'A' <= rn && rn <= 'Z':
		return rn - 'A' + 1, true
	case 'a' <= rn && rn <= 'z':
		return rn - 'a' + 1, true
	}
	return 0, false
}

// comment scans a comment up to the end of the line, the semicolon is
// already consumed. It returns the text of the comment.
func (s *Scanner) comment() string {
	start := s.off
	for s.cur != '\n' && s.cur >= 0 {
		s.advance()
	}
	return strings.TrimSuffix(string(s.src[start:s.off]), "\r")
}
