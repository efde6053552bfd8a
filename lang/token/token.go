package token

import "strconv"

// A Token represents a lexical token.
type Token int8

//nolint:revive
const (
	ILLEGAL Token = iota
	EOF
	COMMENT // ; comment

	// Tokens with values
	WORD       // a
	SETWORD    // a:
	GETWORD    // :a
	LITWORD    // 'a
	REFINEMENT // /a
	ISSUE      // #a
	INTEGER    // 123
	DECIMAL    // 1.5
	PERCENT    // 50%
	MONEY      // $1.50
	TIME       // 10:30
	DATE       // 1-Jan-2000
	PAIR       // 10x20
	TUPLE      // 1.2.3
	CHAR       // #"a"
	TEXT       // "a" or {a}
	BINARY     // #{0AFF}
	FILE       // %a.txt
	EMAIL      // a@b.c
	URL        // http://a.b
	TAG        // <a>

	// Punctuation
	LBRACK    // [
	RBRACK    // ]
	LPAREN    // (
	RPAREN    // )
	SLASH     // / between path elements
	CONSTRUCT // #[

	maxToken             = CONSTRUCT
	litStart, litEnd     = WORD, TAG
	wordStart, wordEnd   = WORD, ISSUE
	punctStart, punctEnd = LBRACK, CONSTRUCT
)

func (tok Token) String() string { return tokenNames[tok] }

// GoString is like String but quotes punctuation tokens. Use Sprintf("%#v",
// tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok >= punctStart && tok <= punctEnd {
		return "'" + tokenNames[tok] + "'"
	}
	return tokenNames[tok]
}

// IsLiteral returns true if the token carries a value.
func (tok Token) IsLiteral() bool { return tok >= litStart && tok <= litEnd }

// IsWord returns true if the token is one of the word tokens.
func (tok Token) IsWord() bool { return tok >= wordStart && tok <= wordEnd }

var tokenNames = [...]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",
	COMMENT: "comment",

	WORD:       "word",
	SETWORD:    "set-word",
	GETWORD:    "get-word",
	LITWORD:    "lit-word",
	REFINEMENT: "refinement",
	ISSUE:      "issue",
	INTEGER:    "integer",
	DECIMAL:    "decimal",
	PERCENT:    "percent",
	MONEY:      "money",
	TIME:       "time",
	DATE:       "date",
	PAIR:       "pair",
	TUPLE:      "tuple",
	CHAR:       "char",
	TEXT:       "text",
	BINARY:     "binary",
	FILE:       "file",
	EMAIL:      "email",
	URL:        "url",
	TAG:        "tag",

	LBRACK:    "[",
	RBRACK:    "]",
	LPAREN:    "(",
	RPAREN:    ")",
	SLASH:     "/",
	CONSTRUCT: "#[",
}

// Value records the raw text, position and decoded value associated with
// each token.
type Value struct {
	Raw    string // raw text of token
	String string // decoded text, char, tag, comment or word spelling
	Pos    Pos    // start position of token
	Line   bool   // a line break precedes the token
}

// Literal returns the string representation of the literal value of the token
// from its associated Value struct. If t is not a literal, it returns an empty
// string.
func (tok Token) Literal(v Value) string {
	switch tok {
	case TEXT, TAG, CHAR:
		return strconv.Quote(v.String)
	case COMMENT:
		return v.String
	default:
		if tok.IsLiteral() {
			return v.Raw
		}
		return ""
	}
}
