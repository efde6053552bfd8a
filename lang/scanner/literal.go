package scanner

import (
	"bytes"
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/mna/rencore/lang/value"
)

// Binary scans src as a binary of the form [radix]#{...}. The radix is 16
// by default and may be 2, 16 or 64.
func Binary(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	base := 16
	var i int
	if len(src) > 0 && src[0] != '#' {
		n, w := grabInt(src)
		if w == 0 || w >= len(src) || src[w] != '#' || !isDigit(src[0]) {
			return 0, ErrNoMatch
		}
		base, i = n, w
	}
	i++ // '#'
	if i >= len(src) || src[i] != '{' {
		return 0, ErrNoMatch
	}
	i++
	end := bytes.IndexByte(src[i:], '}')
	if end < 0 {
		return 0, ErrNoMatch
	}
	b, err := decodeBinary(src[i:i+end], base)
	if err != nil {
		return 0, err
	}
	value.InitSeries(out, value.KindBinary, value.NewBinary(b), 0)
	return i + end + 1, nil
}

func decodeBinary(src []byte, base int) ([]byte, error) {
	digits := bytes.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, src)

	switch base {
	case 16:
		if len(digits)%2 != 0 {
			return nil, ErrNoMatch
		}
		res := make([]byte, 0, len(digits)/2)
		for i := 0; i < len(digits); i += 2 {
			b, ok := Hex2(digits[i:])
			if !ok {
				return nil, ErrNoMatch
			}
			res = append(res, b)
		}
		return res, nil

	case 2:
		if len(digits)%8 != 0 {
			return nil, ErrNoMatch
		}
		res := make([]byte, 0, len(digits)/8)
		for i := 0; i < len(digits); i += 8 {
			var b byte
			for _, c := range digits[i : i+8] {
				if c != '0' && c != '1' {
					return nil, ErrNoMatch
				}
				b = b<<1 | (c - '0')
			}
			res = append(res, b)
		}
		return res, nil

	case 64:
		res, err := base64.StdEncoding.DecodeString(string(digits))
		if err != nil {
			return nil, ErrNoMatch
		}
		return res, nil
	}
	return nil, ErrNoMatch
}

// Email scans src as an email, decoding %XX escapes. There must be exactly
// one '@'.
func Email(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	var sb strings.Builder
	var at bool
	for i := 0; i < len(src); {
		c := src[i]
		switch c {
		case '@':
			if at {
				return 0, ErrNoMatch
			}
			at = true
		case '%':
			b, ok := Hex2(src[i+1:])
			if !ok {
				return 0, ErrNoMatch
			}
			sb.WriteByte(b)
			i += 3
			continue
		}
		sb.WriteByte(c)
		i++
	}
	if !at {
		return 0, ErrNoMatch
	}
	s := sb.String()
	if !utf8.ValidString(s) {
		return 0, ErrInvalidUTF8
	}
	value.InitSeries(out, value.KindEmail, value.NewText(s), 0)
	return len(src), nil
}

// File scans src as a file, %path or %"path", decoding %XX escapes.
func File(out *value.Cell, src []byte) (int, error) {
	value.Trash(out)

	var i int
	if i < len(src) && src[i] == '%' {
		i++
	}
	var term byte
	invalid := `:;()[]"`
	if i < len(src) && src[i] == '"' {
		i++
		term = '"'
		invalid = `:;"`
	}

	s, n, err := scanItem(src[i:], term, invalid)
	if err != nil {
		return 0, err
	}
	value.InitSeries(out, value.KindFile, value.NewText(s), 0)
	return i + n, nil
}

// scanItem reads the item at the start of src up to the term byte (which
// must be present and is consumed) or, if term is 0, up to a whitespace or
// the end of src. It decodes %XX escapes and turns backslashes into
// slashes, and fails if it encounters a byte of invalid.
func scanItem(src []byte, term byte, invalid string) (string, int, error) {
	var sb strings.Builder
	var i int
	for ; i < len(src); i++ {
		c := src[i]
		if term != 0 && c == term {
			s := sb.String()
			if !utf8.ValidString(s) {
				return "", 0, ErrInvalidUTF8
			}
			return s, i + 1, nil
		}
		if term == 0 && isSpace(c) || c == '\n' {
			break
		}
		switch {
		case strings.IndexByte(invalid, c) >= 0:
			return "", 0, ErrNoMatch
		case c == '%':
			b, ok := Hex2(src[i+1:])
			if !ok {
				return "", 0, ErrNoMatch
			}
			sb.WriteByte(b)
			i += 2
		case c == '\\':
			sb.WriteByte('/')
		default:
			sb.WriteByte(c)
		}
	}
	if term != 0 {
		// not terminated
		return "", 0, ErrNoMatch
	}
	s := sb.String()
	if !utf8.ValidString(s) {
		return "", 0, ErrInvalidUTF8
	}
	return s, i, nil
}

// URL scans src as a url. Urls are kept as-is, with no decoding.
func URL(out *value.Cell, src []byte) (int, error) {
	return Any(out, src, value.KindURL)
}

// Any scans the whole of src as a string of kind k, which must be one of
// the string kinds. CR LF sequences are converted to LF.
func Any(out *value.Cell, src []byte, k value.Kind) (int, error) {
	value.Trash(out)

	if !utf8.Valid(src) {
		return 0, ErrInvalidUTF8
	}
	s := strings.ReplaceAll(string(src), "\r\n", "\n")
	value.InitSeries(out, k, value.NewText(s), 0)
	return len(src), nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
