package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mna/rencore/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanAll returns the tokens of src formatted as "token:raw" (and ":=string"
// when the decoded string is set), up to but excluding EOF, and the
// errors.
func scanAll(src string) ([]string, []string) {
	var (
		s      Scanner
		tokVal token.Value
		errs   []string
		toks   []string
	)
	s.Init("", []byte(src), func(pos token.Position, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	})
	for {
		tok := s.Scan(&tokVal)
		if tok == token.EOF {
			break
		}
		str := tok.String() + ":" + tokVal.Raw
		if tokVal.String != "" {
			str += ":=" + tokVal.String
		}
		toks = append(toks, str)
	}
	return toks, errs
}

func TestScanTokens(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  \n\t ", ""},
		{"a", "word:a:=a"},
		{"abc-def? x! +", "word:abc-def?:=abc-def? word:x!:=x! word:+:=+"},
		{"a: :a 'a", "set-word:a::=a get-word::a:=a lit-word:'a:=a"},
		{"/a / //", "refinement:/a:=a word:/:=/ word://:=//"},
		{"#a #1", "issue:#a:=a issue:#1:=1"},
		{"< <= > >= <>", "word:<:=< word:<=:=<= word:>:=> word:>=:=>= word:<>:=<>"},
		{"<b> </b> <a href=x>", "tag:<b>:=b tag:</b>:=/b tag:<a href=x>:=a href=x"},
		{"1 -2 +3 .5 -.5", "integer:1 integer:-2 integer:+3 decimal:.5 decimal:-.5"},
		{"1.5 1,5 1e5 1.5e-3", "decimal:1.5 decimal:1,5 decimal:1e5 decimal:1.5e-3"},
		{"5% 1.5%", "percent:5% percent:1.5%"},
		{"$1 -$1.50", "money:$1 money:-$1.50"},
		{"10:30 -1:30 1:02:03.5", "time:10:30 time:-1:30 time:1:02:03.5"},
		{"1-Jan-2000 2000-01-01 1/2/2003 1-Jan-2000/10:00+1:00", "date:1-Jan-2000 date:2000-01-01 date:1/2/2003 date:1-Jan-2000/10:00+1:00"},
		{"10x20 1.5x-2", "pair:10x20 pair:1.5x-2"},
		{"1.2.3 255.255.255.0", "tuple:1.2.3 tuple:255.255.255.0"},
		{"1@example.com a@b.c", "email:1@example.com email:a@b.c"},
		{"a%40b@c j%6Fe@x.com", "email:a%40b@c email:j%6Fe@x.com"},
		{"http://a.b/c mailto:x", "url:http://a.b/c url:mailto:x"},
		{`%a/b.txt %"a b"`, `file:%a/b.txt file:%"a b"`},
		{`#"a" #"^/"`, `char:#"a":=a char:#"^/":=` + "\n"},
		{"#{0A0B} 2#{00000001}", "binary:#{0A0B} binary:2#{00000001}"},
		{`"a^"b" "^(41)^(tab)^-"`, `text:"a^"b":=a"b text:"^(41)^(tab)^-":=A` + "\t\t"},
		{"{a {b} ^} c}", "text:{a {b} ^} c}:=a {b} } c"},
		{`"^q^@x"`, "text:\"^q^@x\":=\x11\x00x"},
		{"{a\r\nb}", "text:{a\r\nb}:=a\nb"},
		{"[a (b)] #[true]", "[:[ word:a:=a (:( word:b:=b ):) ]:] #[:#[ word:true:=true ]:]"},
		{"a ; comment\nb", "word:a:=a comment:; comment:= comment word:b:=b"},
		{"a/b/1", "word:a:=a /:/ word:b:=b /:/ integer:1"},
		{":a/b 'a/b a/b:", "get-word::a:=a /:/ word:b:=b lit-word:'a:=a /:/ word:b:=b word:a:=a /:/ set-word:b::=b"},
		{"a/(b)/c", "word:a:=a /:/ (:( word:b:=b ):) /:/ word:c:=c"},
		{`a/"b"/<c>`, `word:a:=a /:/ text:"b":=b /:/ tag:<c>:=c`},
		{"1/2/2003 a/1/2", "date:1/2/2003 word:a:=a /:/ integer:1 /:/ integer:2"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			toks, errs := scanAll(c.in)
			require.Empty(t, errs)
			assert.Equal(t, c.want, strings.Join(toks, " "))
		})
	}
}

func TestScanErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"abc`, "1:1: text not terminated"},
		{"\"abc\ndef\"", "1:1: text not terminated"},
		{"{abc", "1:1: text not terminated"},
		{`"^1"`, "1:2: unknown escape sequence ^1"},
		{`"^(zz)"`, "1:2: invalid escape sequence ^(zz)"},
		{`"^(D800)"`, "1:2: escape sequence is invalid Unicode code point"},
		{`"^(41"`, "1:2: escape sequence not terminated"},
		{`#"ab"`, "1:1: invalid char literal"},
		{"#{00", "1:1: binary not terminated"},
		{"<a", "1:1: tag not terminated"},
		{"a/ b", "1:2: missing path element after '/'"},
		{"a//b", "1:2: missing path element after '/'"},
		{"a#b", "1:1: invalid word a#b"},
		{"a%40b", "1:1: invalid word a%40b"},
		{": x", "1:1: invalid get-word"},
		{"\x01", "1:1: illegal character U+0001"},
		{"a \xff", "1:3: illegal UTF-8 encoding"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			_, errs := scanAll(c.in)
			require.NotEmpty(t, errs)
			assert.Equal(t, c.want, errs[0])
		})
	}
}

func TestScanLineAndPos(t *testing.T) {
	var (
		s      Scanner
		tokVal token.Value
	)
	s.Init("f", []byte("\xEF\xBB\xBFa\n  b c\n"), func(pos token.Position, msg string) {
		t.Errorf("%s: %s", pos, msg)
	})

	want := []struct {
		tok  token.Token
		line bool
		l, c int
	}{
		{token.WORD, false, 1, 1},
		{token.WORD, true, 2, 3},
		{token.WORD, false, 2, 5},
		{token.EOF, true, 3, 0},
	}
	for _, w := range want {
		tok := s.Scan(&tokVal)
		l, c := tokVal.Pos.LineCol()
		assert.Equal(t, w.tok, tok)
		assert.Equal(t, w.line, tokVal.Line, tokVal.Raw)
		assert.Equal(t, w.l, l)
		assert.Equal(t, w.c, c)
	}
}

func TestScanHashBang(t *testing.T) {
	toks, errs := scanAll("#!/usr/bin/env rencore\na")
	require.Empty(t, errs)
	assert.Equal(t, []string{"word:a:=a"}, toks)
}
