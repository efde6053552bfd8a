package scanner

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mna/rencore/lang/token"
	"github.com/mna/rencore/lang/value"
)

// Load scans src and returns the array of values it contains, using the
// default limits.
func Load(filename string, src []byte) (*value.Array, error) {
	return DefaultLimits.Load(filename, src)
}

// Load scans src and returns the array of values it contains. The returned
// array is never nil: on error it holds the values loaded successfully. The
// error, if non-nil, is guaranteed to implement Unwrap() []error and each
// error it wraps is prefixed with its position.
func (l *Limits) Load(filename string, src []byte) (*value.Array, error) {
	ld := loader{lim: l, filename: filename}
	ld.s.Init(filename, src, func(pos token.Position, msg string) {
		ld.errs = append(ld.errs, fmt.Errorf("%s: %s", pos, msg))
	})
	ld.next()

	arr := value.NewArray(8)
	ld.items(arr, token.EOF)
	return arr, errors.Join(ld.errs...)
}

type loader struct {
	lim      *Limits
	filename string
	s        Scanner
	errs     []error

	// current token
	tok token.Token
	val token.Value
}

func (ld *loader) next() {
	for {
		ld.tok = ld.s.Scan(&ld.val)
		// illegal tokens are reported by the scanner
		if ld.tok != token.COMMENT && ld.tok != token.ILLEGAL {
			return
		}
	}
}

func (ld *loader) errorf(pos token.Pos, format string, args ...any) {
	ld.errs = append(ld.errs, fmt.Errorf("%s: %s", pos.Position(ld.filename), fmt.Sprintf(format, args...)))
}

func (ld *loader) errorw(pos token.Pos, err error, format string, args ...any) {
	ld.errs = append(ld.errs, fmt.Errorf("%s: %s: %w", pos.Position(ld.filename), fmt.Sprintf(format, args...), err))
}

// items loads values into arr until the end token, which is consumed. It
// returns true if the end token is on a new line.
func (ld *loader) items(arr *value.Array, end token.Token) bool {
	for {
		switch ld.tok {
		case end:
			tail := ld.val.Line
			if end != token.EOF {
				ld.next()
			}
			return tail
		case token.EOF:
			ld.errorf(ld.val.Pos, "missing %#v", end)
			return false
		case token.RBRACK, token.RPAREN:
			ld.errorf(ld.val.Pos, "unexpected %#v", ld.tok)
			ld.next()
			continue
		}

		line := ld.val.Line
		var c value.Cell
		if !ld.item(&c) {
			continue
		}
		if line {
			c.Set(value.FlagLine)
		}
		if err := arr.Append(&c); err != nil {
			ld.errs = append(ld.errs, err)
		}
	}
}

// item loads the value at the current token, including the path it starts
// if any.
func (ld *loader) item(out *value.Cell) bool {
	pos := ld.val.Pos
	ok := ld.element(out)
	if ld.tok != token.SLASH {
		return ok
	}

	elems := make([]value.Cell, 0, 4)
	if ok {
		elems = append(elems, *out)
	}
	for ld.tok == token.SLASH {
		ld.next()
		var c value.Cell
		if ld.element(&c) {
			elems = append(elems, c)
		}
	}
	if !ok || len(elems) < 2 {
		value.Trash(out)
		return false
	}
	return ld.path(out, pos, elems)
}

func (ld *loader) path(out *value.Cell, pos token.Pos, elems []value.Cell) bool {
	k := value.KindPath
	switch first := &elems[0]; first.Kind() {
	case value.KindGetWord:
		k = value.KindGetPath
		value.InitWord(first, value.KindWord, first.Symbol())
	case value.KindLitWord:
		k = value.KindLitPath
		value.InitWord(first, value.KindWord, first.Symbol())
	}

	for i := 1; i < len(elems); i++ {
		e := &elems[i]
		switch e.Kind() {
		case value.KindSetWord:
			if i != len(elems)-1 || k != value.KindPath {
				ld.errorf(pos, "invalid path")
				value.Trash(out)
				return false
			}
			k = value.KindSetPath
			value.InitWord(e, value.KindWord, e.Symbol())
		case value.KindLitWord:
			ld.errorf(pos, "invalid path")
			value.Trash(out)
			return false
		}
	}

	arr := value.NewArray(len(elems))
	for i := range elems {
		if err := arr.Append(&elems[i]); err != nil {
			ld.errs = append(ld.errs, err)
		}
	}
	value.InitSeries(out, k, arr, 0)
	return true
}

// element loads the single value at the current token.
func (ld *loader) element(out *value.Cell) bool {
	tok, val := ld.tok, ld.val
	switch tok {
	case token.LBRACK, token.LPAREN:
		k, end := value.KindBlock, token.RBRACK
		if tok == token.LPAREN {
			k, end = value.KindGroup, token.RPAREN
		}
		arr := value.NewArray(4)
		ld.next()
		tail := ld.items(arr, end)
		value.InitSeries(out, k, arr, 0)
		if tail {
			out.Set(value.FlagArrayTailNewline)
		}
		return true

	case token.CONSTRUCT:
		arr := value.NewArray(2)
		ld.next()
		ld.items(arr, token.RBRACK)
		if err := ld.lim.construct(out, arr); err != nil {
			ld.errorw(val.Pos, err, "invalid construction syntax")
			return false
		}
		return true

	case token.RBRACK, token.RPAREN, token.EOF:
		ld.errorf(val.Pos, "missing path element")
		return false
	}

	ld.next()
	if err := ld.lim.literal(out, tok, val); err != nil {
		ld.errorw(val.Pos, err, "invalid %s %s", tok, val.Raw)
		return false
	}
	return true
}

var wordKinds = map[token.Token]value.Kind{
	token.WORD:       value.KindWord,
	token.SETWORD:    value.KindSetWord,
	token.GETWORD:    value.KindGetWord,
	token.LITWORD:    value.KindLitWord,
	token.REFINEMENT: value.KindRefinement,
	token.ISSUE:      value.KindIssue,
}

// literal initializes out with the value of the literal token. The literal
// routine must consume the whole of the raw token.
func (l *Limits) literal(out *value.Cell, tok token.Token, val token.Value) error {
	if k, ok := wordKinds[tok]; ok {
		if tok == token.WORD && val.String == "_" {
			value.InitBlank(out)
			return nil
		}
		value.InitWord(out, k, value.Intern(val.String))
		return nil
	}

	raw := []byte(val.Raw)
	var (
		n   int
		err error
	)
	switch tok {
	case token.TEXT:
		value.InitText(out, val.String)
		return nil
	case token.TAG:
		value.InitSeries(out, value.KindTag, value.NewText(val.String), 0)
		return nil
	case token.CHAR:
		r, _ := utf8.DecodeRuneInString(val.String)
		value.InitChar(out, r)
		return nil

	case token.INTEGER:
		n, err = l.Integer(out, raw)
	case token.DECIMAL:
		n, err = l.Decimal(out, raw, false)
	case token.PERCENT:
		n, err = l.Percent(out, raw)
	case token.MONEY:
		n, err = l.Money(out, raw)
	case token.TIME:
		n, err = l.Time(out, raw)
	case token.DATE:
		n, err = l.Date(out, raw)
	case token.PAIR:
		n, err = l.Pair(out, raw)
	case token.TUPLE:
		n, err = l.Tuple(out, raw)
	case token.BINARY:
		n, err = Binary(out, raw)
	case token.FILE:
		n, err = File(out, raw)
	case token.EMAIL:
		n, err = Email(out, raw)
	case token.URL:
		n, err = URL(out, raw)
	default:
		return ErrNoMatch
	}
	if err == nil && n != len(raw) {
		value.Trash(out)
		err = ErrNoMatch
	}
	return err
}

// construct initializes out with the value described by the content of a
// construction syntax.
func (l *Limits) construct(out *value.Cell, arr *value.Array) error {
	if arr.Len() == 0 || arr.At(0).Kind() != value.KindWord {
		return ErrNoMatch
	}
	name := arr.At(0).Symbol().String()
	args := arr.Cells()[1:]

	switch strings.ToLower(name) {
	case "true", "false":
		if len(args) != 0 {
			return ErrNoMatch
		}
		value.InitLogic(out, strings.EqualFold(name, "true"))
		return nil
	case "none", "blank":
		if len(args) != 0 {
			return ErrNoMatch
		}
		value.InitBlank(out)
		return nil
	case "void":
		if len(args) != 0 {
			return ErrNoMatch
		}
		value.InitVoid(out)
		return nil
	}

	k, ok := value.LookupKind(name)
	if !ok || !strings.HasSuffix(name, "!") {
		return ErrNoMatch
	}

	switch {
	case k == value.KindDatatype:
		if len(args) != 1 || args[0].Kind() != value.KindWord {
			return ErrNoMatch
		}
		dt, ok := value.LookupKind(args[0].Symbol().String())
		if !ok {
			return ErrNoMatch
		}
		value.InitDatatype(out, dt)
		return nil

	case k == value.KindTypeset:
		if len(args) != 1 || args[0].Kind() != value.KindBlock {
			return ErrNoMatch
		}
		var kinds []value.Kind
		for _, c := range args[0].Array().Cells() {
			if c.Kind() != value.KindWord {
				return ErrNoMatch
			}
			tk, ok := value.LookupKind(c.Symbol().String())
			if !ok {
				return ErrNoMatch
			}
			kinds = append(kinds, tk)
		}
		value.InitTypeset(out, value.TypesOf(kinds...))
		return nil

	case k == value.KindVector:
		if len(args) != 1 || args[0].Kind() != value.KindBlock {
			return ErrNoMatch
		}
		return vector(out, args[0].Array())

	case k.IsSeries():
		if ok, err := series(out, k, args); ok || err != nil {
			return err
		}
	}

	if len(args) != 1 {
		return ErrNoMatch
	}
	return value.Make(out, k, &args[0])
}

// series initializes out with the series of kind k at an index. The args are
// either the series and its 1-based index or a block of both. It returns
// false if args do not have one of those forms.
func series(out *value.Cell, k value.Kind, args []value.Cell) (bool, error) {
	if len(args) == 1 && args[0].Kind() == value.KindBlock && args[0].Array().Len() == 2 {
		args = args[0].Array().Cells()
	}
	if len(args) != 2 || args[1].Kind() != value.KindInteger {
		return false, nil
	}

	v, ix := &args[0], args[1].Int64()
	var (
		s   value.Series
		n   int
		vk  = v.Kind()
		err = ErrNoMatch
	)
	switch {
	case k.IsArray() && vk.IsArray():
		s, n, err = v.Array(), v.Array().Len(), nil
	case k.IsString() && vk.IsString():
		s, n, err = v.Text(), v.Text().Len(), nil
	case k == value.KindBinary && vk == value.KindBinary:
		s, n, err = v.Binary(), v.Binary().Len(), nil
	}
	if err != nil {
		return true, err
	}
	if ix < 1 || ix > int64(n)+1 {
		return true, value.ErrOutOfRange
	}
	value.InitSeries(out, k, s, int(ix-1))
	return true, nil
}

func vector(out *value.Cell, arr *value.Array) error {
	var float bool
	for _, c := range arr.Cells() {
		switch c.Kind() {
		case value.KindDecimal:
			float = true
		case value.KindInteger:
		default:
			return ErrNoMatch
		}
	}

	vec := value.NewVector(float, arr.Len())
	for i := range arr.Cells() {
		var f float64
		if c := arr.At(i); c.Kind() == value.KindInteger {
			f = float64(c.Int64())
		} else {
			f = c.Float64()
		}
		if err := vec.Set(i, f); err != nil {
			return err
		}
	}
	value.InitSeries(out, value.KindVector, vec, 0)
	return nil
}
