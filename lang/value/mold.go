package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MoldFlags control the textual rendering of values.
type MoldFlags uint8

const (
	// MoldAll renders values that the plain syntax cannot express, such as
	// series not at their head, with the construction syntax "#[...]".
	MoldAll MoldFlags = 1 << iota
	// MoldForm renders the lossy display form: strings without delimiters,
	// arrays without their outer brackets.
	MoldForm
)

// A Molder accumulates the textual rendering of values.
type Molder struct {
	Flags MoldFlags

	sb       strings.Builder
	indent   int
	inFlight []Series
}

// Mold returns the rendering of v.
func Mold(v *Cell, flags MoldFlags) string {
	m := Molder{Flags: flags}
	m.Value(v)
	return m.String()
}

// Form returns the display form of v.
func Form(v *Cell) string { return Mold(v, MoldForm) }

// The Write methods never fail, they implement the io writer interfaces.
func (m *Molder) WriteString(s string) (int, error) { return m.sb.WriteString(s) }
func (m *Molder) WriteByte(b byte) error            { return m.sb.WriteByte(b) }
func (m *Molder) WriteRune(r rune) (int, error)     { return m.sb.WriteRune(r) }
func (m *Molder) Write(p []byte) (int, error)       { return m.sb.Write(p) }

func (m *Molder) String() string { return m.sb.String() }
func (m *Molder) Len() int       { return m.sb.Len() }
func (m *Molder) All() bool      { return m.Flags&MoldAll != 0 }
func (m *Molder) IsForm() bool   { return m.Flags&MoldForm != 0 }

// Printf writes the formatted string to the molder.
func (m *Molder) Printf(format string, args ...any) { fmt.Fprintf(&m.sb, format, args...) }

// Newline writes a line break followed by the current indentation.
func (m *Molder) Newline() {
	m.sb.WriteByte('\n')
	for i := 0; i < m.indent; i++ {
		m.sb.WriteString("    ")
	}
}

// Indent changes the indentation level by delta.
func (m *Molder) Indent(delta int) { m.indent += delta }

// Push records that s is being molded. It returns false if s is already
// being molded, in which case the caller must not descend into it and must
// not call Pop.
func (m *Molder) Push(s Series) bool {
	for _, in := range m.inFlight {
		if in == s {
			return false
		}
	}
	m.inFlight = append(m.inFlight, s)
	return true
}

// Pop ends the molding of the last pushed series.
func (m *Molder) Pop() { m.inFlight = m.inFlight[:len(m.inFlight)-1] }

// Value writes the rendering of v, using the registered Mold hook of its
// kind if any.
func (m *Molder) Value(v *Cell) {
	k := v.Kind()
	if h := hooks[k].Mold; h != nil {
		h(m, v)
		return
	}

	switch k {
	case KindNull:
		m.WriteString("null")
	case KindBlank:
		m.WriteByte('_')
	case KindVoid:
		m.WriteString("#[void]")
	case KindLogic:
		s := strconv.FormatBool(v.Logic())
		if m.All() {
			s = "#[" + s + "]"
		}
		m.WriteString(s)
	case KindInteger:
		m.WriteString(strconv.FormatInt(v.Int64(), 10))
	case KindDecimal:
		m.WriteString(FormatDecimal(v.Float64()))
	case KindPercent:
		m.WriteString(FormatPercent(v.Float64()))
	case KindMoney:
		m.WriteString(v.Money().String())
	case KindChar:
		if m.IsForm() {
			m.WriteRune(v.Char())
			return
		}
		m.WriteString(`#"`)
		m.WriteString(escapeRune(v.Char(), '"'))
		m.WriteByte('"')
	case KindPair:
		p := v.Pair()
		m.WriteString(formatPairComponent(p.X))
		m.WriteByte('x')
		m.WriteString(formatPairComponent(p.Y))
	case KindTuple:
		for i, b := range v.Tuple().Components() {
			if i > 0 {
				m.WriteByte('.')
			}
			m.WriteString(strconv.Itoa(int(b)))
		}
	case KindTime:
		m.WriteString(FormatTime(v.Duration()))
	case KindDate:
		m.WriteString(FormatDate(v.Date(), v.Has(FlagDateHasTime), v.Has(FlagDateHasZone)))
	case KindDatatype:
		if m.All() {
			m.Printf("#[datatype! %s]", v.Datatype().TypeName())
			return
		}
		m.WriteString(v.Datatype().TypeName())
	case KindTypeset:
		m.moldTypeset(v.TypeSet())
	case KindWord:
		m.WriteString(v.Symbol().String())
	case KindSetWord:
		m.WriteString(v.Symbol().String())
		m.WriteByte(':')
	case KindGetWord:
		m.WriteByte(':')
		m.WriteString(v.Symbol().String())
	case KindLitWord:
		m.WriteByte('\'')
		m.WriteString(v.Symbol().String())
	case KindRefinement:
		m.WriteByte('/')
		m.WriteString(v.Symbol().String())
	case KindIssue:
		m.WriteByte('#')
		m.WriteString(v.Symbol().String())
	case KindText, KindFile, KindEmail, KindURL, KindTag:
		m.moldString(v)
	case KindBinary:
		m.moldBinary(v)
	case KindAction:
		m.Printf("#[action! %s]", v.Action().Name())
	case KindObject, KindFrame, KindModule, KindError:
		m.moldContext(v.Context())
	case KindMap:
		m.moldMap(v.Map())
	case KindVector:
		m.moldVector(v)
	case KindHandle:
		m.WriteString("#[handle!]")
	default:
		panic(&ContractError{Op: "Mold", Msg: fmt.Sprintf("no mold hook registered for %s", k)})
	}
}

func (m *Molder) moldTypeset(ts TypeSet) {
	if m.All() {
		m.WriteString("#[typeset! [")
	} else {
		m.WriteString("make typeset! [")
	}
	for i, k := range ts.Kinds() {
		if i > 0 {
			m.WriteByte(' ')
		}
		m.WriteString(k.TypeName())
	}
	m.WriteString("]")
	if m.All() {
		m.WriteString("]")
	}
}

func (m *Molder) moldString(v *Cell) {
	sa := v.SeriesAt()
	k := v.Kind()
	idx := sa.Clamped()
	if m.All() && idx > 0 {
		m.Printf("#[%s ", k.TypeName())
		m.moldStringFrom(k, v.Text().From(0))
		m.Printf(" %d]", idx+1)
		return
	}
	m.moldStringFrom(k, v.Text().From(idx))
}

func (m *Molder) moldStringFrom(k Kind, s string) {
	if m.IsForm() && k != KindTag {
		m.WriteString(s)
		return
	}

	switch k {
	case KindText:
		m.WriteString(QuoteText(s))
	case KindFile:
		m.WriteByte('%')
		m.WriteString(EscapeFile(s))
	case KindTag:
		m.WriteByte('<')
		m.WriteString(s)
		m.WriteByte('>')
	default:
		m.WriteString(s)
	}
}

func (m *Molder) moldBinary(v *Cell) {
	sa := v.SeriesAt()
	const hex = "0123456789ABCDEF"
	m.WriteString("#{")
	for _, b := range v.Binary().Bytes()[sa.Clamped():] {
		m.WriteByte(hex[b>>4])
		m.WriteByte(hex[b&0x0F])
	}
	m.WriteByte('}')
}

func (m *Molder) moldContext(ctx *Context) {
	if ctx.Kind() == KindFrame && m.All() {
		m.Printf("#[frame! %s]", ctx.Action().Name())
		return
	}
	m.Printf("make %s [", ctx.Kind().TypeName())
	m.Indent(1)
	for i := 0; i < ctx.Len(); i++ {
		m.Newline()
		m.WriteString(ctx.Key(i).String())
		m.WriteString(": ")
		v := ctx.Var(i)
		if v.IsTrash() || v.Kind() == KindNull {
			m.WriteString("null")
			continue
		}
		m.Value(v)
	}
	m.Indent(-1)
	if ctx.Len() > 0 {
		m.Newline()
	}
	m.WriteByte(']')
}

func (m *Molder) moldMap(mp *Map) {
	m.WriteString("make map! [")
	m.Indent(1)
	pairs := mp.Pairs()
	for i := 0; i < pairs.Len(); i += 2 {
		m.Newline()
		m.Value(pairs.At(i))
		m.WriteByte(' ')
		m.Value(pairs.At(i + 1))
	}
	m.Indent(-1)
	if pairs.Len() > 0 {
		m.Newline()
	}
	m.WriteByte(']')
}

func (m *Molder) moldVector(v *Cell) {
	vec := v.Vector()
	m.WriteString("#[vector! [")
	var tmp Cell
	for i := v.SeriesAt().Clamped(); i < vec.Len(); i++ {
		if i > v.Index() {
			m.WriteByte(' ')
		}
		m.Value(vec.Elem(&tmp, i))
	}
	m.WriteString("]]")
}

// FormatDecimal returns the shortest representation of f that scans back
// to f, always with a fractional part or an exponent, e.g. 1.0 or 1e300.
func FormatDecimal(f float64) string {
	return fixExponent(strconv.FormatFloat(f, 'g', -1, 64), true)
}

// FormatPercent returns the rendering of the fraction f as a percent, e.g.
// 0.5 is "50%".
func FormatPercent(f float64) string {
	return fixExponent(strconv.FormatFloat(f*100, 'g', 15, 64), false) + "%"
}

func formatPairComponent(f float64) string {
	return fixExponent(strconv.FormatFloat(f, 'g', -1, 64), false)
}

// fixExponent rewrites the exponent of a Go float rendering without the '+'
// sign, and adds ".0" to a rendering without fraction nor exponent if dot is
// true.
func fixExponent(s string, dot bool) string {
	if strings.ContainsAny(s, "IN") {
		// Inf and NaN
		return s
	}
	mant, exp, hasExp := strings.Cut(s, "e")
	if dot && !hasExp && !strings.Contains(mant, ".") {
		mant += ".0"
	}
	if !hasExp {
		return mant
	}
	return mant + "e" + strings.TrimPrefix(exp, "+")
}

// FormatTime renders a duration as H:MM, or H:MM:SS with an optional
// fraction of seconds.
func FormatTime(d time.Duration) string {
	var sb strings.Builder
	if d < 0 {
		sb.WriteByte('-')
		d = -d
	}
	h := d / time.Hour
	d -= h * time.Hour
	mn := d / time.Minute
	d -= mn * time.Minute
	s := d / time.Second
	ns := d - s*time.Second

	fmt.Fprintf(&sb, "%d:%02d", h, mn)
	if s != 0 || ns != 0 {
		fmt.Fprintf(&sb, ":%02d", s)
		if ns != 0 {
			frac := strings.TrimRight(fmt.Sprintf("%09d", int64(ns)), "0")
			sb.WriteByte('.')
			sb.WriteString(frac)
		}
	}
	return sb.String()
}

// FormatDate renders a date as D-Mon-YYYY, followed by /TIME if hasTime and
// the zone if hasZone. The time is rendered in the date's zone.
func FormatDate(d Date, hasTime, hasZone bool) string {
	if hasTime && hasZone {
		d = d.Local()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d-%s-%d", d.Day, MonthNames[d.Month-1][:3], d.Year)
	if hasTime {
		sb.WriteByte('/')
		sb.WriteString(FormatTime(d.Nano))
	}
	if hasZone {
		z := int(d.Zone) * ZoneMins
		sign := byte('+')
		if z < 0 {
			sign = '-'
			z = -z
		}
		sb.WriteByte(sign)
		fmt.Fprintf(&sb, "%d:%02d", z/60, z%60)
	}
	return sb.String()
}

// QuoteText returns the source representation of a text: "..." on a single
// line, {...} if s has line breaks or double quotes.
func QuoteText(s string) string {
	var sb strings.Builder
	if strings.ContainsAny(s, "\n\"") {
		sb.WriteByte('{')
		for _, r := range s {
			switch r {
			case '\n', '\t':
				sb.WriteRune(r)
			case '{', '}':
				sb.WriteByte('^')
				sb.WriteRune(r)
			default:
				sb.WriteString(escapeRune(r, 0))
			}
		}
		sb.WriteByte('}')
		return sb.String()
	}

	sb.WriteByte('"')
	for _, r := range s {
		sb.WriteString(escapeRune(r, '"'))
	}
	sb.WriteByte('"')
	return sb.String()
}

// escapeRune returns the caret escape of r if needed. quote is the
// delimiter to escape, 0 if none.
func escapeRune(r, quote rune) string {
	switch {
	case r == '^':
		return "^^"
	case r == '\n':
		return "^/"
	case r == '\t':
		return "^-"
	case quote != 0 && r == quote:
		return "^" + string(r)
	case r < 0x20 || r == 0x7F:
		return fmt.Sprintf("^(%02X)", r)
	case r == utf8.RuneError:
		return "^(FFFD)"
	}
	return string(r)
}

const fileSpecials = " %:;()[]\"\\"

// EscapeFile returns the %XX escaped form of a file path, escaping bytes
// that end or are invalid in an unquoted file literal.
func EscapeFile(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b == 0x7F || strings.IndexByte(fileSpecials, b) >= 0 {
			sb.WriteByte('%')
			sb.WriteByte(hex[b>>4])
			sb.WriteByte(hex[b&0x0F])
			continue
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
