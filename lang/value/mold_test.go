package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoldScalars(t *testing.T) {
	cases := []struct {
		cell  *Cell
		flags MoldFlags
		want  string
	}{
		{InitInteger(&Cell{}, -12), 0, "-12"},
		{InitDecimal(&Cell{}, 1), 0, "1.0"},
		{InitDecimal(&Cell{}, 1.5), 0, "1.5"},
		{InitDecimal(&Cell{}, 1e21), 0, "1e21"},
		{InitDecimal(&Cell{}, 1e300), 0, "1e300"},
		{InitPercent(&Cell{}, 0.5), 0, "50%"},
		{InitPercent(&Cell{}, 0.07), 0, "7%"},
		{InitPair(&Cell{}, 10, 20), 0, "10x20"},
		{InitPair(&Cell{}, 1.5, -2), 0, "1.5x-2"},
		{InitTuple(&Cell{}, MakeTuple(1, 2, 3)), 0, "1.2.3"},
		{InitTime(&Cell{}, 10*time.Hour), 0, "10:00"},
		{InitTime(&Cell{}, 10*time.Hour+30*time.Second+500*time.Millisecond), 0, "10:00:30.5"},
		{InitTime(&Cell{}, -90*time.Minute), 0, "-1:30"},
		{InitChar(&Cell{}, 'a'), 0, `#"a"`},
		{InitChar(&Cell{}, '\n'), 0, `#"^/"`},
		{InitChar(&Cell{}, 'a'), MoldForm, "a"},
		{InitLogic(&Cell{}, true), 0, "true"},
		{InitLogic(&Cell{}, false), MoldAll, "#[false]"},
		{InitBlank(&Cell{}), 0, "_"},
		{InitText(&Cell{}, "a^b"), 0, `"a^^b"`},
		{InitText(&Cell{}, "say \"hi\"\n"), 0, "{say \"hi\"\n}"},
		{InitText(&Cell{}, "tab\there"), 0, `"tab^-here"`},
		{InitText(&Cell{}, "abc"), MoldForm, "abc"},
		{InitSeries(&Cell{}, KindFile, NewText("my dir/a.txt"), 0), 0, "%my%20dir/a.txt"},
		{InitSeries(&Cell{}, KindTag, NewText("b"), 0), 0, "<b>"},
		{InitSeries(&Cell{}, KindEmail, NewText("a@b.c"), 0), 0, "a@b.c"},
		{InitSeries(&Cell{}, KindBinary, NewBinary([]byte{0x0A, 0xFF}), 0), 0, "#{0AFF}"},
		{InitWord(&Cell{}, KindSetWord, Intern("x")), 0, "x:"},
		{InitWord(&Cell{}, KindGetWord, Intern("x")), 0, ":x"},
		{InitWord(&Cell{}, KindLitWord, Intern("x")), 0, "'x"},
		{InitWord(&Cell{}, KindRefinement, Intern("x")), 0, "/x"},
		{InitWord(&Cell{}, KindIssue, Intern("x")), 0, "#x"},
		{InitDatatype(&Cell{}, KindInteger), 0, "integer!"},
		{InitDatatype(&Cell{}, KindInteger), MoldAll, "#[datatype! integer!]"},
		{InitTypeset(&Cell{}, TypesOf(KindInteger, KindDecimal)), 0, "make typeset! [integer! decimal!]"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Mold(tc.cell, tc.flags))
		})
	}
}

func TestMoldTextIndex(t *testing.T) {
	var c Cell
	InitText(&c, "abc")
	c.SetIndex(1)
	assert.Equal(t, `"bc"`, Mold(&c, 0))
	assert.Equal(t, `#[text! "abc" 2]`, Mold(&c, MoldAll))
}

func TestMoldDate(t *testing.T) {
	cases := []struct {
		date             Date
		hasTime, hasZone bool
		want             string
	}{
		{Date{Year: 2000, Month: 2, Day: 29}, false, false, "29-Feb-2000"},
		{Date{Year: 99, Month: 12, Day: 1}, false, false, "1-Dec-99"},
		{Date{Year: 2000, Month: 1, Day: 1, Nano: 10 * time.Hour}, true, false, "1-Jan-2000/10:00"},
		// stored in UTC, rendered in the zone
		{Date{Year: 2000, Month: 1, Day: 1, Nano: 9 * time.Hour, Zone: 4}, true, true, "1-Jan-2000/10:00+1:00"},
		{Date{Year: 2000, Month: 1, Day: 1, Nano: 1 * time.Hour, Zone: -22}, true, true, "31-Dec-1999/19:30-5:30"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, FormatDate(c.date, c.hasTime, c.hasZone))
		})
	}
}

func TestMoldContext(t *testing.T) {
	var v, c Cell
	ctx := NewContext(KindObject, 1)
	_ = ctx.Append(Intern("a"), InitInteger(&v, 1))
	InitContext(&c, ctx)
	assert.Equal(t, "make object! [\n    a: 1\n]", Mold(&c, 0))
}
