package scanner

import (
	"testing"
	"time"

	"github.com/mna/rencore/lang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"10:30", 10*time.Hour + 30*time.Minute, true},
		{"0:00", 0, true},
		{"-1:30", -(time.Hour + 30*time.Minute), true},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second, true},
		{"1:02:03.5", time.Hour + 2*time.Minute + 3*time.Second + 500*time.Millisecond, true},
		{"2:03.25", 2*time.Minute + 3*time.Second + 250*time.Millisecond, true},
		{"100:00", 100 * time.Hour, true},
		{"1:60", 0, false},
		{"1:02:60", 0, false},
		{"1:", 0, false},
		{":30", 0, false},
		{"1:30x", 0, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out value.Cell
			n, err := Time(&out, []byte(c.in))
			if !c.ok {
				require.ErrorIs(t, err, ErrNoMatch)
				assert.True(t, out.IsTrash())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(c.in), n)
			assert.Equal(t, c.want, out.Duration())
		})
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in      string
		want    value.Date
		hasTime bool
		hasZone bool
	}{
		{"1-Jan-2000", value.Date{Year: 2000, Month: 1, Day: 1}, false, false},
		{"1-jan-2000", value.Date{Year: 2000, Month: 1, Day: 1}, false, false},
		{"15-December-1999", value.Date{Year: 1999, Month: 12, Day: 15}, false, false},
		{"1/2/2003", value.Date{Year: 2003, Month: 2, Day: 1}, false, false},
		{"1.2.2003", value.Date{Year: 2003, Month: 2, Day: 1}, false, false},
		{"2003-02-01", value.Date{Year: 2003, Month: 2, Day: 1}, false, false},
		{"1-Jan-99", value.Date{Year: 99, Month: 1, Day: 1}, false, false},
		{"29-Feb-2000", value.Date{Year: 2000, Month: 2, Day: 29}, false, false},
		{"29-Feb-2024", value.Date{Year: 2024, Month: 2, Day: 29}, false, false},
		{"Sat, 1-Jan-2000", value.Date{Year: 2000, Month: 1, Day: 1}, false, false},
		{"1-Jan-2000/10:30", value.Date{Year: 2000, Month: 1, Day: 1, Nano: 10*time.Hour + 30*time.Minute}, true, false},
		{"1-Jan-2000/10:00+1:00", value.Date{Year: 2000, Month: 1, Day: 1, Nano: 9 * time.Hour, Zone: 4}, true, true},
		{"1-Jan-2000/0:30+1:00", value.Date{Year: 1999, Month: 12, Day: 31, Nano: 23*time.Hour + 30*time.Minute, Zone: 4}, true, true},
		{"1-Jan-2000/10:00-0530", value.Date{Year: 2000, Month: 1, Day: 1, Nano: 15*time.Hour + 30*time.Minute, Zone: -22}, true, true},
		{"1-Jan-2000+2:00", value.Date{Year: 2000, Month: 1, Day: 1, Zone: 8}, false, true},
		{"1-Jan-2000+15:45", value.Date{Year: 2000, Month: 1, Day: 1, Zone: 63}, false, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var out value.Cell
			n, err := Date(&out, []byte(c.in))
			require.NoError(t, err)
			assert.Equal(t, len(c.in), n)
			assert.Equal(t, c.want, out.Date())
			assert.Equal(t, c.hasTime, out.Has(value.FlagDateHasTime))
			assert.Equal(t, c.hasZone, out.Has(value.FlagDateHasZone))
		})
	}
}

func TestDateInvalid(t *testing.T) {
	for _, in := range []string{
		"29-Feb-1900",
		"29-Feb-2023",
		"31-Apr-2000",
		"0-Jan-2000",
		"1-Foo-2000",
		"1-Ja-2000",
		"1-13-2000",
		"1-Jan/2000",
		"1-Jan-16384",
		"1-Jan-2000/24:00",
		"1-Jan-2000/10:00+1:10",
		"1-Jan-2000/10:00+16:00",
		"1-Jan--2000",
		"Jan",
	} {
		t.Run(in, func(t *testing.T) {
			var out value.Cell
			_, err := Date(&out, []byte(in))
			require.ErrorIs(t, err, ErrNoMatch)
			assert.True(t, out.IsTrash())
		})
	}
}

func TestDateMaxYear(t *testing.T) {
	lim := *DefaultLimits
	lim.MaxYear = 3000

	var out value.Cell
	_, err := lim.Date(&out, []byte("1-Jan-3001"))
	assert.ErrorIs(t, err, ErrNoMatch)
	_, err = lim.Date(&out, []byte("1-Jan-3000"))
	assert.NoError(t, err)
}
