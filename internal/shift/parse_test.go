package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParser(t *testing.T) {
	fixedNow := func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	p := DefaultParser{Now: fixedNow}

	tests := []struct {
		name     string
		input    string
		want     string // AutoFormatter output
		wantTime bool
		wantZone bool
	}{
		{name: "iso date", input: "2024-01-15", want: "2024-01-15"},
		{name: "us slashes", input: "01/15/2024", want: "2024-01-15"},
		{name: "month name", input: "January 15, 2024", want: "2024-01-15"},
		{name: "abbreviated month", input: "Jan 15, 2024", want: "2024-01-15"},
		{name: "padded", input: "  2024-01-15  ", want: "2024-01-15"},
		{name: "excel formula", input: `="2024-01-15"`, want: "2024-01-15"},
		{name: "quoted", input: `'2024-01-15'`, want: "2024-01-15"},
		{name: "day-first dotted", input: "31.12.2024", want: "2024-12-31"},
		{name: "day-first slashes", input: "15/01/2024", want: "2024-01-15"},
		{name: "day-first slashes day 13", input: "13/02/2024", want: "2024-02-13"},
		{name: "day-first slashes with time", input: "31/12/2024 10:00", want: "2024-12-31 10:00:00", wantTime: true},
		{name: "day-first dashes", input: "15-01-2024", want: "2024-01-15"},
		{name: "unresolved zone abbreviation", input: "2024-01-15 10:30:00 PST", want: "2024-01-15 10:30:00", wantTime: true},
		{name: "explicit utc offset", input: "2024-01-15T10:30:00Z", want: "2024-01-15 10:30:00", wantTime: true},
		{name: "date and time", input: "2024-01-15 10:30:00", want: "2024-01-15 10:30:00", wantTime: true},
		{name: "midnight kept", input: "2024-01-15 00:00:00", want: "2024-01-15 00:00:00", wantTime: true},
		{name: "rfc3339 offset", input: "2024-01-15T10:30:00+02:00", want: "2024-01-15 10:30:00+02:00", wantTime: true, wantZone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTime, got.HasTime, "HasTime")
			assert.Equal(t, tt.wantZone, got.HasZone, "HasZone")
			assert.Equal(t, tt.want, AutoFormatter{}.Format(got))
		})
	}
}

func TestDefaultParser_Failures(t *testing.T) {
	p := DefaultParser{}

	_, err := p.Parse("")
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = p.Parse(`   `)
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = p.Parse(`=""`)
	assert.ErrorIs(t, err, ErrEmptyValue)

	for _, in := range []string{"not-a-date", "garbage", "1.5", "12.25"} {
		_, err := p.Parse(in)
		assert.ErrorIs(t, err, ErrUnparseable, "input %q", in)
	}
}

func TestParseLayouts_TwoDigitYearPivot(t *testing.T) {
	p := DefaultParser{Now: func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }}

	got, ok := p.parseLayouts("15.01.24", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())

	// 2067 is beyond 2025+20, so it belongs to the previous century.
	got, ok = p.parseLayouts("15.01.67", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 1967, got.Year())

	got, ok = p.parseLayouts("15-01-24", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestKnownOffset(t *testing.T) {
	assert.True(t, knownOffset(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, knownOffset(time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("", 2*3600))))
	assert.True(t, knownOffset(time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("EST", -5*3600))))
	assert.False(t, knownOffset(time.Date(2024, 1, 15, 0, 0, 0, 0, time.FixedZone("PST", 0))))
}

func TestCleanValue(t *testing.T) {
	tests := map[string]string{
		"  2024-01-15 ": "2024-01-15",
		`="2024-01-15"`: "2024-01-15",
		"=2024-01-15":   "2024-01-15",
		`"2024-01-15"`:  "2024-01-15",
		"":              "",
		"plain":         "plain",
	}
	for in, want := range tests {
		assert.Equal(t, want, CleanValue(in), "CleanValue(%q)", in)
	}
}

func TestNewFormatter(t *testing.T) {
	p := Parsed{Time: time.Date(2024, 2, 29, 13, 5, 0, 0, time.UTC), HasTime: true}

	assert.Equal(t, "2024-02-29 13:05:00", NewFormatter("").Format(p))
	assert.Equal(t, "29/02/2024", NewFormatter("02/01/2006").Format(p))
}
