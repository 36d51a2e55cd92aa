package shift

// parse.go turns user-provided date strings into times.
//
// Input comes from hand-maintained spreadsheets and exports, so it is messy:
//   - Month names, slashes, dashes and dots, with or without time-of-day
//   - Excel formula prefixes (="2024-01-15") and stray quotes
//   - Day-first dates (31.12.2024, 15/01/2024, 15-01-2024)
//   - 2-digit years
//   - Zone abbreviations Go cannot resolve (PST, CET)
//
// dateparse handles the bulk; a fixed layout list covers what it rejects.

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parsed is a successfully parsed date along with what the input spelled out,
// so the shifted value can be written back at the same precision.
type Parsed struct {
	Time    time.Time
	HasTime bool // input carried a time of day
	HasZone bool // input carried an explicit, known, non-UTC offset
}

// Parser parses a single cell value.
type Parser interface {
	Parse(value string) (Parsed, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(value string) (Parsed, error)

func (f ParserFunc) Parse(value string) (Parsed, error) { return f(value) }

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would result in dates more than this many years in the future
// are assumed to be in the previous century.
// Example with pivot=20 in year 2025: "46" → 1946 (not 2046), "24" → 2024
var TwoDigitYearPivot = 20

// clockPattern detects a time of day such as "9:30" or "23:59:59".
var clockPattern = regexp.MustCompile(`\d:\d\d`)

// Fallback layouts split by year format for proper 2-digit year handling.
var (
	fourDigitYearLayouts = []string{
		"2.1.2006", "02.01.2006", // day-first dotted
		"2-1-2006", "02-01-2006", // day-first dashed
		"2/1/2006 15:04", "2/1/2006 15:04:05",
		"2/1/2006", "02/01/2006",
		"2 Jan 2006", "2 January 2006", "02-Jan-2006", "2-Jan-2006",
		"Jan 2 2006", "January 2 2006",
		"20060102",
	}
	twoDigitYearLayouts = []string{
		"2.1.06", "02.01.06",
		"2-1-06", "02-01-06",
		"02-Jan-06", "2-Jan-06",
	}
)

// DefaultParser is the permissive parser used unless another is configured.
type DefaultParser struct {
	// Location is applied to inputs without an explicit zone (default UTC).
	Location *time.Location
	// Now anchors the 2-digit year pivot (default time.Now).
	Now func() time.Time
}

// Parse implements Parser.
func (p DefaultParser) Parse(value string) (Parsed, error) {
	s := CleanValue(value)
	if s == "" {
		return Parsed{}, ErrEmptyValue
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	t, err := parseAny(s, loc)
	if err == nil && t.Year() == 0 {
		// dateparse reads bare decimals like "1.5" as month.day with no year.
		err = fmt.Errorf("no year in %q", s)
	}
	if err != nil {
		var ok bool
		if t, ok = p.parseLayouts(s, loc); !ok {
			return Parsed{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
		}
	}

	return Parsed{
		Time:    t,
		HasTime: clockPattern.MatchString(s) || hasClock(t),
		HasZone: t.Location() != loc && knownOffset(t),
	}, nil
}

// knownOffset reports whether t's zone carries a real offset. Parsing an
// abbreviation the runtime cannot resolve yields a zone with that name and
// a zero offset, which must not be written back as +00:00.
func knownOffset(t time.Time) bool {
	name, offset := t.Zone()
	if offset != 0 {
		return true
	}
	switch name {
	case "", "UTC", "GMT", "Z":
		return true
	}
	return false
}

// parseAny calls dateparse, converting its panics on some malformed inputs
// into errors so a single bad cell cannot abort the run.
func parseAny(s string, loc *time.Location) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dateparse: %v", r)
		}
	}()
	return dateparse.ParseIn(s, loc, dateparse.RetryAmbiguousDateWithSwap(true))
}

func (p DefaultParser) parseLayouts(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	pivotYear := now().Year() + TwoDigitYearPivot

	for _, layout := range twoDigitYearLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}
	return time.Time{}, false
}

func hasClock(t time.Time) bool {
	h, m, sec := t.Clock()
	return h != 0 || m != 0 || sec != 0 || t.Nanosecond() != 0
}

// CleanValue removes common spreadsheet artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanValue(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
