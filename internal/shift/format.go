package shift

// Output layouts used by AutoFormatter.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05.999999999"
	ZoneSuffix     = "-07:00"
)

// Formatter renders a shifted date back into a cell value.
type Formatter interface {
	Format(p Parsed) string
}

// AutoFormatter keeps the precision of the input: date-only values stay
// date-only, values with a time of day keep it, and an explicit offset is
// written back.
type AutoFormatter struct{}

func (AutoFormatter) Format(p Parsed) string {
	layout := DateLayout
	if p.HasTime {
		layout = DateTimeLayout
	}
	if p.HasZone {
		layout += ZoneSuffix
	}
	return p.Time.Format(layout)
}

// LayoutFormatter writes every value with one Go time layout.
type LayoutFormatter struct {
	Layout string
}

func (f LayoutFormatter) Format(p Parsed) string {
	return p.Time.Format(f.Layout)
}

// NewFormatter returns a LayoutFormatter for a non-empty layout and an
// AutoFormatter otherwise.
func NewFormatter(layout string) Formatter {
	if layout == "" {
		return AutoFormatter{}
	}
	return LayoutFormatter{Layout: layout}
}

// shiftDays applies a calendar shift; AddDate normalizes month and year rollover.
func shiftDays(p Parsed, days int) Parsed {
	p.Time = p.Time.AddDate(0, 0, days)
	return p
}
