// Package shift replaces the dates in one column of a dataset with randomly
// shifted dates.
//
// Each row whose value parses as a date gets an independent draw from an
// inclusive day range; rows that do not parse are left untouched and reported
// as warnings on the Shifter's logger. Precondition failures (missing column,
// inverted range) are returned before any row is processed.
//
//	s := shift.New(shift.WithLogger(logger), shift.WithSource(shift.NewSource(42)))
//	out, summary, err := s.ShiftColumn(table, "visit_date", shift.Range{Min: -30, Max: 30})
package shift

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/JonMunkholm/dateshift/internal/dataset"
	"github.com/JonMunkholm/dateshift/internal/logging"
)

// Summary counts what happened to the target column.
type Summary struct {
	Rows     int // data rows seen
	Shifted  int // values parsed and shifted
	Unparsed int // values passed through unchanged
}

// Shifter applies date shifts. It is not safe for concurrent use because its
// Source is not.
type Shifter struct {
	logger    *slog.Logger
	source    Source
	parser    Parser
	formatter Formatter
}

// Option configures a Shifter.
type Option func(*Shifter)

// WithLogger sets the sink for per-row parse warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shifter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSource sets the random source. Use NewSource for reproducible output.
func WithSource(src Source) Option {
	return func(s *Shifter) {
		if src != nil {
			s.source = src
		}
	}
}

// WithParser replaces the date parser.
func WithParser(p Parser) Option {
	return func(s *Shifter) {
		if p != nil {
			s.parser = p
		}
	}
}

// WithFormatter replaces the output formatter.
func WithFormatter(f Formatter) Option {
	return func(s *Shifter) {
		if f != nil {
			s.formatter = f
		}
	}
}

// New returns a Shifter. Without options it discards diagnostics, draws from
// an unseeded source and uses DefaultParser with AutoFormatter.
func New(opts ...Option) *Shifter {
	s := &Shifter{
		logger:    logging.Discard(),
		source:    NewRandomSource(),
		parser:    DefaultParser{},
		formatter: AutoFormatter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShiftColumn returns a copy of t in which every date in column has been
// moved by a whole number of days drawn uniformly from r. t itself is never
// modified.
//
// Errors are *ColumnNotFoundError or *InvalidRangeError; both are returned
// before any row is processed. Values that fail to parse are kept as-is and
// logged at warn level with the row number and reason.
func (s *Shifter) ShiftColumn(t *dataset.Table, column string, r Range) (*dataset.Table, Summary, error) {
	if t == nil {
		return nil, Summary{}, errors.New("shift: nil table")
	}

	idx, ok := t.Index(column)
	if !ok {
		return nil, Summary{}, &ColumnNotFoundError{Column: column, Available: slices.Clone(t.Columns)}
	}
	if err := r.Validate(); err != nil {
		return nil, Summary{}, err
	}

	out := t.Clone()
	summary := Summary{Rows: out.Len()}

	for i, row := range out.Rows {
		value := row[idx]

		parsed, err := s.parser.Parse(value)
		if err != nil {
			summary.Unparsed++
			s.logger.Warn("could not parse date, keeping original value",
				"column", column,
				"row", i+1,
				"value", value,
				"error", err,
			)
			continue
		}

		row[idx] = s.formatter.Format(shiftDays(parsed, Draw(s.source, r)))
		summary.Shifted++
	}

	return out, summary, nil
}

// ShiftColumn is a one-call form of (*Shifter).ShiftColumn for callers that
// do not need the Summary.
func ShiftColumn(t *dataset.Table, column string, minShift, maxShift int, opts ...Option) (*dataset.Table, error) {
	out, _, err := New(opts...).ShiftColumn(t, column, Range{Min: minShift, Max: maxShift})
	return out, err
}
