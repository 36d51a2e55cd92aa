package shift

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/dateshift/internal/dataset"
)

// captureLogger returns a logger whose records can be decoded from the buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func dateTable(values ...string) *dataset.Table {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{fmt.Sprint(i + 1), v}
	}
	return &dataset.Table{Columns: []string{"id", "date"}, Rows: rows}
}

func column(t *testing.T, tbl *dataset.Table, name string) []string {
	t.Helper()
	values, ok := tbl.Column(name)
	require.True(t, ok, "column %q missing", name)
	return values
}

func TestShiftColumn_ZeroRangeKeepsValues(t *testing.T) {
	logger, buf := captureLogger()
	s := New(WithLogger(logger), WithSource(NewSource(1)))

	out, summary, err := s.ShiftColumn(dateTable("2024-01-15", "not-a-date", "2024-12-31"), "date", Range{0, 0})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-15", "not-a-date", "2024-12-31"}, column(t, out, "date"))
	assert.Equal(t, Summary{Rows: 3, Shifted: 2, Unparsed: 1}, summary)

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0]["level"])
	assert.Equal(t, "not-a-date", recs[0]["value"])
	assert.Equal(t, "date", recs[0]["column"])
	assert.Equal(t, float64(2), recs[0]["row"])
	assert.NotEmpty(t, recs[0]["error"])
}

func TestShiftColumn_LeapDay(t *testing.T) {
	out, err := ShiftColumn(dateTable("2024-02-28"), "date", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-29"}, column(t, out, "date"))
}

func TestShiftColumn_DayFirstDatesAreShifted(t *testing.T) {
	out, err := ShiftColumn(dateTable("15/01/2024", "15-01-2024", "31/12/2024 10:00", "01/15/2024"), "date", 1, 1)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"2024-01-16", "2024-01-16", "2025-01-01 10:00:00", "2024-01-16"},
		column(t, out, "date"))
}

func TestShiftColumn_UnresolvedZoneGetsNoOffset(t *testing.T) {
	out, err := ShiftColumn(dateTable("2024-01-15 10:30:00 PST"), "date", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-16 10:30:00"}, column(t, out, "date"))
}

func TestShiftColumn_YearlessDecimalPassesThrough(t *testing.T) {
	logger, buf := captureLogger()
	out, summary, err := New(WithLogger(logger)).ShiftColumn(dateTable("1.5"), "date", Range{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5"}, column(t, out, "date"))
	assert.Equal(t, 1, summary.Unparsed)

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0]["level"])
}

func TestShiftColumn_Rollover(t *testing.T) {
	tests := []struct {
		in   string
		days int
		want string
	}{
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-15", -365, "2023-01-15"},
		{"2024-01-15", 366, "2025-01-15"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s%+d", tt.in, tt.days), func(t *testing.T) {
			out, err := ShiftColumn(dateTable(tt.in), "date", tt.days, tt.days)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, column(t, out, "date"))
		})
	}
}

func TestShiftColumn_EmptyTable(t *testing.T) {
	logger, buf := captureLogger()
	in := &dataset.Table{Columns: []string{"id", "date"}}

	out, summary, err := New(WithLogger(logger)).ShiftColumn(in, "date", Range{-365, 365})
	require.NoError(t, err)

	assert.Equal(t, in.Columns, out.Columns)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, Summary{}, summary)
	assert.Empty(t, buf.String(), "no diagnostics for an empty table")
}

func TestShiftColumn_Properties(t *testing.T) {
	values := []string{
		"2024-01-15", "not-a-date", "", "2020-02-29", "1999-12-31",
		"garbage", "2000-01-01", "2024-07-04",
	}
	for i := 0; i < 50; i++ {
		values = append(values, time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*37).Format(DateLayout))
	}
	in := dateTable(values...)
	before := in.Clone()
	r := Range{Min: -30, Max: 45}

	out, _, err := New(WithSource(NewSource(99))).ShiftColumn(in, "date", r)
	require.NoError(t, err)

	assert.Equal(t, before, in, "input table must not be modified")
	assert.Equal(t, in.Columns, out.Columns)
	require.Equal(t, in.Len(), out.Len())

	for i := range in.Rows {
		assert.Equal(t, in.Rows[i][0], out.Rows[i][0], "other columns untouched")

		orig, err := time.Parse(DateLayout, in.Rows[i][1])
		if err != nil {
			assert.Equal(t, in.Rows[i][1], out.Rows[i][1], "unparsed value is byte-identical")
			continue
		}
		got, err := time.Parse(DateLayout, out.Rows[i][1])
		require.NoError(t, err)

		days := int(got.Sub(orig).Hours() / 24)
		assert.GreaterOrEqual(t, days, r.Min)
		assert.LessOrEqual(t, days, r.Max)
	}
}

func TestShiftColumn_FreshDrawPerRow(t *testing.T) {
	values := make([]string, 200)
	for i := range values {
		values[i] = "2024-06-01"
	}

	out, _, err := New(WithSource(NewSource(7))).ShiftColumn(dateTable(values...), "date", Range{-365, 365})
	require.NoError(t, err)

	distinct := map[string]bool{}
	for _, v := range column(t, out, "date") {
		distinct[v] = true
	}
	assert.Greater(t, len(distinct), 50, "each row must get its own draw")
}

func TestShiftColumn_SeedIsReproducible(t *testing.T) {
	in := dateTable("2024-01-15", "2023-05-05", "March 3, 2021", "2022-10-10 08:15:00")
	r := Range{-100, 100}

	a, _, err := New(WithSource(NewSource(42))).ShiftColumn(in, "date", r)
	require.NoError(t, err)
	b, _, err := New(WithSource(NewSource(42))).ShiftColumn(in, "date", r)
	require.NoError(t, err)
	c, _, err := New(WithSource(NewSource(43))).ShiftColumn(in, "date", r)
	require.NoError(t, err)

	assert.Equal(t, a.Rows, b.Rows)
	assert.NotEqual(t, a.Rows, c.Rows)
}

func TestShiftColumn_ColumnNotFound(t *testing.T) {
	in := dateTable("2024-01-15")
	before := in.Clone()

	out, _, err := New().ShiftColumn(in, "Date", Range{0, 1})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	var cnf *ColumnNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, "Date", cnf.Column)
	assert.Equal(t, []string{"id", "date"}, cnf.Available)
	assert.Equal(t, before, in)
}

func TestShiftColumn_InvertedRange(t *testing.T) {
	logger, buf := captureLogger()
	in := dateTable("2024-01-15", "not-a-date")
	before := in.Clone()

	out, _, err := New(WithLogger(logger)).ShiftColumn(in, "date", Range{Min: 5, Max: -5})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), "min_shift=5")
	assert.Contains(t, err.Error(), "max_shift=-5")
	assert.Equal(t, before, in)
	assert.Empty(t, buf.String(), "no rows are processed when the range is invalid")
}

func TestShiftColumn_NilTable(t *testing.T) {
	_, _, err := New().ShiftColumn(nil, "date", Range{})
	assert.Error(t, err)
}

func TestShiftColumn_CustomFormatterAndParser(t *testing.T) {
	parser := ParserFunc(func(v string) (Parsed, error) {
		if v != "epoch" {
			return Parsed{}, ErrUnparseable
		}
		return Parsed{Time: time.Unix(0, 0).UTC()}, nil
	})

	out, err := ShiftColumn(dateTable("epoch", "2024-01-01"), "date", 2, 2,
		WithParser(parser),
		WithFormatter(LayoutFormatter{Layout: "02/01/2006"}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"03/01/1970", "2024-01-01"}, column(t, out, "date"))
}

func TestShiftColumn_KeepsPrecision(t *testing.T) {
	out, err := ShiftColumn(dateTable(
		"2024-01-15 10:30:00",
		"2024-01-15T10:30:00+02:00",
		"January 15, 2024",
	), "date", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2024-01-16 10:30:00",
		"2024-01-16 10:30:00+02:00",
		"2024-01-16",
	}, column(t, out, "date"))
}
