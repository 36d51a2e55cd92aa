package dataset

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// decodeXLSX reads one worksheet. Row 1 is the header; cells are taken as
// their formatted text, the way they appear in Excel.
func decodeXLSX(data []byte, sheet string) (*Table, error) {
	if len(data) == 0 {
		return nil, ErrInputEmpty
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, malformed(err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrInputEmpty
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: sheet %q not found", ErrInputMalformed, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, malformed(err)
	}
	if len(rows) == 0 || isBlankRow(rows[0]) {
		return nil, ErrInputEmpty
	}

	header := rows[0]
	body := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// GetRows returns empty rows between populated ones; skip them like blank CSV lines.
		if isBlankRow(row) {
			continue
		}
		if len(row) > len(header) {
			return nil, fmt.Errorf("%w: expected %d cells on row %d, saw %d",
				ErrInputMalformed, len(header), i+2, len(row))
		}
		// GetRows trims trailing empty cells.
		for len(row) < len(header) {
			row = append(row, "")
		}
		body = append(body, row)
	}

	t, err := NewTable(header, body)
	if err != nil {
		return nil, malformed(err)
	}
	return t, nil
}

// encodeXLSX writes the table to a single-sheet workbook.
func encodeXLSX(w io.Writer, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := setRow(f, i+2, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(defaultSheet, cell, &values)
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
