package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// decodeCSV parses delimited text. The first record is the header.
//
// Blank lines are skipped. Rows shorter than the header are padded with
// empty cells; rows longer than the header make the file malformed.
func decodeCSV(data []byte, delimiter rune) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrInputEmpty
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrInputEmpty
	}
	if err != nil {
		return nil, malformed(err)
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		if len(record) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("%w: expected %d fields on line %d, saw %d",
				ErrInputMalformed, len(header), line, len(record))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		rows = append(rows, record)
	}

	t, err := NewTable(header, rows)
	if err != nil {
		return nil, malformed(err)
	}
	return t, nil
}

// encodeCSV writes the header followed by every row. No index column is added.
func encodeCSV(w io.Writer, t *Table, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// malformed tags err with ErrInputMalformed unless it already carries a kind.
func malformed(err error) error {
	if errors.Is(err, ErrInputMalformed) || errors.Is(err, ErrInputEmpty) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInputMalformed, err)
}
