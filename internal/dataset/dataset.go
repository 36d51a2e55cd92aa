package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a file codec.
type Format int

const (
	FormatDelimited Format = iota
	FormatXLSX
)

// FormatFor picks the codec from the file extension. Anything that is not
// an xlsx workbook is treated as delimited text.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatDelimited
}

// ReadOptions control how an input file is decoded.
type ReadOptions struct {
	// Delimiter separates fields in delimited text (default ',').
	Delimiter rune
	// MaxFileSize rejects inputs larger than this many bytes. 0 disables the check.
	MaxFileSize int64
	// Sheet selects the xlsx worksheet. Empty means the first sheet.
	Sheet string
}

// WriteOptions control how an output file is encoded.
type WriteOptions struct {
	// Delimiter separates fields in delimited text (default ',').
	Delimiter rune
}

func (o ReadOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

func (o WriteOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// Load reads the dataset at path. Every failure is an *InputFileError.
func Load(path string, opts ReadOptions) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, inputErr(path, ErrInputMissing, nil)
		}
		return nil, inputErr(path, ErrInputUnreadable, err)
	}
	if info.IsDir() {
		return nil, inputErr(path, ErrInputMissing, errors.New("path is a directory"))
	}
	// Cheap rejection before opening; readLimited still guards files that grow.
	if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
		return nil, inputErr(path, ErrInputTooLarge,
			fmt.Errorf("%d bytes exceeds %d", info.Size(), opts.MaxFileSize))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, inputErr(path, ErrInputUnreadable, err)
	}
	defer f.Close()

	t, err := Decode(f, FormatFor(path), opts)
	if err != nil {
		return nil, inputErr(path, kindOf(err), err)
	}
	return t, nil
}

// Decode reads a dataset of the given format from r.
func Decode(r io.Reader, format Format, opts ReadOptions) (*Table, error) {
	data, err := readLimited(r, opts.MaxFileSize)
	if err != nil {
		if errors.Is(err, ErrInputTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	switch format {
	case FormatXLSX:
		return decodeXLSX(data, opts.Sheet)
	default:
		return decodeCSV(stripBOM(data), opts.delimiter())
	}
}

// Encode writes t to w in the given format.
func Encode(w io.Writer, t *Table, format Format, opts WriteOptions) error {
	switch format {
	case FormatXLSX:
		return encodeXLSX(w, t)
	default:
		return encodeCSV(w, t, opts.delimiter())
	}
}

// Save writes t to path. The data goes to a temporary file in the same
// directory which is renamed over path only after a successful write, so a
// failure never leaves a partial output behind.
func Save(path string, t *Table, opts WriteOptions) error {
	if err := writeAtomic(path, func(w io.Writer) error {
		return Encode(w, t, FormatFor(path), opts)
	}); err != nil {
		return &OutputFileError{Path: path, Err: err}
	}
	return nil
}

func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
