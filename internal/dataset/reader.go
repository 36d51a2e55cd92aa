package dataset

// reader.go cleans raw input bytes before they reach a codec:
//
//   - The size limit is enforced while reading, so an oversized file is never
//     fully buffered.
//   - A UTF-8 BOM (0xEF 0xBB 0xBF), commonly added by Excel on Windows, is removed.
//
// Everything else is passed through byte for byte. Latin-1 or otherwise
// invalid UTF-8 cells reach the output exactly as they were read.

import (
	"bytes"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readLimited reads all of r, failing with ErrInputTooLarge once more than
// limit bytes have been seen. A limit of 0 disables the check.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	// Read one byte past the limit to distinguish "exactly limit" from "over".
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrInputTooLarge, limit)
	}
	return data, nil
}

// stripBOM removes a leading UTF-8 byte order mark.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}
