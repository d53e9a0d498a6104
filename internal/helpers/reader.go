package helpers

import (
	"fmt"
	"io"
)

// maxBodyBytes caps how much of a response body is buffered. Full wikitext
// for a tournament or qualification article runs to a few hundred kilobytes;
// a body past this limit is not a page worth parsing.
const maxBodyBytes = 8 << 20

// ReadAllAndClose drains r up to maxBodyBytes and always closes it, returning
// an error when the body exceeds the cap.
func ReadAllAndClose(r io.ReadCloser) ([]byte, error) {
	defer r.Close()
	raw, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBodyBytes)
	}
	return raw, nil
}
