package aspx2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnsupportedEncoding = errors.New("unsupported source encoding")
	ErrDecodeSource        = errors.New("source decoding failed")
)
