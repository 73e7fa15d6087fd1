package text

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/Pavez7274/kaff-sso/shape"
)

var (
	// ErrInvalidEncoding rejects byte sequences that are not valid
	// UTF-8, either at construction or on re-validation.
	ErrInvalidEncoding error = errors.New("invalid UTF-8 encoding")

	// ErrConsumed mirrors shape.ErrConsumed for callers working at the
	// text layer.
	ErrConsumed = shape.ErrConsumed

	// ErrUnsupportedShapeForTransfer mirrors the shape-layer error for
	// zero-copy transfers requested on inline-backed values.
	ErrUnsupportedShapeForTransfer = shape.ErrUnsupportedShapeForTransfer
)

// EncodingErrorDetails pinpoints the first byte offset at which a
// sequence stops being valid UTF-8.
type EncodingErrorDetails struct {
	Position int
}

func (e EncodingErrorDetails) Error() string {
	return fmt.Sprintf("invalid byte at offset %d", e.Position)
}

// encodingError wraps ErrInvalidEncoding with the offending offset.
func encodingError(b []byte) error {
	return fmt.Errorf("%w: %v", ErrInvalidEncoding, EncodingErrorDetails{Position: firstInvalid(b)})
}

// firstInvalid returns the offset of the first invalid byte, or -1 if
// b is entirely valid UTF-8.
func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
