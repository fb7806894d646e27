package sigil

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// Inputs shorter than sniffMinLen are only rejected for a NUL byte.
const (
	sniffMinLen     = 64
	controlRatioMax = 50 // one control byte in fifty
)

// InputError locates the byte that made ValidateInput reject its input. Err
// is ErrInvalidUTF8 or ErrBinaryInput.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidateInput rejects markup that is not UTF-8 text. It returns an
// *InputError for the first invalid sequence or NUL byte, or for the first
// control character when control characters make up too much of the input.
func ValidateInput(src []byte) error {
	firstControl, controls := -1, 0
	for off := 0; off < len(src); {
		r, size := utf8.DecodeRune(src[off:])
		switch {
		case r == utf8.RuneError && size <= 1:
			return &InputError{Offset: off, Err: ErrInvalidUTF8}
		case r == 0:
			return &InputError{Offset: off, Err: ErrBinaryInput}
		case isControlRune(r):
			if firstControl < 0 {
				firstControl = off
			}
			controls++
		}
		off += size
	}
	if len(src) >= sniffMinLen && controls*controlRatioMax >= len(src) {
		return &InputError{Offset: firstControl, Err: ErrBinaryInput}
	}
	return nil
}

// isControlRune reports C0 controls and DEL, leaving out the whitespace
// controls tab, LF, VT, FF and CR that markup may carry.
func isControlRune(r rune) bool {
	switch {
	case r >= '\t' && r <= '\r':
		return false
	case r < 0x20, r == 0x7F:
		return true
	}
	return false
}
