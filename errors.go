package microstring

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrCapacityExceeded is matched by every CapacityError.
	ErrCapacityExceeded = errors.New("string exceeds capacity")
	// ErrInvalidEncoding is returned when input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
	// ErrInvalidLength is returned when a raw length discriminant is out of range.
	ErrInvalidLength = errors.New("length discriminant out of range")
	// ErrNonCanonical is returned by zero-copy views over raw bytes whose
	// padding is not zero.
	ErrNonCanonical = errors.New("non-zero padding")
	// ErrRawSize is returned when a raw layout has the wrong number of bytes.
	ErrRawSize = errors.New("wrong raw layout size")
	// ErrNotString is returned when a decoder is handed a non-string scalar.
	ErrNotString = errors.New("expected a string")
)

// CapacityError reports input longer than a bounded string type can hold.
// It is comparable, so errors.Is matches the per-type sentinels directly.
type CapacityError struct {
	Type string
	Max  int
}

func (e CapacityError) Error() string {
	return "expected a string of at most " + strconv.Itoa(e.Max) + " bytes"
}

func (e CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// InvalidValueError is returned by the decoding integrations (text, JSON,
// YAML, CBOR, SQL) when an incoming string does not fit the target type.
type InvalidValueError struct {
	Value    string
	Expected string
	Err      error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value: string %q, expected %s", e.Value, e.Expected)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// expecting renders the "expected ..." clause used by decoders.
func expecting(max int) string {
	return "a string of at most " + strconv.Itoa(max) + " bytes"
}

func invalidValue(s string, max int, err error) error {
	return &InvalidValueError{Value: s, Expected: expecting(max), Err: err}
}
