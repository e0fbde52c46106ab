package microstring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// ImportPath is the import path of this package, used to build schema ids.
const ImportPath = "github.com/rawbytedev/microstring"

// MaxCapacity is the largest capacity a bounded string type may declare.
const MaxCapacity = 255

// Text is implemented by every bounded string type in this package.
type Text interface {
	fmt.Stringer
	Len() int
	Capacity() int
	AppendTo(dst []byte) []byte
}

// Equal reports whether a and b hold the same text, regardless of their
// capacities.
func Equal(a, b Text) bool {
	return a.Len() == b.Len() && Compare(a, b) == 0
}

// Compare orders the text of a and b byte-wise, returning -1, 0 or +1.
func Compare(a, b Text) int {
	var ab, bb [MaxCapacity]byte
	return bytes.Compare(a.AppendTo(ab[:0]), b.AppendTo(bb[:0]))
}

func validText(s string) bool  { return utf8.ValidString(s) }
func validBytes(b []byte) bool { return utf8.Valid(b) }

func zeroBytes(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func equalText(a, b []byte) bool { return bytes.Equal(a, b) }

func compareText(a, b []byte) int { return bytes.Compare(a, b) }

// compareString compares b with t without converting b to a string.
func compareString(b []byte, t string) int {
	return strings.Compare(unsafe.String(unsafe.SliceData(b), len(b)), t)
}

func hashText(b []byte) uint64 { return xxhash.Sum64(b) }

func quote(s string) string { return strconv.Quote(s) }

// decodeFailure turns a constructor error into the error reported by the
// decoding integrations.
func decodeFailure(s string, max int, err error) error {
	if err == ErrInvalidEncoding {
		return &InvalidValueError{Value: s, Expected: "valid UTF-8 text", Err: err}
	}
	return invalidValue(s, max, err)
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func marshalJSONText(b []byte) ([]byte, error) {
	return json.Marshal(unsafe.String(unsafe.SliceData(b), len(b)))
}

func unmarshalJSONText(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func yamlText(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || isYAMLNull(node) {
		return "", fmt.Errorf("line %d: %w", node.Line, ErrNotString)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return "", err
	}
	return s, nil
}

// yamlFailure prefixes err with the line of node, keeping it unwrappable.
func yamlFailure(node *yaml.Node, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("line %d: %w", node.Line, err)
}

func scanText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("cannot scan NULL: %w", ErrNotString)
	default:
		return "", fmt.Errorf("cannot scan %T: %w", src, ErrNotString)
	}
}
