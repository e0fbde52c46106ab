package microstring

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding so equal text always produces
// identical bytes.
var encMode cbor.EncMode

// decMode rejects text strings that are not valid UTF-8.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("microstring: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		UTF8: cbor.UTF8RejectInvalid,
	}.DecMode()
	if err != nil {
		panic("microstring: CBOR decoder initialization failed: " + err.Error())
	}
}

// isCBORNull reports whether data is the CBOR null or undefined simple value.
func isCBORNull(data []byte) bool {
	return len(data) == 1 && (data[0] == 0xf6 || data[0] == 0xf7)
}

func marshalCBORText(s string) ([]byte, error) {
	return encMode.Marshal(s)
}

func unmarshalCBORText(data []byte) (string, error) {
	var s string
	if err := decMode.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("invalid CBOR text: %w", err)
	}
	return s, nil
}
