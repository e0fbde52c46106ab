// Package microstring provides small, fixed-capacity strings stored inline.
//
// Each type holds a one-byte length and a byte array of its capacity, with no
// pointers and no heap allocation:
//
//	NanoString   up to 3 bytes   (4 bytes in memory)
//	MicroString  up to 7 bytes   (8 bytes in memory)
//	MilliString  up to 15 bytes  (16 bytes in memory)
//
// The zero value of every type is the empty string. Construction validates
// the byte length and UTF-8 and never truncates:
//
//	gbp, err := microstring.ParseNanoString("GBP")       // ok
//	_, err = microstring.ParseNanoString("GEEBEEPEE")    // ErrNanoStringTooLong
//	errors.Is(err, microstring.ErrCapacityExceeded)     // true
//
// Package-level values use the Must constructors:
//
//	var usd = microstring.MustNanoString("USD")
//
// Constructors and decoders keep the bytes past the length zero, so values
// compare with == and work as map keys, and MarshalBinary output is
// canonical. The zero-copy views returned by FromRaw and RawBytes alias
// caller memory that must not be written while the view is in use; Equal,
// Compare and Hash64 read only the text and do not depend on padding. Each
// type also has an Optional variant of the same size whose zero value is
// absent.
//
// The types implement encoding.TextMarshaler, json.Marshaler,
// yaml.Marshaler, cbor.Marshaler, encoding.BinaryMarshaler,
// driver.Valuer and sql.Scanner (with the matching unmarshalers), flag.Value
// and pflag.Value, and describe themselves as JSON Schema through Schemer.
//
// The per-capacity files are generated from microstring.yaml.
package microstring

//go:generate go run ./cmd/microgen --config microstring.yaml --out .
