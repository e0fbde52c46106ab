package microstring_test

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/microstring"
)

type quote struct {
	Base    microstring.NanoString          `json:"base" yaml:"base" cbor:"base"`
	Counter microstring.NanoString          `json:"counter" yaml:"counter" cbor:"counter"`
	Venue   microstring.MicroString         `json:"venue" yaml:"venue" cbor:"venue"`
	Desk    microstring.OptionalMilliString `json:"desk" yaml:"desk" cbor:"desk"`
}

func sampleQuote() quote {
	return quote{
		Base:    microstring.MustNanoString("GBP"),
		Counter: microstring.MustNanoString("USD"),
		Venue:   microstring.MustMicroString("LSE"),
		Desk:    microstring.SomeMilliString(microstring.MustMilliString("fx-spot-london")),
	}
}

func TestJSON(t *testing.T) {
	q := sampleQuote()
	data, err := json.Marshal(q)
	require.NoError(t, err)
	require.JSONEq(t, `{"base":"GBP","counter":"USD","venue":"LSE","desk":"fx-spot-london"}`, string(data))

	var got quote
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, q, got)

	var absent quote
	require.NoError(t, json.Unmarshal([]byte(`{"base":"EUR","desk":null}`), &absent))
	require.False(t, absent.Desk.IsPresent())
	data, err = json.Marshal(absent)
	require.NoError(t, err)
	require.JSONEq(t, `{"base":"EUR","counter":"","venue":"","desk":null}`, string(data))
}

func TestJSONScalar(t *testing.T) {
	var s microstring.NanoString
	require.NoError(t, json.Unmarshal([]byte(`"ab"`), &s))
	require.Equal(t, "ab", s.String())

	err := json.Unmarshal([]byte(`"abcd"`), &s)
	require.ErrorContains(t, err, "at most 3 bytes")
	var invalid *microstring.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "abcd", invalid.Value)
	require.ErrorIs(t, err, microstring.ErrCapacityExceeded)
	require.EqualError(t, invalid, `invalid value: string "abcd", expected a string of at most 3 bytes`)
	require.Equal(t, "ab", s.String(), "failed decode must not modify the target")

	err = json.Unmarshal([]byte(`12`), &s)
	require.Error(t, err)
}

func TestJSONMapKeys(t *testing.T) {
	rates := map[microstring.NanoString]float64{
		microstring.MustNanoString("EUR"): 1.17,
	}
	data, err := json.Marshal(rates)
	require.NoError(t, err)
	require.JSONEq(t, `{"EUR":1.17}`, string(data))

	var got map[microstring.NanoString]float64
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, rates, got)

	err = json.Unmarshal([]byte(`{"EURO":1}`), &got)
	require.ErrorIs(t, err, microstring.ErrNanoStringTooLong)
}

func TestYAML(t *testing.T) {
	q := sampleQuote()
	data, err := yaml.Marshal(q)
	require.NoError(t, err)

	var got quote
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Equal(t, q, got)

	var absent quote
	require.NoError(t, yaml.Unmarshal([]byte("base: EUR\ndesk: null\n"), &absent))
	require.Equal(t, "EUR", absent.Base.String())
	require.False(t, absent.Desk.IsPresent())

	err = yaml.Unmarshal([]byte("base: EUR\ncounter: DOLLAR\n"), &absent)
	require.ErrorContains(t, err, "line 2")
	require.ErrorContains(t, err, "at most 3 bytes")
	require.ErrorIs(t, err, microstring.ErrNanoStringTooLong)

	err = yaml.Unmarshal([]byte("base: [E, U, R]\n"), &absent)
	require.ErrorIs(t, err, microstring.ErrNotString)
}

func TestCBOR(t *testing.T) {
	q := sampleQuote()
	data, err := cbor.Marshal(q)
	require.NoError(t, err)

	var got quote
	require.NoError(t, cbor.Unmarshal(data, &got))
	require.Equal(t, q, got)

	scalar, err := cbor.Marshal(microstring.MustNanoString("GBP"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x63, 'G', 'B', 'P'}, scalar, "encodes as a CBOR text string")

	long, err := cbor.Marshal("GEEBEEPEE")
	require.NoError(t, err)
	var s microstring.NanoString
	err = cbor.Unmarshal(long, &s)
	require.ErrorIs(t, err, microstring.ErrNanoStringTooLong)

	var absent microstring.OptionalNanoString
	null, err := cbor.Marshal(absent)
	require.NoError(t, err)
	require.Equal(t, []byte{0xf6}, null)
	require.NoError(t, cbor.Unmarshal(null, &absent))
	require.False(t, absent.IsPresent())
}

func TestText(t *testing.T) {
	v := microstring.MustMicroString("ticker")
	text, err := v.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "ticker", string(text))

	appended, err := v.AppendText([]byte("$"))
	require.NoError(t, err)
	require.Equal(t, "$ticker", string(appended))

	var got microstring.MicroString
	require.NoError(t, got.UnmarshalText(text))
	require.Equal(t, v, got)

	err = got.UnmarshalText([]byte{'a', 0xff})
	var invalid *microstring.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "valid UTF-8 text", invalid.Expected)
	require.ErrorIs(t, err, microstring.ErrInvalidEncoding)
}

func TestBinaryLayout(t *testing.T) {
	v := microstring.MustNanoString("GB")
	raw, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{2, 'G', 'B', 0}, raw)
	require.Equal(t, microstring.NanoStringRawSize, v.BinarySize())
	require.Equal(t, raw, v.RawBytes())

	var got microstring.NanoString
	require.NoError(t, got.UnmarshalBinary(raw))
	require.Equal(t, v, got)

	// Padding written by someone else is dropped on the way in.
	require.NoError(t, got.UnmarshalBinary([]byte{2, 'G', 'B', 'X'}))
	require.Equal(t, v, got)
	require.Equal(t, v.Hash64(), got.Hash64())
	require.Equal(t, raw, got.RawBytes())

	require.ErrorIs(t, got.UnmarshalBinary([]byte{4, 'G', 'B', 'P'}), microstring.ErrInvalidLength)
	require.ErrorIs(t, got.UnmarshalBinary([]byte{255, 0, 0, 0}), microstring.ErrInvalidLength)
	require.ErrorIs(t, got.UnmarshalBinary([]byte{1, 0xff, 0, 0}), microstring.ErrInvalidEncoding)
	require.ErrorIs(t, got.UnmarshalBinary([]byte{1, 'G'}), microstring.ErrRawSize)
	require.Equal(t, v, got, "failed decode must not modify the target")
}

func TestFromRaw(t *testing.T) {
	record := []byte{3, 'E', 'U', 'R', 5, 'h', 'e', 'l', 'l', 'o', 0, 0}

	code, err := microstring.NanoStringFromRaw(record[:4])
	require.NoError(t, err)
	require.Equal(t, "EUR", code.String())

	tag, err := microstring.MicroStringFromRaw(record[4:])
	require.NoError(t, err)
	require.Equal(t, "hello", tag.String())

	// The view aliases the record.
	record[1] = 'X'
	require.Equal(t, "XUR", code.String())

	_, err = microstring.NanoStringFromRaw([]byte{9, 'A', 'B', 'C'})
	require.ErrorIs(t, err, microstring.ErrInvalidLength)
	_, err = microstring.NanoStringFromRaw([]byte{1, 'A', 'B', 0})
	require.ErrorIs(t, err, microstring.ErrNonCanonical)
	_, err = microstring.NanoStringFromRaw([]byte{2, 0xc3, 0x28, 0})
	require.ErrorIs(t, err, microstring.ErrInvalidEncoding)
	_, err = microstring.NanoStringFromRaw(record)
	require.ErrorIs(t, err, microstring.ErrRawSize)
}

func TestFromRawPaddingWrittenLater(t *testing.T) {
	rec := []byte{2, 'G', 'B', 0}
	view, err := microstring.NanoStringFromRaw(rec)
	require.NoError(t, err)

	rec[3] = 'X'
	clean := microstring.MustNanoString("GB")
	require.True(t, view.Equal(clean))
	require.True(t, clean.Equal(*view))
	require.Zero(t, view.Compare(clean))
	require.Equal(t, clean.Hash64(), view.Hash64())
	require.True(t, microstring.Equal(view, clean))
	require.Equal(t, "GB", view.String())

	// A copy decoded from the view is canonical again.
	var copied microstring.NanoString
	require.NoError(t, copied.UnmarshalBinary(view.RawBytes()))
	require.Equal(t, clean, copied)
}

func TestSchema(t *testing.T) {
	var s microstring.Schemer = microstring.NanoString{}
	data, err := json.Marshal(s.JSONSchema())
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"string","maxLength":3}`, string(data))
	require.Equal(t, "NanoString", s.SchemaName())
	require.Equal(t, "github.com/rawbytedev/microstring.NanoString", s.SchemaID())

	require.Equal(t, 15, microstring.MilliString{}.JSONSchema().MaxLength)
}
