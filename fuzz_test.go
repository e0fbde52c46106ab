package microstring_test

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/microstring"
)

func FuzzParseNanoString(f *testing.F) {
	for _, seed := range []string{"", "GBP", "GEEBEEPEE", "é", "\xff", "a\x00b"} {
		f.Add(seed)
	}
	f.Fuzz(fuzzParseNanoString)
}

func fuzzParseNanoString(t *testing.T, s string) {
	v, err := microstring.ParseNanoString(s)
	switch {
	case len(s) > microstring.NanoStringCapacity:
		require.ErrorIs(t, err, microstring.ErrNanoStringTooLong)
	case !utf8.ValidString(s):
		require.ErrorIs(t, err, microstring.ErrInvalidEncoding)
	default:
		require.NoError(t, err)
		require.Equal(t, s, v.String())
		raw := v.RawBytes()
		require.Equal(t, byte(len(s)), raw[0])
		require.True(t, bytes.Equal(make([]byte, microstring.NanoStringCapacity-len(s)), raw[1+len(s):]))
	}
}

func FuzzUnmarshalBinary(f *testing.F) {
	f.Add([]byte{5, 'h', 'e', 'l', 'l', 'o', 0, 0})
	f.Add([]byte{2, 'h', 'i', 'X', 'X', 'X', 'X', 'X'})
	f.Add([]byte{9, 0, 0, 0, 0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		var v microstring.MicroString
		err := v.UnmarshalBinary(data)
		if err != nil {
			require.True(t,
				errors.Is(err, microstring.ErrRawSize) ||
					errors.Is(err, microstring.ErrInvalidLength) ||
					errors.Is(err, microstring.ErrInvalidEncoding), "unexpected error %v", err)
			require.Equal(t, microstring.MicroString{}, v)
			return
		}
		require.Equal(t, data[1:1+v.Len()], v.Bytes())

		// Decoded values are canonical, so the zero-copy view accepts them.
		raw, err := v.MarshalBinary()
		require.NoError(t, err)
		view, err := microstring.MicroStringFromRaw(raw)
		require.NoError(t, err)
		require.Equal(t, v, *view)
	})
}
