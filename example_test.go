package microstring_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rawbytedev/microstring"
	"github.com/rawbytedev/microstring/layout"
)

func ExampleParseNanoString() {
	gbp, err := microstring.ParseNanoString("GBP")
	fmt.Println(gbp, err)

	_, err = microstring.ParseNanoString("GEEBEEPEE")
	fmt.Println(err)
	fmt.Println(errors.Is(err, microstring.ErrCapacityExceeded))
	// Output:
	// GBP <nil>
	// expected a string of at most 3 bytes
	// true
}

func ExampleOptionalMilliString() {
	type order struct {
		Desk microstring.OptionalMilliString `json:"desk"`
	}
	var o order
	_ = json.Unmarshal([]byte(`{"desk":null}`), &o)
	fmt.Println(o.Desk.IsPresent())

	_ = json.Unmarshal([]byte(`{"desk":"fx-spot"}`), &o)
	desk, ok := o.Desk.Get()
	fmt.Println(desk, ok)
	// Output:
	// false
	// fx-spot true
}

func ExampleMicroString_Mutate() {
	s := microstring.MustMicroString("ticker")
	_ = s.Mutate(func(b []byte) {
		for i := range b {
			b[i] -= 'a' - 'A'
		}
	})
	fmt.Println(s)
	// Output: TICKER
}

func ExampleNanoStringFromRaw() {
	type rate struct {
		Code microstring.NanoString
		Bps  uint32
	}
	codec := layout.New(layout.Options{})
	rec, _ := codec.Encode(rate{Code: microstring.MustNanoString("EUR"), Bps: 117})

	code, err := microstring.NanoStringFromRaw(rec[:microstring.NanoStringRawSize])
	fmt.Println(code, err)
	// Output: EUR <nil>
}
