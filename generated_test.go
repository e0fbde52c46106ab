package microstring

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/microstring/internal/gen"
)

func TestGeneratedFilesAreFresh(t *testing.T) {
	cfg, err := gen.LoadConfig("microstring.yaml")
	require.NoError(t, err)
	require.Len(t, cfg.Types, 3)

	for _, typ := range cfg.Types {
		want, err := gen.Render(typ)
		require.NoError(t, err)
		got, err := os.ReadFile(typ.FileName())
		require.NoError(t, err)
		require.Equal(t, string(want), string(got), "%s is stale; run go generate", typ.FileName())
	}
}

func TestLenDiscriminant(t *testing.T) {
	for n := -1; n <= NanoStringCapacity+1; n++ {
		d, ok := nanoStringLenFrom(n)
		if n < 0 || n > NanoStringCapacity {
			require.False(t, ok, "length %d", n)
			continue
		}
		require.True(t, ok)
		require.Equal(t, n, int(d))
	}

	_, ok := milliStringLenFrom(MilliStringCapacity)
	require.True(t, ok)
	_, ok = milliStringLenFrom(256)
	require.False(t, ok)
}

func TestOptionalMark(t *testing.T) {
	o := SomeMicroString(MustMicroString("abc"))
	require.Equal(t, microStringMark(4), o.mark)
	require.Equal(t, MicroString{}.data, OptionalMicroString{}.data)

	empty := SomeMicroString(MicroString{})
	require.Equal(t, microStringMark(1), empty.mark)
}
