package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/record"
)

func TestParseCoords(t *testing.T) {
	cases := []struct {
		in   string
		want record.Coords
	}{
		{"", record.Coords{}},
		{"   ", record.Coords{}},
		{"1,2", record.Coords{grid.C(1, 2)}},
		{"0,0;1,0; 2,3 ;", record.Coords{grid.C(0, 0), grid.C(1, 0), grid.C(2, 3)}},
	}
	for _, tc := range cases {
		got, err := record.ParseCoords(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := record.ParseCoords("1,2;x,3")
	assert.ErrorIs(t, err, grid.ErrBadCoord)
}

func TestCoords_Text(t *testing.T) {
	cs := record.Coords{grid.C(0, 1), grid.C(2, 3)}
	assert.Equal(t, "0,1;2,3", cs.String())
	assert.Equal(t, "", record.Coords{}.String())

	b, err := cs.MarshalText()
	require.NoError(t, err)
	var back record.Coords
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, cs, back)
}
