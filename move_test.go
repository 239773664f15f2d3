package cubetimer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveNotation(t *testing.T) {
	assert.Equal(t, "R'", Move{Face: FaceR, Variation: Prime}.Notation())
	assert.Equal(t, "F2", Move{Face: FaceF, Variation: Double}.Notation())
	assert.Equal(t, "U", Move{Face: FaceU, Variation: Normal}.Notation())
	assert.Equal(t, "B'", BPrime.String())
}

func TestMoveInverse(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"r", R},
		{"U'", UPrime},
		{"U`", UPrime},
		{"D2", D2},
		{"D2'", D2},
		{" F ", F},
		{"b2", B2},
		{"L'", LPrime},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		require.NoErrorf(t, err, "ParseMove(%q)", tt.in)
		assert.Equalf(t, tt.want, got, "ParseMove(%q)", tt.in)
	}

	for _, bad := range []string{"", "X", "R3", "R''", "M", "2"} {
		_, err := ParseMove(bad)
		assert.ErrorIsf(t, err, ErrInvalidNotation, "ParseMove(%q)", bad)
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U' ")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, moves)

	moves, err = ParseMoves("   ")
	require.NoError(t, err)
	assert.Empty(t, moves)

	_, err = ParseMoves("R U Q")
	assert.ErrorIs(t, err, ErrInvalidNotation)
}

func TestFormatMoves(t *testing.T) {
	assert.Equal(t, "", FormatMoves(nil))
	assert.Equal(t, "R U R' U'", FormatMoves(SexyMove))
}

func TestInvertMoves(t *testing.T) {
	assert.Equal(t, []Move{U, R, UPrime, RPrime}, InvertMoves(SexyMove))
	assert.Empty(t, InvertMoves(nil))
}

func TestVariation_String(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "prime", Prime.String())
	assert.Equal(t, "double", Double.String())
	assert.Equal(t, "unknown", Variation(7).String())
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R2", ""},
		{"R2 R", "R'"},
		{"R R R", "R'"},
		{"U R R' U", "U2"},
		{"U D U", "U D U"},
		{"F B' F' B", "F B' F' B"},
	}
	for _, tt := range tests {
		moves, err := ParseMoves(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, FormatMoves(Simplify(moves)), tt.in)
	}
}

func TestSimplify_ScrambleIsMinimal(t *testing.T) {
	g := NewGenerator(WithSeed(11))
	for i := 0; i < 50; i++ {
		moves, err := g.Scramble(25)
		require.NoError(t, err)
		assert.Equal(t, moves, Simplify(moves))
	}
}
