package cubetimer

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^[UDLRFB](2|')?$`)

func assertValidScramble(t *testing.T, seq []Move) {
	t.Helper()
	for i := 1; i < len(seq); i++ {
		assert.Falsef(t, MovesRepeat(seq[i-1], seq[i]), "repeat at %d in %s", i, FormatMoves(seq))
		assert.Falsef(t, MovesCancel(seq[i-1], seq[i]), "cancel at %d in %s", i, FormatMoves(seq))
	}
	for i := 2; i < len(seq); i++ {
		assert.Falsef(t,
			AreOppositeFaces(seq[i-2].Face, seq[i].Face) && AreOppositeFaces(seq[i-1].Face, seq[i].Face),
			"opposite-face triple at %d in %s", i, FormatMoves(seq))
	}
}

func TestGenerateScramble_Length(t *testing.T) {
	seq, err := GenerateScramble(20)
	require.NoError(t, err)
	assert.Len(t, seq, 20)
}

func TestGenerateScramble_Constraints(t *testing.T) {
	for i := 0; i < 500; i++ {
		seq, err := GenerateScramble(30)
		require.NoError(t, err)
		assertValidScramble(t, seq)
	}
}

func TestGenerateScramble_Degenerate(t *testing.T) {
	seq, err := GenerateScramble(0)
	require.NoError(t, err)
	assert.Empty(t, seq)

	seq, err = GenerateScramble(1)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Contains(t, Faces[:], seq[0].Face)
	assert.Contains(t, Variations[:], seq[0].Variation)
}

func TestGenerateScramble_NegativeLength(t *testing.T) {
	seq, err := GenerateScramble(-1)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Nil(t, seq)

	s, err := GenerateScrambleString(-5)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Empty(t, s)
}

func TestGenerateScrambleString(t *testing.T) {
	s, err := GenerateScrambleString(20)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(s, " "), "expected trailing space in %q", s)

	tokens := strings.Fields(strings.TrimSpace(s))
	require.Len(t, tokens, 20)
	for _, tok := range tokens {
		assert.Regexp(t, tokenPattern, tok)
	}

	parsed, err := ParseMoves(s)
	require.NoError(t, err)
	assertValidScramble(t, parsed)
}

func TestGenerateScrambleString_Empty(t *testing.T) {
	s, err := GenerateScrambleString(0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).Scramble(20)
	require.NoError(t, err)
	b, err := NewGenerator(WithSeed(42)).Scramble(20)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewGenerator(WithSeed(43)).Scramble(20)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerator_WithRand(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	gen := NewGenerator(WithRand(r))
	for i := 0; i < 100; i++ {
		seq, err := gen.Scramble(20)
		require.NoError(t, err)
		assertValidScramble(t, seq)
	}
}

func TestGenerator_AllCandidatesReachable(t *testing.T) {
	gen := NewGenerator(WithSeed(99))
	seen := map[Move]bool{}
	for i := 0; i < 200; i++ {
		seq, err := gen.Scramble(20)
		require.NoError(t, err)
		for _, m := range seq {
			seen[m] = true
		}
	}
	assert.Len(t, seen, 18)
}

func TestGenerator_StrictAxis(t *testing.T) {
	gen := NewGenerator(WithSeed(5), WithStrictAxis(true))
	for i := 0; i < 300; i++ {
		seq, err := gen.Scramble(25)
		require.NoError(t, err)
		assertValidScramble(t, seq)
		for j := 2; j < len(seq); j++ {
			assert.Falsef(t,
				seq[j-2].Face == seq[j].Face && AreOppositeFaces(seq[j-1].Face, seq[j].Face),
				"axis pattern at %d in %s", j, FormatMoves(seq))
		}
	}
}

// stuckSource makes every IntN draw return 0, so every candidate is U.
type stuckSource struct{}

func (stuckSource) Uint64() uint64 { return 1 }

func TestGenerator_RetriesExhausted(t *testing.T) {
	gen := NewGenerator(WithRand(rand.New(stuckSource{})), WithMaxAttempts(10))

	seq, err := gen.Scramble(1)
	require.NoError(t, err)
	assert.Equal(t, []Move{U}, seq)

	seq, err = gen.Scramble(2)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Nil(t, seq)
}

func TestGenerateScramble_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := GenerateScramble(20)
			if err != nil {
				errs <- err
				return
			}
			assertValidScramble(t, seq)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestMovesCancel(t *testing.T) {
	tests := []struct {
		a, b Move
		want bool
	}{
		{U, UPrime, true},
		{UPrime, U, true},
		{R2, R2, true},
		{L, L2, false},
		{L2, LPrime, false},
		{F, F, false},
		{U, DPrime, false},
		{R2, L2, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, MovesCancel(tt.a, tt.b), "MovesCancel(%s, %s)", tt.a, tt.b)
	}
}

func TestMovesRepeat(t *testing.T) {
	assert.True(t, MovesRepeat(U, UPrime))
	assert.True(t, MovesRepeat(B2, B))
	assert.False(t, MovesRepeat(L, R))
	assert.False(t, MovesRepeat(F, U2))
}

func TestAreOppositeFaces(t *testing.T) {
	pairs := [][2]Face{{FaceU, FaceD}, {FaceL, FaceR}, {FaceF, FaceB}}
	for _, p := range pairs {
		assert.True(t, AreOppositeFaces(p[0], p[1]))
		assert.True(t, AreOppositeFaces(p[1], p[0]))
	}

	assert.False(t, AreOppositeFaces(FaceU, FaceL))
	assert.False(t, AreOppositeFaces(FaceF, FaceR))
	for _, f := range Faces {
		assert.False(t, AreOppositeFaces(f, f))
	}
	assert.False(t, AreOppositeFaces(Face("X"), Face("")))
}
