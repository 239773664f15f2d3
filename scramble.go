package cubetimer

import (
	"math/rand/v2"
	"strings"
)

// Generator produces random scrambles. The zero value is not usable; create
// one with NewGenerator.
type Generator struct {
	cfg *config
}

// NewGenerator creates a scramble generator.
func NewGenerator(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Generator{cfg: cfg}
}

// GenerateScramble returns a scramble of length moves drawn from the global
// random source. It is safe for concurrent use.
func GenerateScramble(length int) ([]Move, error) {
	return NewGenerator().Scramble(length)
}

// GenerateScrambleString renders GenerateScramble(length) as text, each move
// followed by a single space.
func GenerateScrambleString(length int) (string, error) {
	return NewGenerator().ScrambleString(length)
}

// Scramble returns exactly length moves where no move turns the same face as
// the one before it, no move cancels the one before it, and no move sits on
// the face opposite to both of the two moves before it.
//
// Candidates are drawn uniformly from the 18 face/variation pairs and
// rejected until one is valid.
func (g *Generator) Scramble(length int) ([]Move, error) {
	if length < 0 {
		return nil, ErrInvalidLength
	}

	scramble := make([]Move, 0, length)
	for len(scramble) < length {
		move, err := g.next(scramble)
		if err != nil {
			return nil, err
		}
		scramble = append(scramble, move)
	}

	return scramble, nil
}

// ScrambleString renders a new scramble as text. Every move, including the
// last, is followed by one space.
func (g *Generator) ScrambleString(length int) (string, error) {
	scramble, err := g.Scramble(length)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, m := range scramble {
		b.WriteString(m.Notation())
		b.WriteByte(' ')
	}
	return b.String(), nil
}

// next draws candidates until one fits after prev.
func (g *Generator) next(prev []Move) (Move, error) {
	for attempt := 0; attempt < g.cfg.maxAttempts; attempt++ {
		candidate := Move{
			Face:      Faces[g.intN(len(Faces))],
			Variation: Variations[g.intN(len(Variations))],
		}
		if g.accepts(prev, candidate) {
			return candidate, nil
		}
	}
	return Move{}, ErrRetriesExhausted
}

func (g *Generator) accepts(prev []Move, candidate Move) bool {
	n := len(prev)
	if n == 0 {
		return true
	}

	last := prev[n-1]
	if MovesRepeat(last, candidate) || MovesCancel(last, candidate) {
		return false
	}

	if n > 1 {
		secondLast := prev[n-2]
		if AreOppositeFaces(secondLast.Face, candidate.Face) && AreOppositeFaces(last.Face, candidate.Face) {
			return false
		}
		if g.cfg.strictAxis && secondLast.Face == candidate.Face && AreOppositeFaces(last.Face, candidate.Face) {
			return false
		}
	}

	return true
}

func (g *Generator) intN(n int) int {
	if g.cfg.rng != nil {
		return g.cfg.rng.IntN(n)
	}
	return rand.IntN(n)
}

// MovesCancel reports whether b undoes a: same face with Normal/Prime in
// either order, or Double followed by Double.
func MovesCancel(a, b Move) bool {
	if a.Face != b.Face {
		return false
	}
	switch {
	case a.Variation == Normal && b.Variation == Prime:
		return true
	case a.Variation == Prime && b.Variation == Normal:
		return true
	case a.Variation == Double && b.Variation == Double:
		return true
	}
	return false
}

// MovesRepeat reports whether a and b turn the same face, whatever the
// variation.
func MovesRepeat(a, b Move) bool {
	return a.Face == b.Face
}

// AreOppositeFaces reports whether a and b are the two faces of one axis:
// U/D, L/R or F/B.
func AreOppositeFaces(a, b Face) bool {
	o := Opposite(a)
	return o != "" && o == b
}

// Opposite returns the face across the cube from f, or "" for an unknown face.
func Opposite(f Face) Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceL:
		return FaceR
	case FaceR:
		return FaceL
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	}
	return ""
}
