package cubetimer

import (
	"strings"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists every face in draw order.
var Faces = [...]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Variation represents the direction and magnitude of a face turn.
// The value is the signed number of quarter turns.
type Variation int

const (
	Normal Variation = 1  // Clockwise (90 degrees)
	Prime  Variation = -1 // Counter-clockwise (90 degrees)
	Double Variation = 2  // Half turn (180 degrees)
)

// Variations lists every variation in draw order.
var Variations = [...]Variation{Normal, Prime, Double}

// Suffix returns the notation suffix for the variation: "", "'" or "2".
func (v Variation) Suffix() string {
	switch v {
	case Prime:
		return "'"
	case Double:
		return "2"
	}
	return ""
}

// String returns the variation name.
func (v Variation) String() string {
	switch v {
	case Normal:
		return "normal"
	case Prime:
		return "prime"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Move represents a single face turn. Moves are comparable with ==.
type Move struct {
	Face      Face      // Which face to turn
	Variation Variation // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return string(m.Face) + m.Variation.Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Variation {
	case Normal:
		inv.Variation = Prime
	case Prime:
		inv.Variation = Normal
	}
	return inv
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidNotation if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'L', 'l':
		face = FaceL
	case 'R', 'r':
		face = FaceR
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	variation := Normal
	switch s[1:] {
	case "":
	case "'", "`":
		variation = Prime
	case "2", "2'", "2`":
		variation = Double
	default:
		return Move{}, ErrInvalidNotation
	}

	return Move{Face: face, Variation: variation}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// normalizeQuarterTurns maps a signed quarter-turn count to a Variation.
// ok is false when the turns cancel out.
//
//	-3 -> Normal, -2 -> Double, -1 -> Prime, 0 -> none, 3 -> Prime
func normalizeQuarterTurns(turns int) (v Variation, ok bool) {
	switch ((turns % 4) + 4) % 4 {
	case 1:
		return Normal, true
	case 2:
		return Double, true
	case 3:
		return Prime, true
	}
	return 0, false
}

// Simplify merges consecutive turns of the same face and drops turns that
// cancel, so "R R" becomes "R2" and "U R R' U" becomes "U2". A scramble from
// Generator is already in simplest form.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		if n == 0 || out[n-1].Face != m.Face {
			out = append(out, m)
			continue
		}

		v, ok := normalizeQuarterTurns(int(out[n-1].Variation) + int(m.Variation))
		if !ok {
			out = out[:n-1]
			continue
		}
		out[n-1].Variation = v
	}
	return out
}
