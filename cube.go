package cubetimer

import "strings"

// Color represents a facelet color.
type Color byte

const (
	White  Color = iota // Up face when solved
	Yellow              // Down face when solved
	Orange              // Left face when solved
	Red                 // Right face when solved
	Green               // Front face when solved
	Blue                // Back face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// faceIndex maps a face to its slot in Cube.Facelets and its solved color.
func faceIndex(f Face) (int, bool) {
	switch f {
	case FaceU:
		return 0, true
	case FaceD:
		return 1, true
	case FaceL:
		return 2, true
	case FaceR:
		return 3, true
	case FaceF:
		return 4, true
	case FaceB:
		return 5, true
	}
	return 0, false
}

// strip is three facelets on one face, listed in cycle order.
type strip struct {
	face int
	idx  [3]int
}

// ring lists, for each face, the four adjacent strips a clockwise turn moves.
// Each strip takes the colors of the one before it: ring[1] <- ring[0], ...,
// ring[0] <- ring[3].
var ring = [6][4]strip{
	// U: F top -> L top -> B top -> R top
	{{4, [3]int{0, 1, 2}}, {2, [3]int{0, 1, 2}}, {5, [3]int{0, 1, 2}}, {3, [3]int{0, 1, 2}}},
	// D: F bottom -> R bottom -> B bottom -> L bottom
	{{4, [3]int{6, 7, 8}}, {3, [3]int{6, 7, 8}}, {5, [3]int{6, 7, 8}}, {2, [3]int{6, 7, 8}}},
	// L: U left -> F left -> D left -> B right
	{{0, [3]int{0, 3, 6}}, {4, [3]int{0, 3, 6}}, {1, [3]int{0, 3, 6}}, {5, [3]int{8, 5, 2}}},
	// R: U right -> B left -> D right -> F right
	{{0, [3]int{2, 5, 8}}, {5, [3]int{6, 3, 0}}, {1, [3]int{2, 5, 8}}, {4, [3]int{2, 5, 8}}},
	// F: U bottom -> R left -> D top -> L right
	{{0, [3]int{6, 7, 8}}, {3, [3]int{0, 3, 6}}, {1, [3]int{2, 1, 0}}, {2, [3]int{8, 5, 2}}},
	// B: U top -> L left -> D bottom -> R right
	{{0, [3]int{2, 1, 0}}, {2, [3]int{0, 3, 6}}, {1, [3]int{6, 7, 8}}, {3, [3]int{8, 5, 2}}},
}

// Cube represents a 3x3 cube as facelet colors, indexed by face in the
// order U, D, L, R, F, B. Each face has 9 facelets:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
type Cube struct {
	Facelets [6][9]Color
}

// NewCube creates a solved cube: white on top, green in front.
func NewCube() *Cube {
	c := &Cube{}
	for face := range c.Facelets {
		for i := range c.Facelets[face] {
			c.Facelets[face][i] = Color(face)
		}
	}
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	*c = *NewCube()
}

// Clone creates a copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	for face := range c.Facelets {
		for _, color := range c.Facelets[face] {
			if color != c.Facelets[face][4] {
				return false
			}
		}
	}
	return true
}

// FaceColors returns the nine facelets of f.
func (c *Cube) FaceColors(f Face) [9]Color {
	i, _ := faceIndex(f)
	return c.Facelets[i]
}

// Apply applies moves in order. Moves on unknown faces are ignored.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		face, ok := faceIndex(m.Face)
		if !ok {
			continue
		}
		quarterTurns := (int(m.Variation)%4 + 4) % 4
		for range quarterTurns {
			c.turn(face)
		}
	}
}

// ApplyNotation parses and applies a move sequence such as "R U R' U'".
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// turn rotates one face a quarter turn clockwise.
func (c *Cube) turn(face int) {
	f := &c.Facelets[face]
	// Corners 0->2->8->6, edges 1->5->7->3
	f[0], f[2], f[8], f[6] = f[6], f[0], f[2], f[8]
	f[1], f[5], f[7], f[3] = f[3], f[1], f[5], f[7]

	r := ring[face]
	var saved [3]Color
	for k, i := range r[3].idx {
		saved[k] = c.Facelets[r[3].face][i]
	}
	for s := 3; s > 0; s-- {
		for k := range 3 {
			c.Facelets[r[s].face][r[s].idx[k]] = c.Facelets[r[s-1].face][r[s-1].idx[k]]
		}
	}
	for k, i := range r[0].idx {
		c.Facelets[r[0].face][i] = saved[k]
	}
}

// String returns the cube as an unfolded net of color letters:
//
//	      U
//	L F R B
//	      D
func (c *Cube) String() string {
	var b strings.Builder
	writeRow := func(face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[face][row*3+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(0, row)
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []int{2, 4, 3, 5} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(1, row)
		b.WriteString("\n")
	}

	return b.String()
}
