// Package cubetimer provides scramble generation and move notation for
// speedcubing timers.
//
// # Quick Start
//
// Generate a standard 20 move scramble:
//
//	scramble, err := cubetimer.GenerateScramble(20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cubetimer.FormatMoves(scramble))
//
// Or as display text (every move followed by a space):
//
//	text, _ := cubetimer.GenerateScrambleString(20)
//
// # Scramble Rules
//
// A generated scramble never turns the same face twice in a row, never lets a
// move cancel the previous one, and never places a move on the face opposite
// to both of the two moves before it. WithStrictAxis additionally blocks
// patterns such as U D U.
//
// # Deterministic Scrambles
//
// A Generator can be seeded, which is useful for tests and for sharing the
// same scramble set between competitors:
//
//	gen := cubetimer.NewGenerator(cubetimer.WithSeed(42))
//	scramble, _ := gen.Scramble(20)
//
// # Previewing a Scramble
//
// The Cube type simulates a 3x3 cube, so a scramble can be checked before
// it is applied by hand:
//
//	cube := cubetimer.NewCube()
//	cube.Apply(scramble...)
//	fmt.Print(cube.String())
package cubetimer
