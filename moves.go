package cubetimer

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(cubetimer.R, cubetimer.U, cubetimer.RPrime, cubetimer.UPrime)
var (
	// Up face moves
	U      = Move{Face: FaceU, Variation: Normal}
	UPrime = Move{Face: FaceU, Variation: Prime}
	U2     = Move{Face: FaceU, Variation: Double}

	// Down face moves
	D      = Move{Face: FaceD, Variation: Normal}
	DPrime = Move{Face: FaceD, Variation: Prime}
	D2     = Move{Face: FaceD, Variation: Double}

	// Left face moves
	L      = Move{Face: FaceL, Variation: Normal}
	LPrime = Move{Face: FaceL, Variation: Prime}
	L2     = Move{Face: FaceL, Variation: Double}

	// Right face moves
	R      = Move{Face: FaceR, Variation: Normal}
	RPrime = Move{Face: FaceR, Variation: Prime}
	R2     = Move{Face: FaceR, Variation: Double}

	// Front face moves
	F      = Move{Face: FaceF, Variation: Normal}
	FPrime = Move{Face: FaceF, Variation: Prime}
	F2     = Move{Face: FaceF, Variation: Double}

	// Back face moves
	B      = Move{Face: FaceB, Variation: Normal}
	BPrime = Move{Face: FaceB, Variation: Prime}
	B2     = Move{Face: FaceB, Variation: Double}
)

// SexyMove is R U R' U', six repetitions of which return to solved.
var SexyMove = []Move{R, U, RPrime, UPrime}
