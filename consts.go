package nikisas

// Mathematical constants, rounded to nearest float32.
const (
	// Pi is Archimedes' constant π.
	Pi float32 = 3.1415927410125732421875

	// E is Euler's number e.
	E float32 = 2.71828174591064453125
)
