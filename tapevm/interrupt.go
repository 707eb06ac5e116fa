package tapevm

type Interrupt struct {
	// Output is set after a byte was written; Byte holds it.
	Output bool
	Byte   byte
	// Loop is set on every loop back-edge.
	Loop bool
}
