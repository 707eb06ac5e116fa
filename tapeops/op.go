package tapeops

import "fmt"

// Op is one coalesced instruction.
type Op interface {
	isOp()
}

type (
	Add    int
	Sub    int
	Left   int
	Right  int
	Loop   []Op
	Zero   struct{}
	Set    byte
	Input  struct{}
	Output struct{}
)

func (Add) isOp()    {}
func (Sub) isOp()    {}
func (Left) isOp()   {}
func (Right) isOp()  {}
func (Loop) isOp()   {}
func (Zero) isOp()   {}
func (Set) isOp()    {}
func (Input) isOp()  {}
func (Output) isOp() {}

func (a Add) String() string   { return fmt.Sprintf("add(%d)", int(a)) }
func (s Sub) String() string   { return fmt.Sprintf("sub(%d)", int(s)) }
func (l Left) String() string  { return fmt.Sprintf("left(%d)", int(l)) }
func (r Right) String() string { return fmt.Sprintf("right(%d)", int(r)) }
func (l Loop) String() string  { return fmt.Sprintf("loop%v", []Op(l)) }
func (Zero) String() string    { return "zero" }
func (s Set) String() string   { return fmt.Sprintf("set(%d)", byte(s)) }
func (Input) String() string   { return "input" }
func (Output) String() string  { return "output" }
