package tapevm

import (
	"bufio"
	"io"

	"github.com/reusee/tape/tapeops"
)

const DefaultTapeSize = 30000

type VM struct {
	Program []tapeops.Op
	Tape    []byte
	Pointer int
	Steps   int

	input     LineSource
	output    *bufio.Writer
	pending   []byte
	exhausted bool
}

type Option func(*VM)

func WithTapeSize(n int) Option {
	return func(v *VM) {
		if n > 0 {
			v.Tape = make([]byte, n)
		}
	}
}

// WithTape continues on an existing tape, for example one left by a previous machine.
func WithTape(tape []byte, pointer int) Option {
	return func(v *VM) {
		if len(tape) > 0 {
			v.Tape = tape
			v.Pointer = (pointer%len(tape) + len(tape)) % len(tape)
		}
	}
}

func NewVM(
	program []tapeops.Op,
	input LineSource,
	output io.Writer,
	options ...Option,
) *VM {
	if output == nil {
		output = io.Discard
	}
	v := &VM{
		Program:   program,
		input:     input,
		output:    bufio.NewWriter(output),
		exhausted: input == nil,
	}
	for _, option := range options {
		option(v)
	}
	if v.Tape == nil {
		v.Tape = make([]byte, DefaultTapeSize)
	}
	return v
}

func (v *VM) Cell() byte {
	return v.Tape[v.Pointer]
}

type State struct {
	Pointer int
	Steps   int
	// Cells is the tape up to its last nonzero cell.
	Cells []byte
}

func (v *VM) State() State {
	end := len(v.Tape)
	for end > 0 && v.Tape[end-1] == 0 {
		end--
	}
	return State{
		Pointer: v.Pointer,
		Steps:   v.Steps,
		Cells:   append([]byte(nil), v.Tape[:end]...),
	}
}
