package tapevm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/tape/tapeops"
)

// Run executes the program, yielding after every output byte and every loop back-edge.
// Execution stops when yield returns false. I/O failures panic.
func (v *VM) Run(yield func(*Interrupt) bool) {
	v.exec(v.Program, yield)
	v.flush()
}

// Exec runs the program to completion.
func (v *VM) Exec() {
	v.Run(func(*Interrupt) bool {
		return true
	})
}

func (v *VM) exec(ops []tapeops.Op, yield func(*Interrupt) bool) bool {
	size := len(v.Tape)
	for _, op := range ops {
		v.Steps++
		switch op := op.(type) {

		case tapeops.Add:
			v.Tape[v.Pointer] += byte(op)

		case tapeops.Sub:
			v.Tape[v.Pointer] -= byte(op)

		case tapeops.Left:
			v.Pointer = ((v.Pointer-int(op))%size + size) % size

		case tapeops.Right:
			v.Pointer = (v.Pointer + int(op)) % size

		case tapeops.Loop:
			for v.Tape[v.Pointer] != 0 {
				if !v.exec(op, yield) {
					return false
				}
				// back-edges count, so empty loops still make progress
				v.Steps++
				if !yield(&Interrupt{
					Loop: true,
				}) {
					return false
				}
			}

		case tapeops.Zero:
			v.Tape[v.Pointer] = 0

		case tapeops.Set:
			v.Tape[v.Pointer] = byte(op)

		case tapeops.Input:
			v.Tape[v.Pointer] = v.readByte()

		case tapeops.Output:
			b := v.Tape[v.Pointer]
			if err := v.output.WriteByte(b); err != nil {
				panic(fmt.Errorf("write output: %w", err))
			}
			if !yield(&Interrupt{
				Output: true,
				Byte:   b,
			}) {
				return false
			}

		default:
			panic(fmt.Errorf("unknown op: %T", op))
		}
	}
	return true
}

func (v *VM) readByte() byte {
	if len(v.pending) == 0 {
		v.refill()
	}
	b := v.pending[0]
	v.pending = v.pending[1:]
	return b
}

var endOfInput = []byte{0}

func (v *VM) refill() {
	if v.exhausted {
		v.pending = endOfInput
		return
	}
	// prompts written so far should be visible before blocking on input
	v.flush()
	line, err := v.input.ReadLine()
	if errors.Is(err, io.EOF) {
		v.exhausted = true
		v.pending = endOfInput
		return
	}
	if err != nil {
		panic(fmt.Errorf("read input: %w", err))
	}
	v.pending = append([]byte(line), '\n')
}

func (v *VM) flush() {
	if err := v.output.Flush(); err != nil {
		panic(fmt.Errorf("flush output: %w", err))
	}
}
