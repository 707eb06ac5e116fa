package debugs

import (
	"github.com/reusee/tape/tapeops"
	"github.com/reusee/tape/tapevm"
)

// VMGlobals exposes a paused machine. cell and poke index the tape modulo its size.
func VMGlobals(vm *tapevm.VM) map[string]any {
	state := vm.State()
	cells := make([]int, 0, len(state.Cells))
	for _, c := range state.Cells {
		cells = append(cells, int(c))
	}
	index := func(i int) int {
		size := len(vm.Tape)
		return (i%size + size) % size
	}
	return map[string]any{
		"pointer": state.Pointer,
		"steps":   state.Steps,
		"cells":   cells,
		"program": tapeops.Format(vm.Program),
		"cell": func(i int) int {
			return int(vm.Tape[index(i)])
		},
		"poke": func(i int, value int) {
			vm.Tape[index(i)] = byte(value)
		},
	}
}
