package tapelang

import "iter"

// Names assigns cells to variable names in order of first appearance.
type Names struct {
	cells map[string]Cell
	order []string
}

func NewNames() *Names {
	return &Names{
		cells: make(map[string]Cell),
	}
}

func (n *Names) Resolve(name string) Cell {
	if cell, ok := n.cells[name]; ok {
		return cell
	}
	cell := Cell(len(n.order))
	n.cells[name] = cell
	n.order = append(n.order, name)
	return cell
}

func (n *Names) Lookup(name string) (Cell, bool) {
	cell, ok := n.cells[name]
	return cell, ok
}

func (n *Names) Len() int {
	return len(n.order)
}

func (n *Names) All() iter.Seq2[string, Cell] {
	return func(yield func(string, Cell) bool) {
		for i, name := range n.order {
			if !yield(name, Cell(i)) {
				return
			}
		}
	}
}
