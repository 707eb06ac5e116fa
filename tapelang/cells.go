package tapelang

import (
	"fmt"
	"slices"

	"github.com/reusee/tape/tapeops"
)

// Cells tracks cell usage and the pointer position the generated code will have at runtime.
// Positions are relative to the pointer at program start.
type Cells struct {
	pos       int
	used      map[Cell]bool
	freeTemps []Cell
	next      Cell
}

func NewCells() *Cells {
	return &Cells{
		used: make(map[Cell]bool),
	}
}

func (c *Cells) Pos() int {
	return c.pos
}

func (c *Cells) Used(cell Cell) bool {
	return c.used[cell]
}

func (c *Cells) MarkUsed(cell Cell) {
	if cell >= c.next {
		c.next = cell + 1
	}
	c.used[cell] = true
}

func (c *Cells) AllocateTemp() Cell {
	if len(c.freeTemps) > 0 {
		// smallest first, so output does not depend on free order
		i := slices.Index(c.freeTemps, slices.Min(c.freeTemps))
		cell := c.freeTemps[i]
		c.freeTemps = slices.Delete(c.freeTemps, i, i+1)
		return cell
	}
	cell := c.next
	if c.used[cell] {
		panic(fmt.Errorf("temp cell %d already in use", cell))
	}
	c.MarkUsed(cell)
	return cell
}

func (c *Cells) FreeTemp(cell Cell) {
	c.freeTemps = append(c.freeTemps, cell)
}

// MoveTo returns the move from the current position to cell. ok is false when no move is needed.
func (c *Cells) MoveTo(cell Cell) (op tapeops.Op, ok bool) {
	distance := int(cell) - c.pos
	c.pos = int(cell)
	switch {
	case distance > 0:
		return tapeops.Right(distance), true
	case distance < 0:
		return tapeops.Left(-distance), true
	}
	return nil, false
}

// WithLoop wraps the ops emitted by fn in a loop. fn must leave the position where it found it.
func (c *Cells) WithLoop(fn func(*Cells) []tapeops.Op) tapeops.Loop {
	start := c.pos
	body := fn(c)
	if c.pos != start {
		panic(fmt.Errorf("loop body moved pointer from %d to %d", start, c.pos))
	}
	return tapeops.Loop(body)
}
