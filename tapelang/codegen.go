package tapelang

import (
	"fmt"

	"github.com/reusee/tape/tapeops"
)

// Generate lowers statements to coalesced ops. Cells are absolute; the pointer starts at cell 0.
func Generate(stmts []Stmt) []tapeops.Op {
	g := &generator{
		cells: NewCells(),
	}
	markVariables(stmts, g.cells)
	g.stmts(stmts)
	return g.ops
}

// markVariables reserves every cell the program names, so temps never land on a variable.
func markVariables(stmts []Stmt, cells *Cells) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case SetConst:
			cells.MarkUsed(s.Dest)
		case Input:
			cells.MarkUsed(s.Cell)
		case While:
			cells.MarkUsed(s.Cond)
			markVariables(s.Body, cells)
		case Copy:
			cells.MarkUsed(s.Dest)
			cells.MarkUsed(s.Src)
		case AddAssign:
			cells.MarkUsed(s.Dest)
			cells.MarkUsed(s.Modifier)
		case SubAssign:
			cells.MarkUsed(s.Dest)
			cells.MarkUsed(s.Modifier)
		case Print:
			cells.MarkUsed(s.Cell)
		}
	}
}

type generator struct {
	cells *Cells
	ops   []tapeops.Op
}

func (g *generator) emit(ops ...tapeops.Op) {
	g.ops = append(g.ops, ops...)
}

func (g *generator) moveTo(cell Cell) {
	if op, ok := g.cells.MoveTo(cell); ok {
		g.emit(op)
	}
}

func (g *generator) loop(body func()) {
	outer := g.ops
	g.ops = nil
	loop := g.cells.WithLoop(func(*Cells) []tapeops.Op {
		body()
		return g.ops
	})
	g.ops = append(outer, loop)
}

func (g *generator) stmts(stmts []Stmt) {
	for _, stmt := range stmts {
		g.stmt(stmt)
	}
}

func (g *generator) stmt(stmt Stmt) {
	switch s := stmt.(type) {

	case SetConst:
		g.moveTo(s.Dest)
		g.emit(tapeops.Set(s.Value))

	case Copy:
		g.copy(s.Dest, s.Src)

	case AddAssign:
		g.accumulate(s.Dest, s.Modifier, tapeops.Add(1))

	case SubAssign:
		g.accumulate(s.Dest, s.Modifier, tapeops.Sub(1))

	case Print:
		g.moveTo(s.Cell)
		g.emit(tapeops.Output{})

	case Input:
		g.moveTo(s.Cell)
		g.emit(tapeops.Input{})

	case While:
		g.moveTo(s.Cond)
		g.loop(func() {
			g.stmts(s.Body)
			g.moveTo(s.Cond)
		})

	default:
		panic(fmt.Errorf("unknown statement: %T", stmt))
	}
}

// copy sets dest to src and leaves src intact.
//
//	t[-] dest[-] src[dest+ t+ src-] t[src+ t-]
func (g *generator) copy(dest, src Cell) {
	if dest == src {
		return
	}
	t := g.cells.AllocateTemp()
	g.moveTo(t)
	g.emit(tapeops.Zero{})
	g.moveTo(dest)
	g.emit(tapeops.Zero{})
	g.moveTo(src)
	g.loop(func() {
		g.moveTo(dest)
		g.emit(tapeops.Add(1))
		g.moveTo(t)
		g.emit(tapeops.Add(1))
		g.moveTo(src)
		g.emit(tapeops.Sub(1))
	})
	g.restore(src, t)
	g.cells.FreeTemp(t)
}

// accumulate applies step to dest once per unit of modifier, leaving modifier intact.
//
//	t[-] modifier[dest<step> t+ modifier-] t[modifier+ t-]
func (g *generator) accumulate(dest, modifier Cell, step tapeops.Op) {
	if dest == modifier {
		// draining modifier would also drain dest
		snapshot := g.cells.AllocateTemp()
		g.copy(snapshot, modifier)
		g.accumulate(dest, snapshot, step)
		g.cells.FreeTemp(snapshot)
		return
	}
	t := g.cells.AllocateTemp()
	g.moveTo(t)
	g.emit(tapeops.Zero{})
	g.moveTo(modifier)
	g.loop(func() {
		g.moveTo(dest)
		g.emit(step)
		g.moveTo(t)
		g.emit(tapeops.Add(1))
		g.moveTo(modifier)
		g.emit(tapeops.Sub(1))
	})
	g.restore(modifier, t)
	g.cells.FreeTemp(t)
}

// restore drains t back into cell.
func (g *generator) restore(cell, t Cell) {
	g.moveTo(t)
	g.loop(func() {
		g.moveTo(cell)
		g.emit(tapeops.Add(1))
		g.moveTo(t)
		g.emit(tapeops.Sub(1))
	})
}
