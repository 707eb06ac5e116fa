package tapelang

// Cell is a tape index. Named variables keep their cell for a whole compilation.
type Cell int

type Stmt interface {
	isStmt()
}

type SetConst struct {
	Dest  Cell
	Value byte
}

type Copy struct {
	Dest Cell
	Src  Cell
}

type AddAssign struct {
	Dest     Cell
	Modifier Cell
}

type SubAssign struct {
	Dest     Cell
	Modifier Cell
}

type Print struct {
	Cell Cell
}

type Input struct {
	Cell Cell
}

type While struct {
	Cond Cell
	Body []Stmt
}

func (SetConst) isStmt()  {}
func (Copy) isStmt()      {}
func (AddAssign) isStmt() {}
func (SubAssign) isStmt() {}
func (Print) isStmt()     {}
func (Input) isStmt()     {}
func (While) isStmt()     {}
