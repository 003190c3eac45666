package entity

const (
	BoardSide = 3
	CellCount = BoardSide * BoardSide
)

// Cell - state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	ComputerMark
	HumanMark
)

// Side - whose move it is.
type Side uint8

const (
	Computer Side = iota + 1
	Human
)

func (that Side) Opponent() Side {
	if that == Computer {
		return Human
	}
	return Computer
}

// Mark - the cell value a side places on the board.
func (that Side) Mark() Cell {
	if that == Computer {
		return ComputerMark
	}
	return HumanMark
}

func (that Side) String() string {
	switch that {
	case Computer:
		return "computer"
	case Human:
		return "human"
	default:
		return "unknown"
	}
}

// Position - (row, column) on the board, both in [0, 3).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromCell - converts a 1..9 cell number into a position. ok is false for out-of-range numbers.
func PositionFromCell(cell int) (Position, bool) {
	if cell < 1 || cell > CellCount {
		return Position{}, false
	}
	n := cell - 1
	return Position{Row: n / BoardSide, Col: n % BoardSide}, true
}

// Cell - 1..9 number of the position as shown to the player.
func (that Position) Cell() int {
	return that.Row*BoardSide + that.Col + 1
}

func (that Position) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSide && that.Col >= 0 && that.Col < BoardSide
}

// Board - 3x3 grid, row-major. Set and Clear do not check bounds or occupancy.
type Board [BoardSide][BoardSide]Cell

var lines = [8][3]Position{
	// rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (that *Board) IsEmpty(p Position) bool {
	return that[p.Row][p.Col] == Empty
}

func (that *Board) Set(p Position, mark Cell) {
	that[p.Row][p.Col] = mark
}

func (that *Board) Clear(p Position) {
	that[p.Row][p.Col] = Empty
}

// IsTerminal - true when a row, column or diagonal holds three identical marks.
func (that *Board) IsTerminal() bool {
	_, ok := that.completedLine()
	return ok
}

// Winner - side owning the completed line, if any.
func (that *Board) Winner() (Side, bool) {
	mark, ok := that.completedLine()
	if !ok {
		return 0, false
	}
	if mark == ComputerMark {
		return Computer, true
	}
	return Human, true
}

func (that *Board) completedLine() (Cell, bool) {
	for _, line := range lines {
		a, b, c := that.at(line[0]), that.at(line[1]), that.at(line[2])
		if a != Empty && a == b && b == c {
			return a, true
		}
	}
	return Empty, false
}

func (that *Board) IsFull() bool {
	return that.Count() == CellCount
}

// Count - number of marks on the board.
func (that *Board) Count() int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}

// EmptyCells - empty positions in row-major order. The order decides tie-breaks in the search.
func (that *Board) EmptyCells() []Position {
	cells := make([]Position, 0, CellCount)
	for r := 0; r < BoardSide; r++ {
		for c := 0; c < BoardSide; c++ {
			if that[r][c] == Empty {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

func (that *Board) at(p Position) Cell {
	return that[p.Row][p.Col]
}
