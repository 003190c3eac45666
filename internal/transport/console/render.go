package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const instructions = `
Choose a cell numbered from 1 to 9 as below and play

	 1 | 2 | 3
	-----------
	 4 | 5 | 6
	-----------
	 7 | 8 | 9

`

func (that *Server) showInstructions() {
	that.printf("%s", instructions)
}

func (that *Server) showBoard(board *entity.Board) {
	var sb strings.Builder

	for r, row := range board {
		sb.WriteString("\t")
		for c, cell := range row {
			sb.WriteString(that.symbol(cell))
			if c < entity.BoardSide-1 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteString("\n")

		if r < entity.BoardSide-1 {
			sb.WriteString("\t---------\n")
		}
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Server) symbol(cell entity.Cell) string {
	switch cell {
	case entity.ComputerMark:
		return that.marks.Computer
	case entity.HumanMark:
		return that.marks.Human
	default:
		return that.marks.Empty
	}
}

// availablePositions - empty cells as space separated 1..9 numbers.
func availablePositions(board *entity.Board) string {
	cells := board.EmptyCells()

	numbers := make([]string, 0, len(cells))
	for _, p := range cells {
		numbers = append(numbers, strconv.Itoa(p.Cell()))
	}

	return strings.Join(numbers, " ")
}
