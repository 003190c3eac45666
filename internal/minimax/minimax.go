// Package minimax implements exhaustive game-tree search for the computer player.
//
// The computer is the maximizer. Scores are +10 for a computer win, -10 for a
// human win and 0 for a draw, with no preference for faster wins: among moves
// of equal score the first empty cell in row-major order is chosen.
package minimax

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0

	// sentinels strictly outside the attainable score range
	minSentinel = -9999
	maxSentinel = 9999
)

// Result - outcome of a top-level search.
type Result struct {
	Move  entity.Position
	Found bool
	Score int
	// Nodes is the number of positions evaluated, the root children included.
	Nodes int
}

// BestMove - optimal move for the computer. moveIndex is the number of marks already placed.
// ok is false when the board has no empty cell. The board is restored before returning.
func BestMove(board *entity.Board, moveIndex int) (entity.Position, bool) {
	res := Search(board, moveIndex, entity.Computer)
	return res.Move, res.Found
}

// BestMoveFor - optimal move for either side. The human side picks the lowest score.
func BestMoveFor(board *entity.Board, moveIndex int, side entity.Side) (entity.Position, bool) {
	res := Search(board, moveIndex, side)
	return res.Move, res.Found
}

// Search - runs the top-level move selection for side and reports the chosen move with its score.
func Search(board *entity.Board, moveIndex int, side entity.Side) Result {
	s := &searcher{board: board}

	res := Result{Score: minSentinel}
	if side == entity.Human {
		res.Score = maxSentinel
	}

	for _, p := range board.EmptyCells() {
		score := s.withMove(p, side, func() int {
			return s.evaluate(moveIndex+1, side.Opponent())
		})

		if better(side, score, res.Score) {
			res.Score = score
			res.Move = p
			res.Found = true
		}
	}

	res.Nodes = s.nodes
	if !res.Found {
		res.Score = DrawScore
	}

	return res
}

// Evaluate - game-theoretic value of board with mover to play next, from the computer's point of view.
// depth is the number of marks on the board.
func Evaluate(board *entity.Board, depth int, mover entity.Side) int {
	s := &searcher{board: board}
	return s.evaluate(depth, mover)
}

type searcher struct {
	board *entity.Board
	nodes int
}

func (that *searcher) evaluate(depth int, mover entity.Side) int {
	that.nodes++

	// the previous mover completed a line
	if that.board.IsTerminal() {
		if mover == entity.Computer {
			return LossScore
		}
		return WinScore
	}

	if depth == entity.CellCount {
		return DrawScore
	}

	best := minSentinel
	if mover == entity.Human {
		best = maxSentinel
	}

	for _, p := range that.board.EmptyCells() {
		score := that.withMove(p, mover, func() int {
			return that.evaluate(depth+1, mover.Opponent())
		})

		if mover == entity.Computer {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

// withMove - places side's mark at p for the duration of fn.
func (that *searcher) withMove(p entity.Position, side entity.Side, fn func() int) int {
	that.board.Set(p, side.Mark())
	defer that.board.Clear(p)

	return fn()
}

func better(side entity.Side, score, best int) bool {
	if side == entity.Human {
		return score < best
	}
	return score > best
}
