package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	ResultComputer = "computer"
	ResultHuman    = "human"
	ResultDraw     = "draw"
)

// Game - a single round between the human and the computer. Nothing survives the round.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Turn      Side   `json:"turn"`
	MoveIndex int    `json:"move_index"`
	Status    string `json:"status"`
	Result    string `json:"result"`
}

func NewGame(id string, first Side) *Game {
	return &Game{
		ID:     id,
		Turn:   first,
		Status: StatusOngoing,
	}
}

// MakeTurn - validates and applies a move for the given side, then updates the game state.
func (that *Game) MakeTurn(side Side, p Position) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !p.Valid() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, p.Row, p.Col)
	}

	if that.Turn != side {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.IsEmpty(p) {
		return apperror.ErrCellOccupied
	}

	that.Board.Set(p, side.Mark())
	that.MoveIndex++
	that.Turn = side.Opponent()

	that.UpdateGameState()

	return nil
}

// UpdateGameState - finishes the game on a completed line or a full board.
func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.Winner(); ok {
		that.Status = StatusFinished
		that.Result = winner.String()
		return
	}

	if that.Board.IsFull() {
		that.Status = StatusFinished
		that.Result = ResultDraw
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.Result == ResultDraw
}
