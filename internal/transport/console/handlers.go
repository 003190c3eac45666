package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func (that *Server) playGame(ctx context.Context, first entity.Side) error {
	game := that.manager.NewGame(ctx, first)

	that.showInstructions()

	for game.IsOngoing() {
		var err error
		if game.Turn == entity.Computer {
			err = that.handleComputerTurn(ctx, game)
		} else {
			err = that.handleHumanTurn(ctx, game)
		}

		if err != nil {
			return err
		}
	}

	that.declareResult(game)

	return nil
}

func (that *Server) handleComputerTurn(ctx context.Context, game *entity.Game) error {
	p, err := that.manager.ComputerTurn(ctx, game)
	if err != nil {
		return fmt.Errorf("computer turn failed: %w", err)
	}

	that.printf("COMPUTER has put an %s in cell %d\n\n", that.marks.Computer, p.Cell())
	that.showBoard(&game.Board)

	return nil
}

// handleHumanTurn - prompts until the human enters a free cell.
func (that *Server) handleHumanTurn(ctx context.Context, game *entity.Game) error {
	for {
		that.printf("Available positions: %s\n", availablePositions(&game.Board))
		that.printf("Enter the position: ")

		line, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		if command, ok := that.commands[line]; ok {
			command(ctx, game)
			continue
		}

		cell, err := strconv.Atoi(line)
		if err != nil {
			that.printf("Invalid input, enter a number between 1-9.\n")
			continue
		}

		p, err := that.manager.HumanTurn(ctx, game, cell)
		if errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, apperror.ErrCellOccupied) {
			that.printf("Invalid or occupied position, try again.\n")
			continue
		}
		if err != nil {
			return fmt.Errorf("human turn failed: %w", err)
		}

		that.printf("\nHUMAN has put an %s in cell %d\n\n", that.marks.Human, p.Cell())
		that.showBoard(&game.Board)

		return nil
	}
}

func (that *Server) handleHint(_ context.Context, game *entity.Game) {
	p, ok := that.manager.Hint(game)
	if !ok {
		that.printf("No hint available\n")
		return
	}

	that.printf("Hint: cell %d\n", p.Cell())
}

func (that *Server) declareResult(game *entity.Game) {
	switch game.Result {
	case entity.ResultComputer:
		that.printf("COMPUTER has won\n\n")
	case entity.ResultHuman:
		that.printf("HUMAN has won\n\n")
	default:
		that.printf("It's a draw\n\n")
	}
}
