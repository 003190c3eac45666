package usecase

//go:generate mockgen -source=game_manager.go -destination=mock_bot_test.go -package=usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Position, error)
}

type GameManager struct {
	logger *slog.Logger
	bot    botService
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// NewGame - starts a fresh round with the given side to move.
func (that *GameManager) NewGame(ctx context.Context, first entity.Side) *entity.Game {
	game := entity.NewGame(uuid.NewString(), first)

	that.logger.InfoContext(ctx, "game started", "gameID", game.ID, "first", first.String())

	return game
}

// HumanTurn - applies the human move at the given 1..9 cell.
func (that *GameManager) HumanTurn(ctx context.Context, game *entity.Game, cell int) (entity.Position, error) {
	p, ok := entity.PositionFromCell(cell)
	if !ok {
		return entity.Position{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if err := game.MakeTurn(entity.Human, p); err != nil {
		return entity.Position{}, fmt.Errorf("failed make turn: %w", err)
	}

	that.logger.DebugContext(ctx, "human moved", "gameID", game.ID, "cell", cell)
	that.logFinished(ctx, game)

	return p, nil
}

// ComputerTurn - lets the bot choose and apply its move.
func (that *GameManager) ComputerTurn(ctx context.Context, game *entity.Game) (entity.Position, error) {
	p, err := that.bot.MakeTurn(ctx, game)
	if err != nil {
		return entity.Position{}, fmt.Errorf("failed computer turn: %w", err)
	}

	that.logFinished(ctx, game)

	return p, nil
}

// Hint - the move the search recommends for the human.
func (that *GameManager) Hint(game *entity.Game) (entity.Position, bool) {
	if game.IsFinished() {
		return entity.Position{}, false
	}

	board := game.Board

	return minimax.BestMoveFor(&board, game.MoveIndex, entity.Human)
}

func (that *GameManager) logFinished(ctx context.Context, game *entity.Game) {
	if game.IsFinished() {
		that.logger.InfoContext(ctx, "game finished", "gameID", game.ID, "result", game.Result, "moves", game.MoveIndex)
	}
}
