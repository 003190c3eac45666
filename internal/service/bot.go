package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

const instrumentationName = "github.com/rocketscienceinc/tictactoe-minimax/internal/service"

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrNotComputerTurn  = errors.New("it's not the computer's turn")
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Position, error)
}

type botService struct {
	logger *slog.Logger

	tracer   trace.Tracer
	nodes    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewBotService - creates the computer player. Instruments come from the global otel providers.
func NewBotService(logger *slog.Logger) (BotService, error) {
	meter := otel.Meter(instrumentationName)

	nodes, err := meter.Int64Counter("minimax.nodes",
		metric.WithDescription("Positions evaluated by the minimax search"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create nodes counter: %w", err)
	}

	duration, err := meter.Float64Histogram("minimax.duration",
		metric.WithDescription("Time spent choosing a computer move"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &botService{
		logger:   logger.With("component", "bot"),
		tracer:   otel.Tracer(instrumentationName),
		nodes:    nodes,
		duration: duration,
	}, nil
}

// MakeTurn - picks the optimal move for the computer and applies it to the game.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Position, error) {
	ctx, span := that.tracer.Start(ctx, "BotService.MakeTurn", trace.WithAttributes(
		attribute.String("game.id", game.ID),
		attribute.Int("game.move_index", game.MoveIndex),
	))
	defer span.End()

	if game.IsFinished() {
		span.SetStatus(codes.Error, apperror.ErrGameFinished.Error())
		return entity.Position{}, apperror.ErrGameFinished
	}

	if game.Turn != entity.Computer {
		span.SetStatus(codes.Error, ErrNotComputerTurn.Error())
		return entity.Position{}, ErrNotComputerTurn
	}

	start := time.Now()
	res := minimax.Search(&game.Board, game.MoveIndex, entity.Computer)
	elapsed := time.Since(start)

	that.nodes.Add(ctx, int64(res.Nodes))
	that.duration.Record(ctx, float64(elapsed.Microseconds())/1000)

	if !res.Found {
		span.SetStatus(codes.Error, ErrNoAvailableMoves.Error())
		return entity.Position{}, ErrNoAvailableMoves
	}

	span.SetAttributes(
		attribute.Int("move.cell", res.Move.Cell()),
		attribute.Int("move.score", res.Score),
		attribute.Int("search.nodes", res.Nodes),
	)

	that.logger.DebugContext(ctx, "computer move chosen",
		"gameID", game.ID,
		"cell", res.Move.Cell(),
		"score", res.Score,
		"nodes", res.Nodes,
		"elapsed", elapsed,
	)

	if err := game.MakeTurn(entity.Computer, res.Move); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.Position{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return res.Move, nil
}
