package service

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Applies the winning move", func(t *testing.T) {
		ctx, st := suite.New(t)

		bot, err := NewBotService(st.Logger)
		require.NoError(t, err)

		// Given: the computer can complete the top row
		game := &entity.Game{
			ID: "123",
			Board: entity.Board{
				{entity.ComputerMark, entity.ComputerMark, entity.Empty},
				{entity.HumanMark, entity.HumanMark, entity.Empty},
				{},
			},
			Turn:      entity.Computer,
			MoveIndex: 4,
			Status:    entity.StatusOngoing,
		}

		// When: the bot makes its turn
		move, err := bot.MakeTurn(ctx, game)

		// Then: the row is completed and the game is won
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 0, Col: 2}, move)
		assert.Equal(t, 5, game.MoveIndex)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.ResultComputer, game.Result)
	})

	t.Run("Opens in the top-left corner", func(t *testing.T) {
		ctx, st := suite.New(t)

		bot, err := NewBotService(st.Logger)
		require.NoError(t, err)

		// Given: a new game where the computer starts
		game := entity.NewGame("123", entity.Computer)

		// When: the bot makes its turn
		move, err := bot.MakeTurn(ctx, game)

		// Then: it takes cell 1 and hands over the turn
		require.NoError(t, err)
		assert.Equal(t, 1, move.Cell())
		assert.Equal(t, entity.Human, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Refuses to move out of turn", func(t *testing.T) {
		ctx, st := suite.New(t)

		bot, err := NewBotService(st.Logger)
		require.NoError(t, err)

		// Given: a game where the human moves next
		game := entity.NewGame("123", entity.Human)

		// When: the bot is asked to move
		_, err = bot.MakeTurn(ctx, game)

		// Then: ErrNotComputerTurn is returned and the board is untouched
		require.ErrorIs(t, err, ErrNotComputerTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Finished game", func(t *testing.T) {
		ctx, st := suite.New(t)

		bot, err := NewBotService(st.Logger)
		require.NoError(t, err)

		// Given: a finished game
		game := &entity.Game{Turn: entity.Computer, Status: entity.StatusFinished, Result: entity.ResultDraw}

		// When: the bot is asked to move
		_, err = bot.MakeTurn(ctx, game)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Full board", func(t *testing.T) {
		ctx, st := suite.New(t)

		bot, err := NewBotService(st.Logger)
		require.NoError(t, err)

		// Given: a full board still marked ongoing
		game := &entity.Game{
			Board: entity.Board{
				{entity.HumanMark, entity.ComputerMark, entity.HumanMark},
				{entity.HumanMark, entity.ComputerMark, entity.ComputerMark},
				{entity.ComputerMark, entity.HumanMark, entity.HumanMark},
			},
			Turn:      entity.Computer,
			MoveIndex: 9,
			Status:    entity.StatusOngoing,
		}

		// When: the bot is asked to move
		_, err = bot.MakeTurn(ctx, game)

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

// recordSpans - installs a recording tracer provider for the duration of the test.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = provider.Shutdown(context.Background())
	})

	return recorder
}

func TestBotService_MakeTurnSpanStatus(t *testing.T) {
	tests := []struct {
		name string
		game *entity.Game
		err  error
	}{
		{
			name: "Finished game",
			game: &entity.Game{Turn: entity.Computer, Status: entity.StatusFinished, Result: entity.ResultDraw},
			err:  apperror.ErrGameFinished,
		},
		{
			name: "Human to move",
			game: entity.NewGame("123", entity.Human),
			err:  ErrNotComputerTurn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, st := suite.New(t)
			recorder := recordSpans(t)

			bot, err := NewBotService(st.Logger)
			require.NoError(t, err)

			// When: the bot is asked to move
			_, err = bot.MakeTurn(ctx, tt.game)

			// Then: the span ends with an error status
			require.ErrorIs(t, err, tt.err)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "BotService.MakeTurn", spans[0].Name())
			assert.Equal(t, codes.Error, spans[0].Status().Code)
			assert.Equal(t, tt.err.Error(), spans[0].Status().Description)
		})
	}

	t.Run("Successful move", func(t *testing.T) {
		ctx, st := suite.New(t)
		recorder := recordSpans(t)

		bot, err := NewBotService(st.Logger)
		require.NoError(t, err)

		_, err = bot.MakeTurn(ctx, entity.NewGame("123", entity.Computer))
		require.NoError(t, err)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	})
}
