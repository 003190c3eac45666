package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs the console game on stdin/stdout until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "signal", sig)
			cancel()
			// a second signal falls through to the default handler
			signal.Stop(sigs)
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game together over the given input and output.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	botService, err := service.NewBotService(logger)
	if err != nil {
		return fmt.Errorf("could not create bot service: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, botService)
	consoleServer := console.New(logger, gameManager, conf, in, out)

	log.Debug("Starting console game", "firstPlayer", conf.FirstPlayer)

	if err = consoleServer.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("console game error: %w", err)
	}

	return nil
}
