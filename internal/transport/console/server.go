package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameManager interface {
	NewGame(ctx context.Context, first entity.Side) *entity.Game
	HumanTurn(ctx context.Context, game *entity.Game, cell int) (entity.Position, error)
	ComputerTurn(ctx context.Context, game *entity.Game) (entity.Position, error)
	Hint(game *entity.Game) (entity.Position, bool)
}

type Server struct {
	logger  *slog.Logger
	manager gameManager

	marks       config.Marks
	firstPlayer string

	in    *bufio.Scanner
	lines <-chan inputLine
	out   io.Writer

	commands map[string]func(ctx context.Context, game *entity.Game)
}

func New(logger *slog.Logger, manager gameManager, conf *config.Config, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		manager:     manager,
		marks:       conf.Marks,
		firstPlayer: conf.FirstPlayer,
		in:          bufio.NewScanner(in),
		out:         out,
		commands:    make(map[string]func(context.Context, *entity.Game)),
	}

	server.commands["hint"] = server.handleHint
	server.commands["?"] = server.handleHint

	return server
}

// Start - plays rounds until the player quits, the input is closed or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.lines = that.readInput(ctx)

	that.printf("\n-------------------- Tic-Tac-Toe --------------------\n\n")

	for {
		err := that.playRound(ctx)
		if errors.Is(err, errQuit) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			log.Info("input closed")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errQuit = errors.New("player quit")

func (that *Server) playRound(ctx context.Context) error {
	first, err := that.askFirstPlayer(ctx)
	if err != nil {
		return err
	}

	if err = that.playGame(ctx, first); err != nil {
		return err
	}

	quit, err := that.askYesNo(ctx, "Do you want to quit? (y/n): ")
	if err != nil {
		return err
	}
	if quit {
		return errQuit
	}

	return nil
}

func (that *Server) askFirstPlayer(ctx context.Context) (entity.Side, error) {
	switch that.firstPlayer {
	case config.FirstPlayerHuman:
		return entity.Human, nil
	case config.FirstPlayerComputer:
		return entity.Computer, nil
	}

	for {
		that.printf("Do you want to start first? (y/n): ")

		answer, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		switch answer {
		case "y":
			return entity.Human, nil
		case "n":
			return entity.Computer, nil
		default:
			that.printf("Invalid choice\n")
		}
	}
}

func (that *Server) askYesNo(ctx context.Context, prompt string) (bool, error) {
	that.printf("%s", prompt)

	answer, err := that.readLine(ctx)
	if err != nil {
		return false, err
	}

	return answer == "y", nil
}

type inputLine struct {
	text string
	err  error
}

// readInput - scans the input on its own goroutine so a blocked read never holds up cancellation.
func (that *Server) readInput(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- inputLine{text: that.in.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := that.in.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

// readLine - next trimmed, lower-cased input line. io.EOF once the input is exhausted.
func (that *Server) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", fmt.Errorf("failed to read input: %w", line.err)
		}
		return strings.ToLower(strings.TrimSpace(line.text)), nil
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
