package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/logger"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/telemetry"
)

// main - is the entry point of the application. It initializes the configuration, telemetry, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	shutdown, err := telemetry.InitOtel(context.Background(), conf.Telemetry)
	if err != nil {
		panic(fmt.Errorf("failed to initialize telemetry: %w", err))
	}

	log := initLogger(conf)

	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error("Error shutting down telemetry", "error", err)
		}
	}()

	if err := app.RunApp(log, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Logs go to stderr, the board is drawn on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	return logger.New(os.Stderr, logger.ParseLevel(conf.LogLevel), conf.Telemetry.Enabled)
}
