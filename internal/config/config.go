package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/validator"
)

const (
	FirstPlayerAsk      = "ask"
	FirstPlayerHuman    = "human"
	FirstPlayerComputer = "computer"
)

type Config struct {
	LogLevel    string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	FirstPlayer string    `yaml:"first-player" env:"TICTACTOE_FIRST_PLAYER" env-default:"ask" validate:"oneof=ask human computer"`
	Marks       Marks     `yaml:"marks"`
	Telemetry   Telemetry `yaml:"telemetry"`
}

// Marks - symbols used when drawing the board.
type Marks struct {
	Computer string `yaml:"computer" env:"TICTACTOE_COMPUTER_MARK" env-default:"O" validate:"len=1,nefield=Human,nefield=Empty"`
	Human    string `yaml:"human" env:"TICTACTOE_HUMAN_MARK" env-default:"X" validate:"len=1,nefield=Empty"`
	Empty    string `yaml:"empty" env:"TICTACTOE_EMPTY_MARK" env-default:"*" validate:"len=1"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"TICTACTOE_TELEMETRY_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"TICTACTOE_OTLP_ENDPOINT" validate:"required_if=Enabled true"`
	ServiceName string `yaml:"service-name" env:"TICTACTOE_SERVICE_NAME" env-default:"tictactoe" validate:"required"`
}

// MustLoad - load configuration from the yml file if it exists, otherwise from the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
