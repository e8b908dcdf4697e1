package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"GRIDGAME_LOG_LEVEL" env-default:"info"`
	Game     Game    `yaml:"game"`
	Console  Console `yaml:"console"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
}

type Game struct {
	GridSize     int    `yaml:"grid-size" env:"GRIDGAME_GRID_SIZE" env-default:"3"`
	AskGridSize  bool   `yaml:"ask-grid-size" env:"GRIDGAME_ASK_GRID_SIZE" env-default:"true"`
	WinTarget    int    `yaml:"win-target" env:"GRIDGAME_WIN_TARGET" env-default:"3"`
	FirstPlayer  string `yaml:"first-player" env:"GRIDGAME_FIRST_PLAYER" env-default:"human"`
	MarkerMode   string `yaml:"marker-mode" env:"GRIDGAME_MARKER_MODE" env-default:"standard"`
	ComputerName string `yaml:"computer-name" env:"GRIDGAME_COMPUTER_NAME" env-default:"Computer"`
	Seed         int64  `yaml:"seed" env:"GRIDGAME_SEED" env-default:"0"`
}

type Console struct {
	Pause        time.Duration `yaml:"pause" env:"GRIDGAME_PAUSE" env-default:"700ms"`
	ClearScreen  bool          `yaml:"clear-screen" env:"GRIDGAME_CLEAR_SCREEN" env-default:"true"`
	MessagesPath string        `yaml:"messages-path" env:"GRIDGAME_MESSAGES_PATH"`
}

type Storage struct {
	Backend string        `yaml:"backend" env:"GRIDGAME_STORAGE" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"GRIDGAME_STORAGE_TTL" env-default:"1h"`
}

type Redis struct {
	Host string `yaml:"host" env:"GRIDGAME_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"GRIDGAME_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations from the yml file, falls back to the environment when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
