package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Stats    Stats  `yaml:"stats"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Stats - where finished games are counted. The local file is always written, Redis unless DisableCloud is set.
type Stats struct {
	LocalPath    string `yaml:"local-path" env:"STATS_LOCAL_PATH" env-default:"stats.json"`
	DisableCloud bool   `yaml:"disable-cloud" env:"STATS_DISABLE_CLOUD"`
}

type Game struct {
	PlayerMark string        `yaml:"player-mark" env:"GAME_PLAYER_MARK" env-default:"X"`
	BotMark    string        `yaml:"bot-mark" env:"GAME_BOT_MARK" env-default:"O"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"24h"`
}

var ErrInvalidMarks = errors.New("player and bot marks must be distinct and non-empty")

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file at path with environment overrides, or the environment alone when the file is missing.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err = config.Game.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Game) validate() error {
	if that.PlayerMark == "" || that.BotMark == "" || that.PlayerMark == that.BotMark {
		return fmt.Errorf("%w: %q and %q", ErrInvalidMarks, that.PlayerMark, that.BotMark)
	}

	return nil
}
