package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Console     ConsoleConfig     `mapstructure:"console"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds board settings
type GameConfig struct {
	// Difficulty preselects the level. Empty means the console asks.
	Difficulty string `mapstructure:"difficulty"`
	// Seed fixes mine placement. Zero seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ConsoleConfig holds terminal frontend settings
type ConsoleConfig struct {
	ClearLines int  `mapstructure:"clear_lines"`
	Color      bool `mapstructure:"color"`
}

// DevelopmentConfig holds debugging switches
type DevelopmentConfig struct {
	LogEvents bool `mapstructure:"log_events"`
}

var (
	cfg *Config
	v   *viper.Viper
)

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.difficulty", "")
	v.SetDefault("game.seed", 0)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("console.clear_lines", 50)
	v.SetDefault("console.color", true)

	v.SetDefault("development.log_events", false)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// so MSW_* overrides can live in a .env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// Init loads configuration from defaults, the config file and MSW_*
// environment variables, in increasing order of precedence.
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/minesweeper")
	}

	v.SetEnvPrefix("MSW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration, initializing defaults on first use
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set overrides a single key, e.g. from a command line flag
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

func GetInt(key string) int {
	return v.GetInt(key)
}

func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the file viper read, or "" when running on defaults
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig reloads the config file on change and calls onChange with
// the new values. Changes that fail validation are dropped.
func WatchConfig(onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			return
		}
		if err := Validate(next); err != nil {
			return
		}
		cfg = next
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}

// Difficulty resolves game.difficulty. ok is false when it is unset.
func (c *Config) Difficulty() (d core.Difficulty, ok bool, err error) {
	if strings.TrimSpace(c.Game.Difficulty) == "" {
		return 0, false, nil
	}
	d, err = core.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}

// Validate checks the configuration for invalid values
func Validate(c *Config) error {
	if _, _, err := c.Difficulty(); err != nil {
		return fmt.Errorf("game.difficulty: %w", err)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Console.ClearLines < 0 {
		return fmt.Errorf("console.clear_lines must be non-negative")
	}

	return nil
}
