package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment
	Quiz             Quiz     `mapstructure:"quiz"`     // quiz data and scoring
	Telegram         Telegram `mapstructure:"telegram"` // bot API client options
	DB               DB       `mapstructure:"database"` // database configuration section
	Metrics          Metrics  `mapstructure:"metrics"`  // ops HTTP listener
	Log              Log      `mapstructure:"log"`      // logger options
}

// Quiz contains quiz data locations and the scoring policy.
type Quiz struct {
	CountriesPath string                 `mapstructure:"countries_path"` // JSON file with country code -> name
	FlagsDir      string                 `mapstructure:"flags_dir"`      // directory with <code>.png flag images
	Scoring       string                 `mapstructure:"scoring"`        // "best" or "streak"
	Policy        entities.ScoringPolicy `mapstructure:"-"`              // parsed Scoring
}

// Telegram contains bot API client options.
type Telegram struct {
	Debug         bool `mapstructure:"debug"`          // log raw API traffic
	UpdateTimeout int  `mapstructure:"update_timeout"` // long polling timeout in seconds
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a database is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Metrics contains the ops HTTP listener settings.
type Metrics struct {
	Address string `mapstructure:"address"` // listen address, empty disables the listener
}

// Log contains logger options.
type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn or error; empty keeps the env default
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("quiz.countries_path", "assets/data/countries.json")
	v.SetDefault("quiz.flags_dir", "assets/flags")
	v.SetDefault("quiz.scoring", string(entities.ScoringBest))
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", 60)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("metrics.address", ":9090")
	v.SetDefault("log.level", "")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	policy, err := entities.ParseScoringPolicy(cfg.Quiz.Scoring)
	if err != nil {
		return nil, fmt.Errorf("quiz.scoring: %w", err)
	}
	cfg.Quiz.Policy = policy

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
