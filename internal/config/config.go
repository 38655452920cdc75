package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidDefaultQuestions     = errors.New("quiz.default_questions must be positive")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`                // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`                  // Telegram API token loaded from environment
	CapitalsJSONPath string   `mapstructure:"capitals_json_path"` // optional override of the embedded capitals table
	Quiz             Quiz     `mapstructure:"quiz"`               // quiz configuration section
	Telegram         Telegram `mapstructure:"telegram"`           // bot configuration section
}

// Quiz contains quiz session parameters.
type Quiz struct {
	DefaultQuestions int `mapstructure:"default_questions"` // question count used by /quiz without arguments
}

// Telegram contains bot API parameters.
type Telegram struct {
	Debug         bool          `mapstructure:"debug"`          // log raw bot API traffic
	UpdateTimeout time.Duration `mapstructure:"update_timeout"` // long polling timeout
}

// Load reads configuration from a .env file, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("capitals_json_path", "")
	v.SetDefault("quiz.default_questions", 10)
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", "60s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
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

	if cfg.Quiz.DefaultQuestions <= 0 {
		return nil, ErrInvalidDefaultQuestions
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
