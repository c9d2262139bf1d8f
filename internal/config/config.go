// Package config loads the bot configuration from defaults, an optional YAML
// file and BOT_* environment variables, and validates it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/viper"
)

// TokenEnv is the environment variable holding the Telegram bot token.
const TokenEnv = "BOT_TELEGRAM_TOKEN"

// ErrMissingToken is returned by Load when no Telegram token is configured.
// The bot cannot start without it.
var ErrMissingToken = errors.New("please set ENV: " + TokenEnv)

// Config is the complete application configuration.
type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Database  DatabaseConfig  `mapstructure:"database"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// TelegramConfig holds the transport settings.
type TelegramConfig struct {
	Token              string        `mapstructure:"token"                validate:"required"`
	DropPendingUpdates bool          `mapstructure:"drop_pending_updates"`
	SendTimeout        time.Duration `mapstructure:"send_timeout"         validate:"min=1s,max=1m"`

	// BotInfo is filled at startup from getMe.
	BotInfo *models.User `mapstructure:"-" validate:"-"`
}

// LoggerConfig controls log level, format and the optional rotating log file.
type LoggerConfig struct {
	Level string        `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool          `mapstructure:"json"`
	File  LogFileConfig `mapstructure:"file"`
}

// LogFileConfig configures the rotating log file. An empty Path disables it.
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"  validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups"  validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
}

// DatabaseConfig configures command statistics storage. An empty Path runs
// the bot without a database.
type DatabaseConfig struct {
	Path           string        `mapstructure:"path"`
	StatsRetention time.Duration `mapstructure:"stats_retention" validate:"min=1h"`
}

// Enabled reports whether statistics are persisted.
func (d DatabaseConfig) Enabled() bool {
	return d.Path != ""
}

// HTTPConfig configures the keep-alive listener.
type HTTPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr" validate:"required_if=Enabled true"`
}

// SchedulerConfig maps task names to their schedule.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig is the schedule of a single task, in six-field cron syntax.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// MessagesConfig holds the fixed user-facing texts.
type MessagesConfig struct {
	InvalidExpression string `mapstructure:"invalid_expression"  validate:"required"`
	NoChoices         string `mapstructure:"no_choices"          validate:"required"`
	MissingSkillValue string `mapstructure:"missing_skill_value" validate:"required"`
	InvalidStatuses   string `mapstructure:"invalid_statuses"    validate:"required"`
	Help              string `mapstructure:"help"                validate:"required"`
}

// Load reads the configuration. A missing file at path is not an error;
// defaults and environment variables are used instead.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The token has no default, so it must be bound for Unmarshal to see it.
	if err := v.BindEnv("telegram.token"); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", TokenEnv, err)
	}

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			slog.Info("Configuration file not found, using defaults and environment", "path", path)
		} else {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Telegram.Token == "" {
		return nil, ErrMissingToken
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
