package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	API        APIConfig        `yaml:"api"`
	Session    SessionConfig    `yaml:"session"`
	Logging    LoggingConfig    `yaml:"logging"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Audit      AuditConfig      `yaml:"audit"`
	Exports    ExportConfig     `yaml:"exports"`
	Google     GoogleConfig     `yaml:"google"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	AdminBaseURL   string        `yaml:"admin_base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
}

type SessionConfig struct {
	Backend  string        `yaml:"backend"` // file, redis
	FilePath string        `yaml:"file_path"`
	TTL      time.Duration `yaml:"ttl"`
	Redis    RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

type GoogleConfig struct {
	CredentialsFile           string `yaml:"credentials_file"`
	TransactionsSpreadsheetID string `yaml:"transactions_spreadsheet_id"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

func Load(configPath string) (*Config, error) {
	// .env is optional; when present its values feed ${VAR} expansion below.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.AdminBaseURL == "" {
		return errors.New("api.admin_base_url is required")
	}
	if c.Session.Backend != "file" && c.Session.Backend != "redis" {
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if c.Session.Backend == "redis" && c.Session.Redis.Address == "" {
		return errors.New("session.redis.address is required for the redis backend")
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return errors.New("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == 0 {
			return errors.New("telegram.chat_id is required when telegram is enabled")
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "tikang-admin"
	}
	if c.App.Environment == "" {
		c.App.Environment = "production"
	}
	if c.API.RequestTimeout == 0 {
		c.API.RequestTimeout = 15 * time.Second
	}
	if c.API.RateLimitRPS == 0 {
		c.API.RateLimitRPS = 10
	}
	if c.API.RateLimitBurst == 0 {
		c.API.RateLimitBurst = 20
	}
	if c.Session.Backend == "" {
		c.Session.Backend = "file"
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Audit.Enabled && c.Audit.Path == "" {
		c.Audit.Path = "audit.db"
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
}
