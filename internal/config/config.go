package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
		Polling  bool   `yaml:"polling"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider       string  `yaml:"provider"` // "yahoo" or "rest"
		BaseURL        string  `yaml:"base_url"`
		APIKey         string  `yaml:"api_key"`
		DailyDays      int     `yaml:"daily_days"`
		WeeklyWeeks    int     `yaml:"weekly_weeks"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		TimeoutSec     int     `yaml:"timeout_sec"`
	} `yaml:"data_source"`
	Detection struct {
		TailRatioThreshold float64  `yaml:"tail_ratio_threshold"`
		MinBodySize        *float64 `yaml:"min_body_size"`     // nil means default, 0 is allowed
		VolumeMultiplier   *float64 `yaml:"volume_multiplier"` // nil means default, 0 disables the filter
		LookbackDays       int      `yaml:"lookback_days"`
		ComparisonDays     int      `yaml:"comparison_days"`
	} `yaml:"detection"`
	Universe struct {
		Nasdaq100 *bool    `yaml:"nasdaq100"`
		SP500     *bool    `yaml:"sp500"`
		Others    *bool    `yaml:"others"`
		Extra     []string `yaml:"extra"`
		Exclude   []string `yaml:"exclude"`
	} `yaml:"universe"`
	Scan struct {
		Workers int `yaml:"workers"`
	} `yaml:"scan"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresURL string `yaml:"postgres_url"`
	} `yaml:"database"`
	Stream struct {
		Addr string `yaml:"addr"`
	} `yaml:"stream"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then .env, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&cfg.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	setString(&cfg.DataSource.Provider, "DATA_PROVIDER")
	setString(&cfg.DataSource.BaseURL, "DATA_BASE_URL")
	setString(&cfg.DataSource.APIKey, "DATA_API_KEY")
	setString(&cfg.Proxy, "HTTPS_PROXY")
	setString(&cfg.Schedule.ScanCron, "CRON_SCAN")
	setString(&cfg.Database.SQLitePath, "SQLITE_PATH")
	setString(&cfg.Database.PostgresURL, "DATABASE_URL")
	setString(&cfg.Stream.Addr, "STREAM_ADDR")
	setString(&cfg.Log.Level, "LOG_LEVEL")

	setFloat(&cfg.Detection.TailRatioThreshold, "TAIL_RATIO_THRESHOLD")
	setFloatPtr(&cfg.Detection.MinBodySize, "MIN_BODY_SIZE")
	setFloatPtr(&cfg.Detection.VolumeMultiplier, "VOLUME_MULTIPLIER")
	setInt(&cfg.Detection.LookbackDays, "LOOKBACK_DAYS")
	setInt(&cfg.Detection.ComparisonDays, "COMPARISON_DAYS")
	setInt(&cfg.Scan.Workers, "SCAN_WORKERS")

	if v := os.Getenv("EXTRA_TICKERS"); v != "" {
		cfg.Universe.Extra = append(cfg.Universe.Extra, strings.Split(v, ",")...)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.DailyDays == 0 {
		cfg.DataSource.DailyDays = 180
	}
	if cfg.DataSource.WeeklyWeeks == 0 {
		cfg.DataSource.WeeklyWeeks = 52
	}
	if cfg.DataSource.RequestsPerSec == 0 {
		cfg.DataSource.RequestsPerSec = 2
	}
	if cfg.DataSource.TimeoutSec == 0 {
		cfg.DataSource.TimeoutSec = 30
	}
	if cfg.Detection.TailRatioThreshold == 0 {
		cfg.Detection.TailRatioThreshold = 2
	}
	if cfg.Detection.MinBodySize == nil {
		v := 0.1
		cfg.Detection.MinBodySize = &v
	}
	if cfg.Detection.VolumeMultiplier == nil {
		v := 1.2
		cfg.Detection.VolumeMultiplier = &v
	}
	if cfg.Detection.LookbackDays == 0 {
		cfg.Detection.LookbackDays = 10
	}
	if cfg.Detection.ComparisonDays == 0 {
		cfg.Detection.ComparisonDays = 180
	}
	for _, b := range []**bool{&cfg.Universe.Nasdaq100, &cfg.Universe.SP500, &cfg.Universe.Others} {
		if *b == nil {
			t := true
			*b = &t
		}
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = 4
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 30 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" && cfg.Database.PostgresURL == "" {
		cfg.Database.SQLitePath = "data/tail_sentinel.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if c.Detection.TailRatioThreshold <= 0 {
		return fmt.Errorf("detection.tail_ratio_threshold must be positive")
	}
	if c.Detection.MinBodySize == nil || *c.Detection.MinBodySize < 0 {
		return fmt.Errorf("detection.min_body_size must not be negative")
	}
	if c.Detection.VolumeMultiplier == nil || *c.Detection.VolumeMultiplier < 0 {
		return fmt.Errorf("detection.volume_multiplier must not be negative")
	}
	if c.Detection.LookbackDays < 0 || c.Detection.ComparisonDays < 0 {
		return fmt.Errorf("detection day windows must not be negative")
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be at least 1")
	}
	return nil
}

// TelegramEnabled reports whether Telegram credentials are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		} else {
			log.Warn().Str("key", key).Str("value", v).Msg("ignoring malformed float override")
		}
	}
}

func setFloatPtr(dst **float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = &f
		} else {
			log.Warn().Str("key", key).Str("value", v).Msg("ignoring malformed float override")
		}
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		} else {
			log.Warn().Str("key", key).Str("value", v).Msg("ignoring malformed integer override")
		}
	}
}
