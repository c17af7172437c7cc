package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone  = "Europe/Moscow"
	configPathEnv    = "NEWSMOOD_CONFIG"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	baseURLEnv       = "NEWSMOOD_BASE_URL"
	mlURLEnv         = "ML_INFERENCE_URL"
	mlAPIKeyEnv      = "ML_API_KEY"
	digestChatIDEnv  = "DIGEST_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Telegram TelegramConfig `yaml:"telegram"`
	Crawler  CrawlerConfig  `yaml:"crawler"`
	ML       MLConfig       `yaml:"ml"`
	Digest   DigestConfig   `yaml:"digest"`
}

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelegramConfig wires the bot credentials.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
}

// CrawlerConfig describes the single target news site.
type CrawlerConfig struct {
	BaseURL           string  `yaml:"baseUrl"`
	UserAgent         string  `yaml:"userAgent"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	TimeoutSeconds    int     `yaml:"timeoutSeconds"`
}

// Timeout resolves the crawler HTTP timeout.
func (c CrawlerConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MLConfig describes the zero-shot inference service.
type MLConfig struct {
	InferenceURL   string `yaml:"inferenceUrl"`
	APIKey         string `yaml:"apiKey"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout resolves the classifier call timeout.
func (m MLConfig) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// DigestConfig defines the optional scheduled daily digest.
type DigestConfig struct {
	Enabled        bool           `yaml:"enabled"`
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	ChatID         int64          `yaml:"chatId"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the digest timezone string to a time.Location.
func (d DigestConfig) Location() *time.Location {
	if d.location != nil {
		return d.location
	}
	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}

	if v := os.Getenv(baseURLEnv); v != "" {
		c.Crawler.BaseURL = v
	}

	if v := os.Getenv(mlURLEnv); v != "" {
		c.ML.InferenceURL = v
	}

	if v := os.Getenv(mlAPIKeyEnv); v != "" {
		c.ML.APIKey = v
	}

	if v := os.Getenv(digestChatIDEnv); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Digest.ChatID = id
		} else {
			log.Printf("config: invalid %s=%q: %v", digestChatIDEnv, v, err)
		}
	}
}

func (c *Config) bindTimezone() {
	tz := c.Digest.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Digest.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Telegram.BotToken != "" {
		base.Telegram.BotToken = override.Telegram.BotToken
	}

	if override.Crawler.BaseURL != "" {
		base.Crawler.BaseURL = override.Crawler.BaseURL
	}
	if override.Crawler.UserAgent != "" {
		base.Crawler.UserAgent = override.Crawler.UserAgent
	}
	if override.Crawler.RequestsPerSecond > 0 {
		base.Crawler.RequestsPerSecond = override.Crawler.RequestsPerSecond
	}
	if override.Crawler.TimeoutSeconds > 0 {
		base.Crawler.TimeoutSeconds = override.Crawler.TimeoutSeconds
	}

	if override.ML.InferenceURL != "" {
		base.ML.InferenceURL = override.ML.InferenceURL
	}
	if override.ML.APIKey != "" {
		base.ML.APIKey = override.ML.APIKey
	}
	if override.ML.TimeoutSeconds > 0 {
		base.ML.TimeoutSeconds = override.ML.TimeoutSeconds
	}

	if override.Digest.Enabled {
		base.Digest.Enabled = true
	}
	if override.Digest.CronExpression != "" {
		base.Digest.CronExpression = override.Digest.CronExpression
	}
	if override.Digest.Timezone != "" {
		base.Digest.Timezone = override.Digest.Timezone
	}
	if override.Digest.ChatID != 0 {
		base.Digest.ChatID = override.Digest.ChatID
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Crawler: CrawlerConfig{
			BaseURL:           "https://lenta.ru",
			UserAgent:         "NewsMoodBot/1.0",
			RequestsPerSecond: 4,
			TimeoutSeconds:    15,
		},
		ML: MLConfig{
			InferenceURL:   "http://localhost:8090/classify",
			TimeoutSeconds: 30,
		},
		Digest: DigestConfig{
			Enabled:        false,
			CronExpression: "0 9 * * *",
			Timezone:       defaultTimezone,
		},
	}
}
