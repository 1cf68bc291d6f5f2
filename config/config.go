package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Cache    CacheConfig    `json:"cache"`
	Logging  LoggingConfig  `json:"logging"`
	Report   ReportConfig   `json:"report"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9100"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNS" default:"20"`
	MinConnections    int           `json:"min_connections" env:"DB_MIN_CONNS" default:"5"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECT_TIMEOUT" default:"30s"`
}

type CacheConfig struct {
	RedisURL       string        `json:"redis_url" env:"REDIS_URL" default:""`
	TrendCacheTTL  time.Duration `json:"trend_cache_ttl" env:"TREND_CACHE_TTL" default:"5m"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

// ReportConfig carries the tunable bounds of the reporting queries.
type ReportConfig struct {
	DefaultWindowDays  int     `json:"default_window_days" env:"REPORT_DEFAULT_WINDOW_DAYS" default:"30"`
	MaxWindowDays      int     `json:"max_window_days" env:"REPORT_MAX_WINDOW_DAYS" default:"365"`
	DefaultRecordLimit int     `json:"default_record_limit" env:"REPORT_DEFAULT_RECORD_LIMIT" default:"100"`
	MaxRecordLimit     int     `json:"max_record_limit" env:"REPORT_MAX_RECORD_LIMIT" default:"500"`
	ChronicIssueLimit  int     `json:"chronic_issue_limit" env:"REPORT_CHRONIC_ISSUE_LIMIT" default:"10"`
	AlertMinSamples    int     `json:"alert_min_samples" env:"ALERT_MIN_SAMPLES" default:"10"`
	AlertRelThreshold  float64 `json:"alert_rel_threshold" env:"ALERT_REL_THRESHOLD" default:"0.5"`
	AlertAbsThreshold  float64 `json:"alert_abs_threshold" env:"ALERT_ABS_THRESHOLD" default:"0.05"`
	AlertAlpha         float64 `json:"alert_alpha" env:"ALERT_ALPHA" default:"0.05"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
