package config

import (
	"os"
	"strings"
	"time"

	"whey/domain"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Pagination PaginationConfig `json:"pagination"`
	Cache      CacheConfig      `json:"cache"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Auth       AuthConfig       `json:"auth"`
	Logging    LoggingConfig    `json:"logging"`
	Filters    FiltersConfig    `json:"filters"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type PaginationConfig struct {
	ScrollPageSize   int `json:"scroll_page_size" env:"PAGINATION_SCROLL_PAGE_SIZE" default:"24"`
	FullListPageSize int `json:"full_list_page_size" env:"PAGINATION_FULL_LIST_PAGE_SIZE" default:"100"`
}

type CacheConfig struct {
	StaleMaxAge   time.Duration `json:"stale_max_age" env:"CACHE_STALE_MAX_AGE" default:"300s"`
	SweepInterval time.Duration `json:"sweep_interval" env:"CACHE_SWEEP_INTERVAL" default:"60s"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" env:"RATE_LIMIT_RPS" default:"20"`
	Burst             int `json:"burst" env:"RATE_LIMIT_BURST" default:"40"`
}

type AuthConfig struct {
	JWTSecret     string `json:"-" env:"AUTH_JWT_SECRET"`
	JWTSecretFile string `json:"-" env:"AUTH_JWT_SECRET_FILE"`
	LoginURL      string `json:"login_url" env:"AUTH_LOGIN_URL" default:"/auth/login"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

// FiltersConfig carries the absolute bounds for the nutrition range filters.
type FiltersConfig struct {
	ProteinMin  int `json:"protein_min" env:"FILTER_PROTEIN_MIN" default:"0"`
	ProteinMax  int `json:"protein_max" env:"FILTER_PROTEIN_MAX" default:"40"`
	CaloriesMin int `json:"calories_min" env:"FILTER_CALORIES_MIN" default:"0"`
	CaloriesMax int `json:"calories_max" env:"FILTER_CALORIES_MAX" default:"500"`
	CarbsMin    int `json:"carbs_min" env:"FILTER_CARBS_MIN" default:"0"`
	CarbsMax    int `json:"carbs_max" env:"FILTER_CARBS_MAX" default:"50"`
	SugarMin    int `json:"sugar_min" env:"FILTER_SUGAR_MIN" default:"0"`
	SugarMax    int `json:"sugar_max" env:"FILTER_SUGAR_MAX" default:"30"`
}

// Domains converts the configured bounds into the domain representation.
func (f FiltersConfig) Domains() domain.FilterDomains {
	return domain.FilterDomains{
		Protein:  domain.RangeDomain{Min: f.ProteinMin, Max: f.ProteinMax},
		Calories: domain.RangeDomain{Min: f.CaloriesMin, Max: f.CaloriesMax},
		Carbs:    domain.RangeDomain{Min: f.CarbsMin, Max: f.CarbsMax},
		Sugar:    domain.RangeDomain{Min: f.SugarMin, Max: f.SugarMax},
	}
}

// NewConfig loads configuration from environment variables with fallback to
// default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Docker secrets support: a mounted file wins over the env var.
	if config.Auth.JWTSecretFile != "" {
		content, err := os.ReadFile(config.Auth.JWTSecretFile)
		if err == nil {
			config.Auth.JWTSecret = strings.TrimSpace(string(content))
		}
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
