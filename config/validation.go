package config

import (
	"fmt"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}
	if err := validatePaginationConfig(&config.Pagination); err != nil {
		return fmt.Errorf("pagination config validation failed: %w", err)
	}
	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}
	if err := validateFiltersConfig(&config.Filters); err != nil {
		return fmt.Errorf("filters config validation failed: %w", err)
	}
	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}
	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}
	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}
	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}
	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}
	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}
	return nil
}

func validatePaginationConfig(config *PaginationConfig) error {
	if config.ScrollPageSize < 1 {
		return fmt.Errorf("scroll page size must be at least 1, got %d", config.ScrollPageSize)
	}
	if config.FullListPageSize < config.ScrollPageSize {
		return fmt.Errorf("full list page size must be at least the scroll page size, got %d", config.FullListPageSize)
	}
	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.StaleMaxAge <= 0 {
		return fmt.Errorf("stale max age must be positive, got %v", config.StaleMaxAge)
	}
	if config.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %v", config.SweepInterval)
	}
	return nil
}

func validateFiltersConfig(config *FiltersConfig) error {
	ranges := []struct {
		name     string
		min, max int
	}{
		{"protein", config.ProteinMin, config.ProteinMax},
		{"calories", config.CaloriesMin, config.CaloriesMax},
		{"carbs", config.CarbsMin, config.CarbsMax},
		{"sugar", config.SugarMin, config.SugarMax},
	}
	for _, r := range ranges {
		if r.min < 0 {
			return fmt.Errorf("%s domain minimum must be non-negative, got %d", r.name, r.min)
		}
		if r.max <= r.min {
			return fmt.Errorf("%s domain maximum must exceed its minimum, got [%d, %d]", r.name, r.min, r.max)
		}
	}
	return nil
}
