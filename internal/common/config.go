package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Portfolio   PortfolioConfig `toml:"portfolio"`
	Logging     LoggingConfig   `toml:"logging"`
	Analytics   AnalyticsConfig `toml:"analytics"`
}

// PortfolioConfig contains configuration for portfolio data loading
type PortfolioConfig struct {
	Path string `toml:"path"` // Portfolio file path (.json or .yaml)
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// AnalyticsConfig contains the fixed thresholds and watch-lists used by the
// analytics engine. These are deliberately surfaced in config rather than
// buried as module-level globals so tests and deployments can override them.
type AnalyticsConfig struct {
	// HHI thresholds (fractions, 0..1)
	HHIHigh     float64 `toml:"hhi_high"`     // High overall concentration
	HHIElevated float64 `toml:"hhi_elevated"` // Elevated overall concentration
	HHISome     float64 `toml:"hhi_some"`     // Some concentration

	// Single-position weight thresholds (percent)
	TopWeightVeryHigh float64 `toml:"top_weight_very_high"`
	TopWeightHigh     float64 `toml:"top_weight_high"`
	TopWeightModerate float64 `toml:"top_weight_moderate"`

	// Sector-count thresholds
	SectorsLimited int `toml:"sectors_limited"` // At or below: limited diversification
	SectorsFew     int `toml:"sectors_few"`     // At or below: concentrated across few sectors

	// Tickers historically subject to higher volatility
	VolatileTickers []string `toml:"volatile_tickers"`

	// Holding-count floor below which idiosyncratic risk is flagged
	MinHoldings int `toml:"min_holdings"`

	// Risk level breakpoints (score out of 10)
	RiskHighScore     float64 `toml:"risk_high_score"`
	RiskModerateScore float64 `toml:"risk_moderate_score"`
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings should be exposed in folio.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Portfolio: PortfolioConfig{
			Path: "portfolio.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Analytics: AnalyticsConfig{
			HHIHigh:           0.25,
			HHIElevated:       0.15,
			HHISome:           0.10,
			TopWeightVeryHigh: 40.0,
			TopWeightHigh:     25.0,
			TopWeightModerate: 15.0,
			SectorsLimited:    2,
			SectorsFew:        3,
			VolatileTickers:   []string{"TSLA", "NVDA"},
			MinHoldings:       4,
			RiskHighScore:     8.0,
			RiskModerateScore: 5.0,
		},
	}
}

// LoadFromFile loads configuration from a single file path.
// An empty path loads defaults plus environment overrides.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration with priority: defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FOLIO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if path := os.Getenv("FOLIO_PORTFOLIO_PATH"); path != "" {
		config.Portfolio.Path = path
	}

	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if output := os.Getenv("FOLIO_LOG_OUTPUT"); output != "" {
		config.Logging.Output = strings.Split(output, ",")
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, portfolioPath string) {
	if portfolioPath != "" {
		config.Portfolio.Path = portfolioPath
	}
}
