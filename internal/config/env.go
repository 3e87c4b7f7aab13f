package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// CLISettings are the command-line defaults read from the environment. Flags passed on
// the command line take precedence.
type CLISettings struct {
	LogLevel string `env:"FORECAST_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"FORECAST_LOG_JSON"  envDefault:"false"`
	Format   string `env:"FORECAST_FORMAT"    envDefault:"console"`
	Months   int    `env:"FORECAST_MONTHS"    envDefault:"12"`
	Lenient  bool   `env:"FORECAST_LENIENT"   envDefault:"false"`
}

// LoadCLISettings parses CLISettings from the process environment.
func LoadCLISettings() (CLISettings, error) {
	var s CLISettings
	if err := env.Parse(&s); err != nil {
		return CLISettings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Months < 0 {
		return CLISettings{}, fmt.Errorf("parse env: FORECAST_MONTHS must not be negative, got %d", s.Months)
	}
	return s, nil
}
