package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port                 string   `mapstructure:"PORT"`
	Env                  string   `mapstructure:"ENV"`
	SessionSecret        string   `mapstructure:"SESSION_SECRET"`
	SessionTTLMinutes    int      `mapstructure:"SESSION_TTL_MINUTES"`
	CORSOrigins          []string `mapstructure:"CORS_ORIGINS"`
	SimulationProgressMS int      `mapstructure:"SIMULATION_PROGRESS_MS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("SESSION_TTL_MINUTES", 480)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SIMULATION_PROGRESS_MS", 3000)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("SESSION_TTL_MINUTES")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("SIMULATION_PROGRESS_MS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. In production the
// session secret must be provided; in development a random one is generated at
// startup so the placeholder login gate still issues verifiable tokens.
func (c *Config) Validate() error {
	if c.IsProduction() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required in production")
	}
	if c.SessionTTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", c.SessionTTLMinutes)
	}
	if c.SimulationProgressMS < 0 {
		return fmt.Errorf("SIMULATION_PROGRESS_MS must not be negative, got %d", c.SimulationProgressMS)
	}
	return nil
}
