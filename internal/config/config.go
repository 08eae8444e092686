package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. SEABOTS_ARENA_BOTCOUNT.
const EnvPrefix = "SEABOTS"

// ArenaConfig holds simulation settings
type ArenaConfig struct {
	BotCount     int     `json:"botCount" mapstructure:"botCount"`
	WorldRadius  float32 `json:"worldRadius" mapstructure:"worldRadius"`
	TickRate     int     `json:"tickRate" mapstructure:"tickRate"` // ticks per second
	Workers      int     `json:"workers" mapstructure:"workers"`
	Seed         uint64  `json:"seed" mapstructure:"seed"`
	SensorRange  float32 `json:"sensorRange" mapstructure:"sensorRange"`
	Collectibles int     `json:"collectibles" mapstructure:"collectibles"`
	TerrainSeed  uint64  `json:"terrainSeed" mapstructure:"terrainSeed"`
	Islands      int     `json:"islands" mapstructure:"islands"`
}

// TickPeriod is the wall-clock time between ticks.
func (c ArenaConfig) TickPeriod() time.Duration {
	if c.TickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.TickRate)
}

// Config is the complete application configuration
type Config struct {
	ListenAddr string      `json:"listenAddr" mapstructure:"listenAddr"`
	LogLevel   string      `json:"logLevel" mapstructure:"logLevel"`
	Arena      ArenaConfig `json:"arena" mapstructure:"arena"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("listenAddr", ":8080")
	v.SetDefault("logLevel", "info")

	v.SetDefault("arena.botCount", 16)
	v.SetDefault("arena.worldRadius", 1500.0)
	v.SetDefault("arena.tickRate", 10)
	v.SetDefault("arena.workers", 4)
	v.SetDefault("arena.seed", 1)
	v.SetDefault("arena.sensorRange", 800.0)
	v.SetDefault("arena.collectibles", 40)
	v.SetDefault("arena.terrainSeed", 7)
	v.SetDefault("arena.islands", 8)
}

// Load reads configuration from an optional file and the environment.
// An empty path uses defaults and the environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the arena cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Arena.BotCount < 0 {
		errs = append(errs, fmt.Errorf("arena.botCount must not be negative, got %d", c.Arena.BotCount))
	}
	if c.Arena.WorldRadius <= 0 {
		errs = append(errs, fmt.Errorf("arena.worldRadius must be positive, got %g", c.Arena.WorldRadius))
	}
	if c.Arena.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("arena.tickRate must be positive, got %d", c.Arena.TickRate))
	}
	if c.Arena.Workers <= 0 {
		errs = append(errs, fmt.Errorf("arena.workers must be positive, got %d", c.Arena.Workers))
	}
	if c.Arena.SensorRange <= 0 {
		errs = append(errs, fmt.Errorf("arena.sensorRange must be positive, got %g", c.Arena.SensorRange))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
