// Package config resolves run settings from defaults, the config file,
// TB_* environment variables and bound command flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/teambuilder-cli/internal/formation"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".teambuilder"
	envPrefix  = "TB"

	KeyGroupSize       = "group_size"
	KeyStrategy        = "strategy"
	KeyScoreFloors     = "score_floors"
	KeyMaxAttempts     = "max_attempts"
	KeyOutputPath      = "output.path"
	KeyOutputFormat    = "output.format"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyMetricsTextfile = "metrics.textfile"

	DefaultGroupSize  = 3
	DefaultOutputPath = "teams_output.csv"
)

const (
	FormatCSV  = "csv"
	FormatTOML = "toml"
	FormatJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	GroupSize   int
	Strategy    formation.Strategy
	ScoreFloors bool
	MaxAttempts int
	Output      Output
	Log         Log
	Metrics     Metrics
}

type Output struct {
	Path   string
	Format string
}

type Log struct {
	Level  string
	Format string
}

type Metrics struct {
	// Textfile is where metrics are written after a run. Empty disables it.
	Textfile string
}

// Load reads the config file (when present) and environment into cfg and
// resolves the result. Flags must already be bound on cfg.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	strategy, err := formation.ParseStrategy(cfg.GetString(KeyStrategy))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c := Config{
		GroupSize:   cfg.GetInt(KeyGroupSize),
		Strategy:    strategy,
		MaxAttempts: cfg.GetInt(KeyMaxAttempts),
		Output: Output{
			Path:   cfg.GetString(KeyOutputPath),
			Format: strings.ToLower(strings.TrimSpace(cfg.GetString(KeyOutputFormat))),
		},
		Log: Log{
			Level:  cfg.GetString(KeyLogLevel),
			Format: cfg.GetString(KeyLogFormat),
		},
		Metrics: Metrics{Textfile: cfg.GetString(KeyMetricsTextfile)},
	}

	// Floors follow the strategy unless set explicitly: balancing runs
	// report floored scores, preference runs report raw sums.
	if cfg.IsSet(KeyScoreFloors) {
		c.ScoreFloors = cfg.GetBool(KeyScoreFloors)
	} else {
		c.ScoreFloors = strategy == formation.StrategySkills
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatFromPath(c.Output.Path)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault(KeyGroupSize, DefaultGroupSize)
	cfg.SetDefault(KeyStrategy, string(formation.StrategyPreferences))
	cfg.SetDefault(KeyMaxAttempts, formation.DefaultMaxAttempts)
	cfg.SetDefault(KeyOutputPath, DefaultOutputPath)
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "text")
}

// FormatFromPath infers the export format from the file extension, falling
// back to CSV.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatCSV
	}
}

func (c Config) Validate() error {
	if c.GroupSize <= 0 {
		return fmt.Errorf("%w: group size must be positive, got %d", ErrInvalidConfig, c.GroupSize)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	switch c.Strategy {
	case formation.StrategyPreferences, formation.StrategySkills:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy)
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	switch c.Output.Format {
	case FormatCSV, FormatTOML, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q (expected csv|toml|json)", ErrInvalidConfig, c.Output.Format)
	}

	return nil
}
