// Package config loads run settings for the cyclespace command from defaults,
// an optional YAML file, .env files and CYCLESPACE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CYCLESPACE_GRAPH_SIZE.
const EnvPrefix = "CYCLESPACE"

// Output formats accepted by Output.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds all configuration settings
type Config struct {
	// Graph synthesis settings
	Graph GraphConfig `mapstructure:"graph" yaml:"graph" json:"graph"`

	// Closure enumeration settings
	Enumerate EnumerateConfig `mapstructure:"enumerate" yaml:"enumerate" json:"enumerate"`

	// Report settings
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
}

// GraphConfig sizes and seeds the synthesized graph.
type GraphConfig struct {
	Size      int     `mapstructure:"size" yaml:"size" json:"size"`
	Density   float64 `mapstructure:"density" yaml:"density" json:"density"`
	Seed      int64   `mapstructure:"seed" yaml:"seed" json:"seed"` // 0 = pick one at run time
	MinWeight int64   `mapstructure:"min_weight" yaml:"min_weight" json:"min_weight"`
	MaxWeight int64   `mapstructure:"max_weight" yaml:"max_weight" json:"max_weight"`
}

// EnumerateConfig bounds the closure enumeration.
type EnumerateConfig struct {
	Workers   int `mapstructure:"workers" yaml:"workers" json:"workers"`
	MaxCycles int `mapstructure:"max_cycles" yaml:"max_cycles" json:"max_cycles"` // 0 = unbounded
}

// OutputConfig selects what the report contains and how it is written.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"` // text, yaml, json
	Walks  bool   `mapstructure:"walks" yaml:"walks" json:"walks"`    // recover closed walks for derived cycles
	Matrix bool   `mapstructure:"matrix" yaml:"matrix" json:"matrix"` // print the adjacency table
}

// ErrInvalidConfig is returned by Validate; the message lists every problem.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default returns default configuration
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			Size:      8,
			Density:   0.1,
			MinWeight: 1,
			MaxWeight: 10,
		},
		Enumerate: EnumerateConfig{
			Workers:   1,
			MaxCycles: 100000,
		},
		Output: OutputConfig{
			Format: FormatText,
			Matrix: true,
		},
	}
}

// Load loads configuration from file. An empty path searches ./cyclespace.yaml
// and ~/.cyclespace/cyclespace.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cyclespace")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".cyclespace"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every leaf key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("graph.size", cfg.Graph.Size)
	v.SetDefault("graph.density", cfg.Graph.Density)
	v.SetDefault("graph.seed", cfg.Graph.Seed)
	v.SetDefault("graph.min_weight", cfg.Graph.MinWeight)
	v.SetDefault("graph.max_weight", cfg.Graph.MaxWeight)
	v.SetDefault("enumerate.workers", cfg.Enumerate.Workers)
	v.SetDefault("enumerate.max_cycles", cfg.Enumerate.MaxCycles)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.walks", cfg.Output.Walks)
	v.SetDefault("output.matrix", cfg.Output.Matrix)
}

// loadEnvFiles loads .env files in order of precedence. godotenv never
// overrides a variable that is already set, so the first file wins.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Graph.Size < 3 {
		add("graph.size must be ≥ 3, got %d", c.Graph.Size)
	}
	if !(c.Graph.Density > 0 && c.Graph.Density <= 1) {
		add("graph.density must be in (0,1], got %v", c.Graph.Density)
	}
	if c.Graph.MinWeight <= 0 || c.Graph.MaxWeight < c.Graph.MinWeight {
		add("graph weights need 0 < min_weight ≤ max_weight, got %d..%d", c.Graph.MinWeight, c.Graph.MaxWeight)
	}
	if c.Enumerate.Workers < 1 {
		add("enumerate.workers must be ≥ 1, got %d", c.Enumerate.Workers)
	}
	if c.Enumerate.MaxCycles < 0 {
		add("enumerate.max_cycles must be ≥ 0, got %d", c.Enumerate.MaxCycles)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		add("output.format must be one of text, yaml, json, got %q", c.Output.Format)
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(problems, "\n  - "))
}
