// Package config provides configuration loading for the wythoff CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/wythoff/coxeter"
)

// EnvPrefix is prepended to environment overrides, e.g. WYTHOFF_DIAGRAM_PRESET.
const EnvPrefix = "WYTHOFF"

// Recognised enum values.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendNone   = "none"

	IndexLinear = "linear"
	IndexBucket = "bucket"

	FormatSummary = "summary"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatText    = "text"
)

// DefaultBadgerDir is where the badger backend keeps its database when
// cache.dir is left at its default.
const DefaultBadgerDir = ".wythoff-badger"

// DefaultMatrix is the diagram used when neither a preset nor a matrix is
// configured: [3,4,3], the symmetry group of the 24-cell.
const DefaultMatrix = "1,3,2,2;3,1,4,2;2,4,1,3;2,2,3,1"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the application configuration.
type Config struct {
	// Diagram selects the Coxeter diagram and ring pattern
	Diagram DiagramConfig `mapstructure:"diagram"`

	// Cache configures where flag sets are persisted
	Cache CacheConfig `mapstructure:"cache"`

	// Generator tunes flag enumeration
	Generator GeneratorConfig `mapstructure:"generator"`

	// Extract tunes skeleton extraction
	Extract ExtractConfig `mapstructure:"extract"`

	// Output selects the result format and destination
	Output OutputConfig `mapstructure:"output"`

	// Logging configuration
	Log LogConfig `mapstructure:"log"`
}

// DiagramConfig holds the diagram selection. Preset wins over Matrix.
type DiagramConfig struct {
	Preset string `mapstructure:"preset"`
	Matrix string `mapstructure:"matrix"` // "1,3,2;3,1,3;2,3,1"
	Rings  string `mapstructure:"rings"`  // "1,0,0"; empty rings node 0 only
}

// CacheConfig holds the flag cache configuration.
type CacheConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Lenient bool   `mapstructure:"lenient"`
}

// GeneratorConfig holds flag enumeration settings.
type GeneratorConfig struct {
	Index    string `mapstructure:"index"`
	MaxFlags int    `mapstructure:"max_flags"` // 0 = unlimited
}

// ExtractConfig holds skeleton extraction settings.
type ExtractConfig struct {
	EdgeCap int `mapstructure:"edge_cap"` // -1 = dimension, 0 = unlimited
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"` // empty = stdout
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Diagram: DiagramConfig{
			Matrix: DefaultMatrix,
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Dir:     ".",
		},
		Generator: GeneratorConfig{
			Index: IndexBucket,
		},
		Extract: ExtractConfig{
			EdgeCap: -1,
		},
		Output: OutputConfig{
			Format: FormatSummary,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load loads configuration from file and environment. An empty configPath
// searches ./wythoff.yaml and ~/.wythoff/wythoff.yaml; a missing file is not
// an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".wythoff"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("wythoff")
		v.SetConfigType("yaml")
	}

	// Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Unmarshal
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("diagram.preset", d.Diagram.Preset)
	v.SetDefault("diagram.matrix", d.Diagram.Matrix)
	v.SetDefault("diagram.rings", d.Diagram.Rings)
	v.SetDefault("cache.backend", d.Cache.Backend)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.lenient", d.Cache.Lenient)
	v.SetDefault("generator.index", d.Generator.Index)
	v.SetDefault("generator.max_flags", d.Generator.MaxFlags)
	v.SetDefault("extract.edge_cap", d.Extract.EdgeCap)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks enum values, ranges and that the diagram resolves.
func (c *Config) Validate() error {
	checks := []struct {
		key, value string
		allowed    []string
	}{
		{"cache.backend", c.Cache.Backend, []string{BackendFile, BackendBadger, BackendNone}},
		{"generator.index", c.Generator.Index, []string{IndexLinear, IndexBucket}},
		{"output.format", c.Output.Format, []string{FormatSummary, FormatJSON, FormatYAML}},
		{"log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}},
		{"log.format", c.Log.Format, []string{FormatText, FormatJSON}},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allowed, ch.value) {
			return fmt.Errorf("%w: %s = %q, want one of %s", ErrInvalidConfig, ch.key, ch.value, strings.Join(ch.allowed, "|"))
		}
	}
	if c.Generator.MaxFlags < 0 {
		return fmt.Errorf("%w: generator.max_flags = %d, want >= 0", ErrInvalidConfig, c.Generator.MaxFlags)
	}
	if c.Extract.EdgeCap < -1 {
		return fmt.Errorf("%w: extract.edge_cap = %d, want >= -1", ErrInvalidConfig, c.Extract.EdgeCap)
	}
	if _, _, err := c.ResolveDiagram(); err != nil {
		return err
	}

	return nil
}

// ResolveDiagram returns the configured Coxeter matrix and ring pattern.
func (c *Config) ResolveDiagram() (coxeter.Matrix, []bool, error) {
	var (
		m   coxeter.Matrix
		err error
	)
	if c.Diagram.Preset != "" {
		var p coxeter.PresetInfo
		if p, err = coxeter.Preset(c.Diagram.Preset); err != nil {
			return coxeter.Matrix{}, nil, fmt.Errorf("%w: diagram.preset: %w", ErrInvalidConfig, err)
		}
		m = p.Matrix
	} else if m, err = coxeter.ParseMatrix(c.Diagram.Matrix); err != nil {
		return coxeter.Matrix{}, nil, fmt.Errorf("%w: diagram.matrix: %w", ErrInvalidConfig, err)
	}

	rings, err := ParseRings(c.Diagram.Rings, m.Dim())
	if err != nil {
		return coxeter.Matrix{}, nil, err
	}

	return m, rings, nil
}

// ParseRings parses a comma-separated ring pattern of 1/0 or true/false for
// a diagram with dim nodes. An empty string rings node 0 only; a pattern
// that rings no node is rejected.
func ParseRings(s string, dim int) ([]bool, error) {
	rings := make([]bool, dim)
	s = strings.TrimSpace(s)
	if s == "" {
		if dim > 0 {
			rings[0] = true
		}
		return rings, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != dim {
		return nil, fmt.Errorf("%w: diagram.rings has %d entries, diagram has %d nodes", ErrInvalidConfig, len(parts), dim)
	}
	ringed := false
	for i, p := range parts {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "1", "true", "x":
			rings[i] = true
			ringed = true
		case "0", "false", "o":
		default:
			return nil, fmt.Errorf("%w: diagram.rings entry %d = %q", ErrInvalidConfig, i, p)
		}
	}
	if !ringed {
		return nil, fmt.Errorf("%w: diagram.rings %q rings no node", ErrInvalidConfig, s)
	}

	return rings, nil
}

// Logger builds the slog logger described by c.Log writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("%w: log.level = %q", ErrInvalidConfig, c.Log.Level)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch c.Log.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log.format = %q", ErrInvalidConfig, c.Log.Format)
	}
}
