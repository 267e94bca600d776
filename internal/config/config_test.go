package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err, "an explicit config path must exist")
	assert.Nil(t, cfg)

	t.Chdir(t.TempDir())
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	m, rings, err := cfg.ResolveDiagram()
	require.NoError(t, err)
	f4, err := coxeter.Preset("F4")
	require.NoError(t, err)
	assert.Equal(t, f4.Matrix, m)
	assert.Equal(t, []bool{true, false, false, false}, rings)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wythoff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
diagram:
  preset: B3
  rings: "0,0,1"
cache:
  backend: badger
  dir: /tmp/flags
generator:
  index: linear
  max_flags: 100
output:
  format: yaml
log:
  level: debug
`), 0o644))
	t.Setenv("WYTHOFF_OUTPUT_FORMAT", "json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "B3", cfg.Diagram.Preset)
	assert.Equal(t, config.BackendBadger, cfg.Cache.Backend)
	assert.Equal(t, "/tmp/flags", cfg.Cache.Dir)
	assert.Equal(t, config.IndexLinear, cfg.Generator.Index)
	assert.Equal(t, 100, cfg.Generator.MaxFlags)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format, "environment overrides the file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, -1, cfg.Extract.EdgeCap, "unset keys keep their defaults")
	require.NoError(t, cfg.Validate())

	m, rings, err := cfg.ResolveDiagram()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, []bool{false, false, true}, rings)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"backend":   func(c *config.Config) { c.Cache.Backend = "s3" },
		"index":     func(c *config.Config) { c.Generator.Index = "tree" },
		"format":    func(c *config.Config) { c.Output.Format = "xml" },
		"level":     func(c *config.Config) { c.Log.Level = "loud" },
		"logformat": func(c *config.Config) { c.Log.Format = "logfmt" },
		"maxflags":  func(c *config.Config) { c.Generator.MaxFlags = -1 },
		"edgecap":   func(c *config.Config) { c.Extract.EdgeCap = -2 },
		"preset":    func(c *config.Config) { c.Diagram.Preset = "E8" },
		"matrix":    func(c *config.Config) { c.Diagram.Matrix = "1,3;2,1" },
		"rings":     func(c *config.Config) { c.Diagram.Rings = "1,0" },
		"no rings":  func(c *config.Config) { c.Diagram.Rings = "0,0,0,0" },
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestParseRings(t *testing.T) {
	rings, err := config.ParseRings(" 1, o ,true,False", 4)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, rings)

	rings, err = config.ParseRings("", 3)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, rings)

	_, err = config.ParseRings("1,2", 2)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.ParseRings("0, false,o", 3)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Format = config.FormatJSON
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "flags", 24)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"flags":24`)

	cfg.Log.Level = "verbose"
	_, err = cfg.Logger(&buf)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
