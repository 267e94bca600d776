package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wythoff/internal/config"
	"github.com/katalvlaran/wythoff/internal/pipeline"
)

// generateFlags are the per-command overrides of the loaded configuration.
type generateFlags struct {
	preset       string
	matrix       string
	rings        string
	cacheBackend string
	cacheDir     string
	noCache      bool
	lenient      bool
	index        string
	maxFlags     int
	edgeCap      int
	format       string
	out          string
}

func (c *CLI) newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Enumerate flags and build the polytope skeleton",
		Long: `Enumerate every flag of the configured Coxeter diagram (reusing the flag
cache when possible) and print the skeleton of the polytope whose ringed
nodes are given by --rings.

Examples:
  wythoff generate --preset H3 --rings 1,0,0 --format json
  wythoff generate --matrix "1,4,2;4,1,3;2,3,1" --rings 0,0,1 --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyGenerateFlags(cmd, &f)
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout())
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.preset, "preset", "", "named diagram, see 'wythoff presets'")
	fl.StringVar(&f.matrix, "matrix", "", `Coxeter matrix, rows separated by ';' (e.g. "1,3,2;3,1,3;2,3,1")`)
	fl.StringVar(&f.rings, "rings", "", "ringed nodes, e.g. 1,0,0 (default: first node only)")
	fl.StringVar(&f.cacheBackend, "cache-backend", "", "flag cache: file|badger|none")
	fl.StringVar(&f.cacheDir, "cache-dir", "", "cache directory")
	fl.BoolVar(&f.noCache, "no-cache", false, "neither read nor write the flag cache")
	fl.BoolVar(&f.lenient, "lenient-cache", false, "skip malformed values when reading the cache")
	fl.StringVar(&f.index, "index", "", "discovered-set index: linear|bucket")
	fl.IntVar(&f.maxFlags, "max-flags", 0, "abort after this many flags (0: unlimited)")
	fl.IntVar(&f.edgeCap, "edge-cap", 0, "adjacent flags examined per flag (-1: dimension, 0: unlimited)")
	fl.StringVar(&f.format, "format", "", "output format: summary|json|yaml")
	fl.StringVarP(&f.out, "out", "o", "", "write output to file instead of stdout")

	return cmd
}

// applyGenerateFlags copies explicitly set flags over the configuration.
func (c *CLI) applyGenerateFlags(cmd *cobra.Command, f *generateFlags) {
	changed := cmd.Flags().Changed
	if changed("preset") {
		c.cfg.Diagram.Preset = f.preset
	}
	if changed("matrix") {
		c.cfg.Diagram.Matrix = f.matrix
		if !changed("preset") {
			c.cfg.Diagram.Preset = ""
		}
	}
	if changed("rings") {
		c.cfg.Diagram.Rings = f.rings
	}
	if changed("cache-backend") {
		c.cfg.Cache.Backend = f.cacheBackend
	}
	if changed("cache-dir") {
		c.cfg.Cache.Dir = f.cacheDir
	}
	if f.noCache {
		c.cfg.Cache.Backend = config.BackendNone
	}
	if changed("lenient-cache") {
		c.cfg.Cache.Lenient = f.lenient
	}
	if changed("index") {
		c.cfg.Generator.Index = f.index
	}
	if changed("max-flags") {
		c.cfg.Generator.MaxFlags = f.maxFlags
	}
	if changed("edge-cap") {
		c.cfg.Extract.EdgeCap = f.edgeCap
	}
	if changed("format") {
		c.cfg.Output.Format = f.format
	}
	if changed("out") {
		c.cfg.Output.Path = f.out
	}
}

func (c *CLI) runGenerate(ctx context.Context, stdout io.Writer) (err error) {
	if err = c.cfg.Validate(); err != nil {
		return err
	}
	m, rings, err := c.cfg.ResolveDiagram()
	if err != nil {
		return err
	}

	store, err := pipeline.OpenStore(c.cfg.Cache, c.logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			if cerr := store.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	p := pipeline.New(
		pipeline.WithLogger(c.logger),
		pipeline.WithStore(store),
		pipeline.WithIndex(c.cfg.Generator.Index),
		pipeline.WithMaxFlags(c.cfg.Generator.MaxFlags),
		pipeline.WithEdgeCap(c.cfg.Extract.EdgeCap),
	)
	res, err := p.Run(ctx, m, rings)
	if err != nil {
		return err
	}

	w := stdout
	if c.cfg.Output.Path != "" {
		file, ferr := os.Create(c.cfg.Output.Path)
		if ferr != nil {
			return fmt.Errorf("create output file: %w", ferr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = file
	}

	return writeResult(w, c.cfg.Output.Format, res)
}
