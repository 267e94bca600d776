package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wythoff/internal/config"
	"github.com/katalvlaran/wythoff/internal/pipeline"
)

// writeResult renders res in the given output format.
func writeResult(w io.Writer, format string, res *pipeline.Result) error {
	switch format {
	case config.FormatJSON:
		return outputJSON(w, res.Skeleton.Export())
	case config.FormatYAML:
		return outputYAML(w, res.Skeleton.Export())
	case config.FormatSummary, "":
		return outputSummary(w, res)
	default:
		return fmt.Errorf("%w: output.format = %q", config.ErrInvalidConfig, format)
	}
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func outputSummary(w io.Writer, res *pipeline.Result) error {
	source := "generated"
	if res.FromCache {
		source = "cache"
	}
	s := res.Skeleton

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Diagram:\t%s\n", res.Matrix)
	fmt.Fprintf(tw, "Cache name:\t%s\n", res.CacheName)
	fmt.Fprintf(tw, "Flags:\t%d (%s, %s)\n", len(res.Flags), source, res.Elapsed.Round(time.Microsecond))
	fmt.Fprintf(tw, "Rings:\t%s\n", formatRings(res.Rings))
	fmt.Fprintf(tw, "Vertices:\t%d\n", len(s.Vertices))
	fmt.Fprintf(tw, "Edges:\t%d\n", len(s.Edges))
	fmt.Fprintf(tw, "Connected:\t%t\n", s.IsConnected())
	return tw.Flush()
}

func formatRings(rings []bool) string {
	parts := make([]string, len(rings))
	for i, r := range rings {
		parts[i] = "0"
		if r {
			parts[i] = "1"
		}
	}
	return strings.Join(parts, ",")
}
