package cli

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wythoff/coxeter"
)

func (c *CLI) newNameCmd() *cobra.Command {
	var preset, matrix string
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print the flag cache name of a diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("preset") {
				c.cfg.Diagram.Preset = preset
			}
			if cmd.Flags().Changed("matrix") {
				c.cfg.Diagram.Matrix = matrix
				if !cmd.Flags().Changed("preset") {
					c.cfg.Diagram.Preset = ""
				}
			}
			m, _, err := c.cfg.ResolveDiagram()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.CacheName())
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "named diagram")
	cmd.Flags().StringVar(&matrix, "matrix", "", "Coxeter matrix, rows separated by ';'")
	return cmd
}

func (c *CLI) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in Coxeter diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIM\tORDER\tMATRIX")
			for _, p := range coxeter.Presets() {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", p.Name, p.Matrix.Dim(), p.Order, p.Matrix)
			}
			return w.Flush()
		},
	}
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "wythoff")
			fmt.Fprintf(out, "  Version:    %s\n", Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
