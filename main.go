package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile  string
		unit        string
		precisionUM float64
		arcSegments int
		outputScale float64
		flipY       bool
		overlay     string
	)

	cmd := &cobra.Command{
		Use:          "dxfmend INPUT OUTPUT",
		Short:        "Repair DXF drawings whose segment endpoints do not meet exactly",
		Long: `dxfmend flattens arcs and polylines into straight segments, snaps
near-duplicate endpoints together within a tolerance, deduplicates the
segments, and walks the resulting graph to recover closed shapes and open
chains. The cleaned geometry is written as a new DXF file.`,
		Version:      Version,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := AppOptions{
				Input:      args[0],
				Output:     args[1],
				ConfigFile: configFile,
			}

			// Only flags the user actually set override the config file.
			flags := cmd.Flags()
			if flags.Changed("unit") {
				opts.Unit = &unit
			}
			if flags.Changed("precision-um") {
				opts.PrecisionUM = &precisionUM
			}
			if flags.Changed("arc-segments") {
				opts.ArcSegments = &arcSegments
			}
			if flags.Changed("scale") {
				opts.OutputScale = &outputScale
			}
			if flags.Changed("flip-y") {
				opts.FlipY = &flipY
			}
			if flags.Changed("overlay") {
				opts.Overlay = &overlay
			}

			return NewApp().Run(opts)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to YAML configuration file")
	cmd.Flags().StringVar(&unit, "unit", "mm", "Drawing unit: mm or um")
	cmd.Flags().Float64Var(&precisionUM, "precision-um", 0.1, "Snap precision in micrometers")
	cmd.Flags().IntVar(&arcSegments, "arc-segments", 100, "Straight segments per arc or circle")
	cmd.Flags().Float64Var(&outputScale, "scale", 1.0, "Scale factor applied to output coordinates")
	cmd.Flags().BoolVar(&flipY, "flip-y", false, "Mirror output vertically")
	cmd.Flags().StringVar(&overlay, "overlay", "", "Write a diagnostic overlay image (.svg or .png)")

	return cmd
}
