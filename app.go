package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dxfmend/dxf"
	"dxfmend/geom"
)

// AppOptions carries the CLI surface. Pointer fields are optional overrides:
// nil means "keep the config file / default value".
type AppOptions struct {
	Input      string
	Output     string
	ConfigFile string

	Unit        *string
	PrecisionUM *float64
	ArcSegments *int
	OutputScale *float64
	FlipY       *bool
	Overlay     *string
}

// App encapsulates one repair run.
type App struct {
	Config *geom.Config
}

// NewApp creates a new App instance
func NewApp() *App {
	return &App{}
}

// Run executes the repair pipeline end to end: load configuration, read the
// input drawing, reconstruct its topology, apply the output transform, write
// the result, and optionally render the diagnostic overlay.
func (a *App) Run(opts AppOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	a.Config = cfg

	log.Printf("[CONFIG] tolerance %g %s (%g um), arc segments %d, scale %g, flip Y %v",
		cfg.Tolerance(), cfg.Unit, cfg.PrecisionUM, cfg.ArcSegments, cfg.OutputScale, cfg.FlipY)

	log.Printf("[LOAD] reading %s", opts.Input)
	prims, err := dxf.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.Input, err)
	}
	log.Printf("[LOAD] %d primitives", len(prims))

	res := geom.Run(prims, cfg)

	m := geom.OutputTransform(cfg.OutputScale, cfg.FlipY)
	closed := geom.TransformPaths(res.Closed, m)
	open := geom.TransformPaths(res.Open, m)

	if err := dxf.WriteFile(opts.Output, closed, open); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	log.Printf("[WRITE] saved cleaned drawing to %s", opts.Output)

	if cfg.Overlay != "" {
		if err := writeOverlay(cfg.Overlay, res); err != nil {
			return fmt.Errorf("rendering overlay %s: %w", cfg.Overlay, err)
		}
		log.Printf("[OVERLAY] saved reconstruction overlay to %s", cfg.Overlay)
	}
	return nil
}

// resolveConfig loads the config file if one was given, then layers the CLI
// overrides on top and validates the result.
func resolveConfig(opts AppOptions) (*geom.Config, error) {
	cfg := geom.DefaultConfig()
	if opts.ConfigFile != "" {
		loaded, err := geom.LoadConfig(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Unit != nil {
		cfg.Unit = *opts.Unit
	}
	if opts.PrecisionUM != nil {
		cfg.PrecisionUM = *opts.PrecisionUM
	}
	if opts.ArcSegments != nil {
		cfg.ArcSegments = *opts.ArcSegments
	}
	if opts.OutputScale != nil {
		cfg.OutputScale = *opts.OutputScale
	}
	if opts.FlipY != nil {
		cfg.FlipY = *opts.FlipY
	}
	if opts.Overlay != nil {
		cfg.Overlay = *opts.Overlay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeOverlay renders the diagnostic overlay, picking SVG or PNG by file
// extension (anything but .svg rasterizes).
func writeOverlay(path string, res *geom.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := geom.NewOverlayRenderer(res)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		err = r.RenderToSVG(f)
	} else {
		err = r.RenderToPNG(f)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
