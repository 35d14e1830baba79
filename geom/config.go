package geom

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default configuration values, matching the tool's historical behavior.
const (
	DefaultUnit        = "mm"
	DefaultPrecisionUM = 0.1
	DefaultArcSegments = 100
)

// unitConversion maps a drawing unit to its millimeter factor.
var unitConversion = map[string]float64{
	"mm": 1.0,
	"um": 0.001,
}

// Config carries all pipeline settings. It is passed explicitly into each
// stage; nothing reads module-level state.
type Config struct {
	Unit        string  `yaml:"unit"`         // drawing unit: "mm" or "um"
	PrecisionUM float64 `yaml:"precision_um"` // snap precision in micrometers
	ArcSegments int     `yaml:"arc_segments"` // straight segments per arc/circle
	OutputScale float64 `yaml:"output_scale"` // applied to output coordinates only
	FlipY       bool    `yaml:"flip_y"`       // mirror output about the X axis
	Overlay     string  `yaml:"overlay"`      // overlay image path; empty disables
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Unit:        DefaultUnit,
		PrecisionUM: DefaultPrecisionUM,
		ArcSegments: DefaultArcSegments,
		OutputScale: 1.0,
	}
}

// LoadConfig loads configuration from a YAML file. Omitted fields keep their
// defaults; the result is validated before being returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the configuration to a YAML file.
func SaveConfig(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks field ranges and the unit name.
func (c *Config) Validate() error {
	if _, ok := unitConversion[c.Unit]; !ok {
		return fmt.Errorf("unknown unit %q (want mm or um)", c.Unit)
	}
	if c.PrecisionUM < 0 {
		return fmt.Errorf("precision_um must be nonnegative, got %g", c.PrecisionUM)
	}
	if c.ArcSegments <= 0 {
		return fmt.Errorf("arc_segments must be positive, got %d", c.ArcSegments)
	}
	if c.OutputScale == 0 {
		return fmt.Errorf("output_scale must be nonzero")
	}
	return nil
}

// Tolerance derives the snap tolerance in drawing units from the configured
// precision: precision_um * unit factor / 1000. The same tolerance closes
// loops during reconstruction.
func (c *Config) Tolerance() float64 {
	return c.PrecisionUM * unitConversion[c.Unit] / 1000
}
