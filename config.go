package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Output formats.
const (
	FormatTinet = "tinet"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Config holds the generator configuration.
type Config struct {
	K             int    `yaml:"k"`
	BandwidthMbps int    `yaml:"bandwidth_mbps"`
	Format        string `yaml:"format"`
	Output        string `yaml:"output"`
	Image         string `yaml:"image"`
	Verbose       bool   `yaml:"verbose"`
	PathsBetween  string `yaml:"paths"`

	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		K:             4,
		BandwidthMbps: 1000,
		Format:        FormatTinet,
		Output:        "",
		Image:         DefaultImage,
		Verbose:       false,
		PathsBetween:  "",
	}
}

// ParseFlags parses command line flags and returns a Config.
// Values from -config are applied first; flags given on the command line win.
func ParseFlags(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("fattree-tinet", flag.ContinueOnError)
	fs.IntVar(&cfg.K, "k", cfg.K, "Fat-tree arity (positive even integer)")
	fs.IntVar(&cfg.BandwidthMbps, "bandwidth", cfg.BandwidthMbps, "Bandwidth of every link in Mbps")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: tinet, yaml or json")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "Output file (default stdout)")
	fs.StringVar(&cfg.Image, "image", cfg.Image, "Container image for tinet nodes")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log build progress to stderr")
	fs.StringVar(&cfg.PathsBetween, "paths", cfg.PathsBetween, "Report equal-cost paths between two entities, e.g. h_1,h_16")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Path to a YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			return Config{}, err
		}
		// Re-apply the command line over the file.
		if err := fs.Parse(args); err != nil {
			return Config{}, err
		}
	}

	return cfg, cfg.Validate()
}

// LoadFile overlays the settings of a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks settings that the fat-tree builder does not check itself.
func (c Config) Validate() error {
	switch c.Format {
	case FormatTinet, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.BandwidthMbps <= 0 {
		return fmt.Errorf("bandwidth must be positive, got %d", c.BandwidthMbps)
	}
	if c.PathsBetween != "" {
		if _, _, err := c.PathEndpoints(); err != nil {
			return err
		}
	}
	return nil
}

// PathEndpoints splits PathsBetween into its two entity names.
func (c Config) PathEndpoints() (src, dst string, err error) {
	parts := strings.Split(c.PathsBetween, ",")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("-paths wants two comma separated entities, got %q", c.PathsBetween)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
