package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NickyBoy89/ifacereport/report"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// Config holds the inputs of a single report run
type Config struct {
	// Path to the Java source file
	Source string `yaml:"source"`
	// Name of the interface to report on, defaults to the file's name
	Interface string `yaml:"interface"`
	// Output format, one of text, json or yaml
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the configuration used when nothing else is specified
func Default() Config {
	return Config{Format: report.FormatText}
}

// Load reads a YAML configuration file on top of the defaults. Unknown keys
// are rejected
func Load(path string) (Config, error) {
	conf := Default()
	contents, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(contents, &conf); err != nil {
		return conf, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return conf, nil
}

// Resolve fills in the values that can be derived from others, and checks
// that the configuration can be run
func (c Config) Resolve() (Config, error) {
	if c.Source == "" {
		return c, errors.New("no source file specified")
	}
	if c.Interface == "" {
		c.Interface = InterfaceFromPath(c.Source)
	}
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if !slices.Contains(report.Formats, c.Format) {
		return c, fmt.Errorf("unknown output format %q, expected one of %v", c.Format, report.Formats)
	}
	return c, nil
}

// InterfaceFromPath returns the name a public type must have to be declared
// in the given file, its base name without the extension
// Ex: src/main/java/VehicleService.java -> VehicleService
func InterfaceFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
