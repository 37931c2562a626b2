package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteConfig describes one documentation build. It is constructed once per
// invocation, handed read-only to the generator, and discarded when the
// build finishes. Reload means constructing a new value, never mutating a
// live one.
type SiteConfig struct {
	// Project information.
	Project   string   `yaml:"project"`
	Copyright string   `yaml:"copyright"`
	Authors   []string `yaml:"authors"`
	Release   string   `yaml:"release"`

	// General build configuration. Extension order is meaningful: the
	// external builder loads them in the order given here.
	Extensions      []string `yaml:"extensions"`
	TemplatesPath   []string `yaml:"templates_path"`
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// HTML output options.
	HTMLTheme      string   `yaml:"html_theme"`
	HTMLStaticPath []string `yaml:"html_static_path"`
}

// Default returns the built-in configuration for the uds_protocol
// documentation site. A zero-byte config file loads to exactly this record.
func Default() SiteConfig {
	return SiteConfig{
		Project:   "uds_protocol",
		Copyright: "Luminar Technologies, Inc 2025",
		Authors: []string{
			"Justin Kovacich",
			"Kimberly Kryger",
			"Matthew Beisser",
			"Parth Patel",
			"Zach Heylmun",
		},
		Release:         "0.0.1",
		Extensions:      []string{"sphinx_needs", "sphinxcontrib.plantuml"},
		TemplatesPath:   []string{"_templates"},
		ExcludePatterns: []string{},
		HTMLTheme:       "pydata_sphinx_theme",
		HTMLStaticPath:  []string{"_static"},
	}
}

// Load loads the site configuration from the specified file.
func Load(configPath string) (*SiteConfig, error) {
	// Load .env file if it exists so ${VAR} references resolve.
	loadDotEnv()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var cfg SiteConfig
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	return &cfg, nil
}

// Init creates a new configuration file populated with the default record.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	def := Default()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AuthorLine renders the ordered author list the way the external builder
// displays it: comma-separated, in configured order.
func (c *SiteConfig) AuthorLine() string {
	return strings.Join(c.Authors, ", ")
}

// Equal reports structural equality of two records.
func (c *SiteConfig) Equal(o *SiteConfig) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Project == o.Project &&
		c.Copyright == o.Copyright &&
		slices.Equal(c.Authors, o.Authors) &&
		c.Release == o.Release &&
		slices.Equal(c.Extensions, o.Extensions) &&
		slices.Equal(c.TemplatesPath, o.TemplatesPath) &&
		slices.Equal(c.ExcludePatterns, o.ExcludePatterns) &&
		c.HTMLTheme == o.HTMLTheme &&
		slices.Equal(c.HTMLStaticPath, o.HTMLStaticPath)
}

// Clone returns an independent copy so callers can hold the record without
// sharing slice backing arrays with the loader.
func (c *SiteConfig) Clone() *SiteConfig {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Authors = slices.Clone(c.Authors)
	cp.Extensions = slices.Clone(c.Extensions)
	cp.TemplatesPath = slices.Clone(c.TemplatesPath)
	cp.ExcludePatterns = slices.Clone(c.ExcludePatterns)
	cp.HTMLStaticPath = slices.Clone(c.HTMLStaticPath)
	return &cp
}
