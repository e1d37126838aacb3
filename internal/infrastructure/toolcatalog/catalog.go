// Package toolcatalog loads per-tool overrides for the report catalog.
// Operators can disable individual tools or replace their descriptions
// without rebuilding the service.
package toolcatalog

import (
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ToolOverride customizes a single tool from the report catalog.
type ToolOverride struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Enabled     bool   `yaml:"enabled"`
}

// Config represents the tool catalog override file.
type Config struct {
	Tools []ToolOverride `yaml:"tools"`
}

// Catalog answers whether a tool is enabled and which description it
// should carry. The zero value enables every tool with its built-in
// description.
type Catalog struct {
	overrides map[string]ToolOverride
}

// Load reads tool overrides from a YAML file. Environment variables are
// expanded in both the path and the file content. A missing file is not
// an error: every tool stays enabled with its built-in description.
func Load(configPath string) (*Catalog, error) {
	configPath = os.ExpandEnv(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", configPath).Msg("No tool catalog overrides found, all tools enabled")
			return &Catalog{}, nil
		}
		return nil, err
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, err
	}

	catalog := &Catalog{overrides: make(map[string]ToolOverride, len(config.Tools))}
	for _, t := range config.Tools {
		catalog.overrides[t.Name] = t
	}

	log.Info().Str("path", configPath).Int("overrides", len(config.Tools)).Msg("Loaded tool catalog overrides")
	return catalog, nil
}

// Enabled reports whether the named tool should be registered. Tools
// without an override entry are enabled.
func (c *Catalog) Enabled(name string) bool {
	if c == nil || c.overrides == nil {
		return true
	}
	override, ok := c.overrides[name]
	if !ok {
		return true
	}
	return override.Enabled
}

// Description returns the override description for the named tool, or
// fallback when no override provides one.
func (c *Catalog) Description(name, fallback string) string {
	if c == nil || c.overrides == nil {
		return fallback
	}
	override, ok := c.overrides[name]
	if !ok || override.Description == "" {
		return fallback
	}
	return override.Description
}
