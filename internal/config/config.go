// Package config loads tracker configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete tracker configuration.
type Config struct {
	Tracker   TrackerSettings `hcl:"tracker,block"`
	Histories []HistoryDir    `hcl:"history,block"`
}

// TrackerSettings contains tracker-level configuration.
type TrackerSettings struct {
	Hero     string `hcl:"hero,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// HistoryDir is a named directory of hand-history exports to scan.
type HistoryDir struct {
	Name string `hcl:"name,label"`
	Dir  string `hcl:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Tracker: TrackerSettings{
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Tracker.LogLevel == "" {
		config.Tracker.LogLevel = "info"
	}

	return &config, nil
}

// Dirs returns the configured history directories in declaration order.
func (c *Config) Dirs() []string {
	dirs := make([]string, 0, len(c.Histories))
	for _, h := range c.Histories {
		dirs = append(dirs, h.Dir)
	}
	return dirs
}
