package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ecolens/lca-engine/internal/lca"
)

// InputDefaults fill product fields the caller left empty.
type InputDefaults struct {
	Weight         string `yaml:"weight"`
	PackagingType  string `yaml:"packaging_type"`
	UsageFrequency string `yaml:"usage_frequency"`
}

// FileConfig is the optional YAML configuration file.
type FileConfig struct {
	LogLevel string        `yaml:"log_level"`
	Indent   bool          `yaml:"indent"`
	Defaults InputDefaults `yaml:"defaults"`
}

// Config holds the resolved settings for one invocation. Flags override the
// configuration file.
type Config struct {
	InputPath  string
	OutputPath string
	LogLevel   string
	Indent     bool
	Defaults   InputDefaults
}

func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("lca-calc", flag.ContinueOnError)

	configPath := fs.String("config", "", "Path to YAML configuration file")
	input := fs.String("input", "-", "Product JSON file, - for stdin")
	output := fs.String("output", "-", "Result JSON file, - for stdout")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	indent := fs.Bool("indent", false, "Indent the JSON output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	config := &Config{
		InputPath:  *input,
		OutputPath: *output,
		LogLevel:   "info",
	}

	if *configPath != "" {
		fileCfg, err := loadFileConfig(*configPath)
		if err != nil {
			return nil, err
		}
		if fileCfg.LogLevel != "" {
			config.LogLevel = fileCfg.LogLevel
		}
		config.Indent = fileCfg.Indent
		config.Defaults = fileCfg.Defaults
	}

	if *logLevel != "" {
		config.LogLevel = *logLevel
	}
	if *indent {
		config.Indent = true
	}

	return config, nil
}

func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults fills empty product fields from the configured defaults.
func applyDefaults(input *lca.ProductInput, defaults InputDefaults) {
	if strings.TrimSpace(input.Weight) == "" && defaults.Weight != "" {
		input.Weight = defaults.Weight
	}
	if strings.TrimSpace(input.PackagingType) == "" && defaults.PackagingType != "" {
		input.PackagingType = defaults.PackagingType
	}
	if strings.TrimSpace(input.UsageFrequency) == "" && defaults.UsageFrequency != "" {
		input.UsageFrequency = defaults.UsageFrequency
	}
}
