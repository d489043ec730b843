package main

import (
	"flag"
	"runtime"
)

// Config holds settings for a batch run. Workers bounds the number of
// concurrent assessments.
type Config struct {
	InputPath  string
	OutputPath string
	Workers    int
	LogLevel   string
}

func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("lca-batch", flag.ContinueOnError)

	config := &Config{}
	fs.StringVar(&config.InputPath, "input", "-", "Products JSONL file, - for stdin")
	fs.StringVar(&config.OutputPath, "output", "-", "Results JSONL file, - for stdout")
	fs.IntVar(&config.Workers, "workers", runtime.NumCPU(), "Concurrent assessment workers")
	fs.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	return config, nil
}
