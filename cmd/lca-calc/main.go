// Command lca-calc runs a single cradle-to-grave assessment. It reads one
// product description as JSON, runs the calculation and writes the result
// as JSON.
//
// Usage:
//
//	lca-calc -input product.json -output result.json -indent
//	cat product.json | lca-calc
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecolens/lca-engine/internal/lca"
	"github.com/ecolens/lca-engine/internal/refdata"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "[lca-calc] Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := parseConfig(args)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}

	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Str("trace_id", uuid.NewString()).
		Logger()
	lca.SetLogger(logger)

	table, err := refdata.NewClient(logger)
	if err != nil {
		return fmt.Errorf("failed to load emission factor table: %w", err)
	}
	logger.Debug().Int("records", table.Len()).Msg("emission factor table loaded")

	input, err := readInput(config.InputPath)
	if err != nil {
		return err
	}
	applyDefaults(input, config.Defaults)

	calculator := lca.NewCalculator(table)
	result := calculator.Calculate(*input)

	logger.Info().
		Str("product", input.Name).
		Str("region", string(result.Region)).
		Float64("total_emissions", result.TotalEmissions).
		Float64("eco_score", result.EcoScore).
		Msg("assessment complete")

	return writeResult(config.OutputPath, result, config.Indent)
}

func readInput(path string) (*lca.ProductInput, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var input lca.ProductInput
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to decode product JSON: %w", err)
	}
	return &input, nil
}

func writeResult(path string, result *lca.LCAResult, indent bool) error {
	var writer io.Writer
	if path == "-" {
		writer = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		writer = f
	}

	encoder := json.NewEncoder(writer)
	if indent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
