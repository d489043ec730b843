// Package main regenerates the embedded emission-factor CSV from the
// curated YAML seed.
//
// The seed file is the editable source of truth: factors are maintained
// there with provenance comments, and this tool renders the compact CSV the
// engine embeds at build time.
//
// Usage:
//
//	go run ./tools/generate-emission-data [--seed FILE] [--out-dir DIR] [--validate]
//
// Flags:
//
//	--seed      Seed YAML file (default: ./tools/generate-emission-data/seed.yaml)
//	--out-dir   Output directory (default: ./internal/refdata/data)
//	--validate  Check names are unique and factors are plausible
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	outputFileName = "emission_factors.csv"

	// expectedMinRows guards against writing a truncated table.
	expectedMinRows = 50
)

// seedRecord is one entry of the YAML seed.
type seedRecord struct {
	Name             string  `yaml:"name"`
	EconomicActivity string  `yaml:"economic_activity"`
	EmissionValue    float64 `yaml:"emission_value"`
}

type seedFile struct {
	Records []seedRecord `yaml:"records"`
}

func main() {
	seedPath := flag.String("seed", "./tools/generate-emission-data/seed.yaml", "Seed YAML file")
	outDir := flag.String("out-dir", "./internal/refdata/data", "Output directory for the CSV file")
	validate := flag.Bool("validate", true, "Validate seed names and factor ranges")
	flag.Parse()

	if err := run(*seedPath, *outDir, *validate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(seedPath, outDir string, validate bool) error {
	data, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("failed to read seed: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed: %w", err)
	}

	if validate {
		if err := validateSeed(seed.Records); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(outDir, outputFileName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"name", "economic_activity", "emission_value"}); err != nil {
		return err
	}
	for _, rec := range seed.Records {
		row := []string{
			rec.Name,
			rec.EconomicActivity,
			strconv.FormatFloat(rec.EmissionValue, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	fmt.Printf("Wrote %d emission factors to %s\n", len(seed.Records), outPath)
	return nil
}

// validateSeed checks the seed is usable before overwriting the embedded
// table. Out-of-range factors are reported but allowed: the resolver
// repairs them at load time, and a few known-bad source rows are kept to
// exercise that path.
func validateSeed(records []seedRecord) error {
	if len(records) < expectedMinRows {
		return fmt.Errorf("seed has %d records, expected at least %d", len(records), expectedMinRows)
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		name := strings.ToLower(strings.TrimSpace(rec.Name))
		if name == "" {
			return fmt.Errorf("seed record with empty name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate seed record %q", rec.Name)
		}
		seen[name] = true

		if rec.EmissionValue <= 0 || rec.EmissionValue > 50 {
			fmt.Printf("note: %s has out-of-range factor %v (repaired at load time)\n",
				rec.Name, rec.EmissionValue)
		}
	}
	return nil
}
