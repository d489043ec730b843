// Command lca-batch assesses a whole catalog in one run. It reads products
// as JSON lines, fans the calculations out over a worker pool and writes
// one result line per product in input order, followed by a logged summary.
//
// Usage:
//
//	lca-batch -input catalog.jsonl -output results.jsonl -workers 8
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecolens/lca-engine/internal/lca"
	"github.com/ecolens/lca-engine/internal/refdata"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "[lca-batch] Error: %v\n", err)
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

	reader := os.Stdin
	if config.InputPath != "-" {
		f, err := os.Open(config.InputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	products, badLines := decodeProducts(reader)
	for _, bad := range badLines {
		logger.Warn().Int("line", bad.line).Err(bad.err).Msg("skipping malformed product line")
	}
	if len(products) == 0 {
		return fmt.Errorf("no valid products in input")
	}

	calculator := lca.NewCalculator(table)
	results := runBatch(calculator, products, config.Workers)

	var writer io.Writer = os.Stdout
	if config.OutputPath != "-" {
		f, err := os.Create(config.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		writer = f
	}

	encoder := json.NewEncoder(writer)
	for _, result := range results {
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}

	summary := summarize(results)
	logger.Info().
		Int("products", summary.Count).
		Int("skipped_lines", len(badLines)).
		Float64("mean_emissions", summary.MeanEmissions).
		Float64("mean_eco_score", summary.MeanEcoScore).
		Float64("min_eco_score", summary.MinEcoScore).
		Float64("max_eco_score", summary.MaxEcoScore).
		Int("recyclable", summary.RecyclableCount).
		Msg("batch complete")

	return nil
}

type badLine struct {
	line int
	err  error
}

// decodeProducts reads JSON-lines input, collecting parse failures per line
// instead of aborting the batch.
func decodeProducts(r io.Reader) ([]lca.ProductInput, []badLine) {
	var products []lca.ProductInput
	var bad []badLine

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var product lca.ProductInput
		if err := json.Unmarshal(line, &product); err != nil {
			bad = append(bad, badLine{line: lineNo, err: err})
			continue
		}
		products = append(products, product)
	}
	if err := scanner.Err(); err != nil {
		bad = append(bad, badLine{line: lineNo, err: err})
	}

	return products, bad
}

// runBatch fans products out over a bounded worker pool. Results come back
// in input order regardless of completion order.
func runBatch(calculator *lca.Calculator, products []lca.ProductInput, workers int) []*lca.LCAResult {
	results := make([]*lca.LCAResult, len(products))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = calculator.Calculate(products[i])
			}
		}()
	}

	for i := range products {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// Summary aggregates a batch for the completion log line.
type Summary struct {
	Count           int
	MeanEmissions   float64
	MeanEcoScore    float64
	MinEcoScore     float64
	MaxEcoScore     float64
	RecyclableCount int
}

func summarize(results []*lca.LCAResult) Summary {
	summary := Summary{Count: len(results)}
	if len(results) == 0 {
		return summary
	}

	summary.MinEcoScore = results[0].EcoScore
	summary.MaxEcoScore = results[0].EcoScore

	for _, r := range results {
		summary.MeanEmissions += r.TotalEmissions
		summary.MeanEcoScore += r.EcoScore
		if r.EcoScore < summary.MinEcoScore {
			summary.MinEcoScore = r.EcoScore
		}
		if r.EcoScore > summary.MaxEcoScore {
			summary.MaxEcoScore = r.EcoScore
		}
		if r.Recyclability.IsRecyclable {
			summary.RecyclableCount++
		}
	}

	summary.MeanEmissions /= float64(len(results))
	summary.MeanEcoScore /= float64(len(results))
	return summary
}
