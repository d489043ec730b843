package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// CSV column indices for the emission-factor table.
const (
	colName             = 0 // name
	colEconomicActivity = 1 // economic_activity
	colEmissionValue    = 2 // emission_value (kg CO2e per kg)
)

// Table provides read-only lookups against the emission-factor table.
type Table interface {
	// LookupExact returns the record whose name matches case-insensitively.
	// Returns (record, true) if found, (zero, false) if not found.
	LookupExact(name string) (Record, bool)

	// Names returns every table name in source order. The order is stable
	// across calls so similarity scans stay deterministic.
	Names() []string

	// FindByActivity returns the first record whose economic-activity text
	// contains the given word (case-insensitive).
	FindByActivity(word string) (Record, bool)

	// Len reports the number of loaded records.
	Len() int
}

// Client implements Table over the embedded CSV data.
type Client struct {
	logger zerolog.Logger

	// Thread-safe initialization
	once sync.Once
	err  error

	byName  map[string]Record
	names   []string
	records []Record
}

// NewClient parses the embedded emission-factor CSV and returns a ready
// Client. A table that cannot be parsed or contains no usable rows aborts
// initialization with a non-nil error; serving calculations from a partial
// table is worse than not starting.
func NewClient(logger zerolog.Logger) (*Client, error) {
	c := &Client{logger: logger}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init parses the embedded reference data exactly once.
func (c *Client) init() error {
	c.once.Do(func() {
		c.byName = make(map[string]Record)

		reader := csv.NewReader(strings.NewReader(rawEmissionFactorsCSV))

		// Skip header row
		if _, err := reader.Read(); err != nil {
			c.err = fmt.Errorf("failed to read emission factor header: %w", err)
			return
		}

		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				c.logger.Warn().Err(err).Msg("skipping malformed emission factor row")
				continue
			}
			if len(record) <= colEmissionValue {
				continue
			}

			name := strings.TrimSpace(record[colName])
			activity := strings.TrimSpace(record[colEconomicActivity])
			if name == "" {
				continue
			}

			value, err := strconv.ParseFloat(strings.TrimSpace(record[colEmissionValue]), 64)
			if err != nil {
				c.logger.Warn().
					Str("name", name).
					Str("value", record[colEmissionValue]).
					Msg("skipping emission factor row with non-numeric value")
				continue
			}

			rec := Record{
				Name:             name,
				EconomicActivity: activity,
				EmissionValue:    value,
			}

			key := strings.ToLower(name)
			if _, exists := c.byName[key]; exists {
				// First row wins for duplicate names; the source data
				// occasionally repeats an ingredient across activities.
				continue
			}
			c.byName[key] = rec
			c.names = append(c.names, name)
			c.records = append(c.records, rec)
		}

		if len(c.records) == 0 {
			c.err = fmt.Errorf("emission factor table is empty")
		}
	})
	return c.err
}

// LookupExact returns the record whose name matches case-insensitively.
func (c *Client) LookupExact(name string) (Record, bool) {
	if err := c.init(); err != nil {
		return Record{}, false
	}
	rec, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// Names returns every table name in source order.
func (c *Client) Names() []string {
	if err := c.init(); err != nil {
		return nil
	}
	return c.names
}

// FindByActivity returns the first record whose economic-activity text
// contains the given word (case-insensitive). Rows are scanned in source
// order so repeated calls return the same record.
func (c *Client) FindByActivity(word string) (Record, bool) {
	if err := c.init(); err != nil {
		return Record{}, false
	}
	needle := strings.ToLower(strings.TrimSpace(word))
	if needle == "" {
		return Record{}, false
	}
	for _, rec := range c.records {
		if strings.Contains(strings.ToLower(rec.EconomicActivity), needle) {
			return rec, true
		}
	}
	return Record{}, false
}

// Len reports the number of loaded records.
func (c *Client) Len() int {
	if err := c.init(); err != nil {
		return 0
	}
	return len(c.records)
}
