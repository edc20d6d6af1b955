// Package sectors holds the static ticker-to-sector lookup table with
// default benchmark multiples per sector. It is configuration, not
// scoring logic, and can be updated independently of the scorers.
package sectors

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sectors.yaml
var embedded []byte

// Benchmark holds the default valuation multiples for a sector.
type Benchmark struct {
	PE  float64 `yaml:"pe"`
	PBV float64 `yaml:"pbv"`
}

// Table maps tickers onto sectors and sectors onto benchmark multiples.
type Table struct {
	Tickers    map[string]string    `yaml:"tickers"`
	Benchmarks map[string]Benchmark `yaml:"benchmarks"`
}

// Load reads a table from a YAML file, or the embedded default when the
// path is empty.
func Load(path string) (*Table, error) {
	data := embedded
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read sector table: %w", err)
		}
		data = fileData
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse sector table: %w", err)
	}

	return &table, nil
}

// Sector returns the sector for a ticker, or empty when unknown.
func (t *Table) Sector(ticker string) string {
	code := strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(ticker), ".JK"))
	return t.Tickers[code]
}

// Benchmark returns the default multiples for a ticker's sector. The
// zero Benchmark means no default is known.
func (t *Table) Benchmark(ticker string) Benchmark {
	sector := t.Sector(ticker)
	if sector == "" {
		return Benchmark{}
	}
	return t.Benchmarks[sector]
}
