// Package config loads CLI configuration for tablefile.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/leapstack-labs/tablefile/pkg/table"
)

// Config holds all CLI configuration options.
type Config struct {
	Delimiter string `koanf:"delimiter"`
	NoHeader  bool   `koanf:"no_header"`
	OutDir    string `koanf:"out_dir"`
	Output    string `koanf:"output"`
	Verbose   bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDelimiter = ","
	DefaultOutput    = "table"
)

// CSVOptions converts the configured CSV dialect into table options.
func (c *Config) CSVOptions() (*table.CSVOptions, error) {
	opts := &table.CSVOptions{NoHeader: c.NoHeader}
	if c.Delimiter != "" {
		if utf8.RuneCountInString(c.Delimiter) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
		}
		r, _ := utf8.DecodeRuneInString(c.Delimiter)
		opts.Delimiter = r
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
