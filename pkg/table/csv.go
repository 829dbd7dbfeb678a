package table

// csv.go - CSV text conversion

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"
)

// CSVOptions describes the CSV dialect used for formatting and parsing.
// The zero value is the default dialect: comma delimiter, a header row,
// RFC 4180 quoting, bare "\n" line terminator.
type CSVOptions struct {
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
	// NoHeader omits the header row when formatting, and treats the
	// first record as data when parsing (columns are then named c1..cN).
	NoHeader bool
	// Comment, if non-zero, causes parse to skip lines starting with
	// this rune. Ignored when formatting.
	Comment rune
	// LazyQuotes allows a quote in an unquoted field and a non-doubled
	// quote in a quoted field when parsing.
	LazyQuotes bool
	// TrimLeadingSpace strips leading white space in a field when parsing.
	TrimLeadingSpace bool
	// UseCRLF terminates formatted records with \r\n instead of \n.
	UseCRLF bool
}

// Validate reports whether the dialect is usable. The delimiter must be a
// valid rune that can delimit fields; quote, CR and LF cannot.
func (o *CSVOptions) Validate() error {
	if err := validDelim("delimiter", o.Delimiter); err != nil {
		return err
	}
	return validDelim("comment", o.Comment)
}

func validDelim(name string, r rune) error {
	if r == 0 {
		return nil
	}
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return fmt.Errorf("invalid CSV %s %q", name, r)
	}
	return nil
}

func (o *CSVOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// FormatCSV renders the table as CSV text under the given dialect.
// A nil opts means the default dialect.
func (t *Table) FormatCSV(opts *CSVOptions) (string, error) {
	if opts == nil {
		opts = &CSVOptions{}
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = opts.delimiter()
	w.UseCRLF = opts.UseCRLF

	if !opts.NoHeader {
		if err := w.Write(t.cols); err != nil {
			return "", err
		}
	}
	rec := make([]string, len(t.cols))
	for _, row := range t.rows {
		for i, col := range t.cols {
			rec[i] = formatValue(row[col])
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ParseCSV parses CSV text into a table under the given dialect. A nil
// opts means the default dialect. Cell values are strings; CSV carries
// no type information. Parse failures are returned as *csv.ParseError.
func ParseCSV(text string, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = &CSVOptions{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = opts.delimiter()
	r.Comment = opts.Comment
	r.LazyQuotes = opts.LazyQuotes
	r.TrimLeadingSpace = opts.TrimLeadingSpace

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return New(), nil
	}

	var cols []string
	data := records
	if opts.NoHeader {
		cols = make([]string, len(records[0]))
		for i := range cols {
			cols[i] = fmt.Sprintf("c%d", i+1)
		}
	} else {
		cols = records[0]
		data = records[1:]
	}

	t := New(cols...)
	for _, rec := range data {
		row := make(Row, len(cols))
		for i, col := range cols {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		t.Append(row)
	}
	return t, nil
}
