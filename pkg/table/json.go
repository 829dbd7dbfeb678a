package table

// json.go - JSON text conversion

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormatJSON renders the table as a JSON array with one object per row.
// Object keys follow the table's column order, one row per line.
func (t *Table) FormatJSON() (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, row := range t.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  {")
		for j, col := range t.cols {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return "", err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(row[col])
			if err != nil {
				return "", err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	if len(t.rows) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	return buf.String(), nil
}

// ParseJSON parses a JSON array of objects into a table. Column order is
// recovered from key order in the source text (first occurrence wins).
// Numbers decode as float64, per encoding/json. Parse failures are
// returned unchanged from the decoder.
func ParseJSON(text string) (*Table, error) {
	var raw []map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}

	cols, err := columnOrder(text)
	if err != nil {
		return nil, err
	}

	t := New(cols...)
	for _, m := range raw {
		row := make(Row, len(m))
		for k, v := range m {
			row[k] = v
		}
		t.Append(row)
	}
	return t, nil
}

// columnOrder walks the token stream to recover object key order, which
// json.Unmarshal into maps discards.
func columnOrder(text string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	if _, err := dec.Token(); err != nil { // opening '['
		return nil, err
	}

	var cols []string
	seen := make(map[string]bool)
	for dec.More() {
		if _, err := dec.Token(); err != nil { // opening '{'
			return nil, err
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := tok.(string)
			if !ok {
				continue
			}
			if !seen[key] {
				seen[key] = true
				cols = append(cols, key)
			}
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
	}
	return cols, nil
}
