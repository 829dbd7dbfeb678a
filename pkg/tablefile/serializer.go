package tablefile

import "github.com/leapstack-labs/tablefile/pkg/table"

type format int

const (
	formatCSV format = iota
	formatJSON
)

// Serializer pairs a table with a target text format. It is ephemeral:
// construct one with AsCSV or AsJSON, write once, discard.
type Serializer struct {
	fs     FileSystem
	tab    *table.Table
	format format
	opts   *table.CSVOptions
}

// WithOptions sets the CSV dialect for a CSV serializer and returns the
// serializer for chaining. It has no effect on a JSON serializer.
func (s *Serializer) WithOptions(opts *table.CSVOptions) *Serializer {
	s.opts = opts
	return s
}

func (s *Serializer) render() (string, error) {
	if s.format == formatJSON {
		return s.tab.FormatJSON()
	}
	return s.tab.FormatCSV(s.opts)
}

// WriteFileSync formats the table and writes it to path, blocking until
// the write returns. The file is created if absent and overwritten if
// present. An empty path or invalid dialect fails with
// *InvalidArgumentError before any I/O; a write failure returns *IOError.
func (s *Serializer) WriteFileSync(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	if err := checkOptions(s.opts); err != nil {
		return err
	}
	text, err := s.render()
	if err != nil {
		return err
	}
	if err := s.fs.WriteText(path, text); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// WriteFile formats the table synchronously, then writes it to path in
// the background. The returned future completes with no value on success
// or fails with the error WriteFileSync would have returned. Argument
// and formatting failures come back as an already-failed future.
func (s *Serializer) WriteFile(path string) *Future[struct{}] {
	if err := checkPath(path); err != nil {
		return failed[struct{}](err)
	}
	if err := checkOptions(s.opts); err != nil {
		return failed[struct{}](err)
	}
	text, err := s.render()
	if err != nil {
		return failed[struct{}](err)
	}
	return deferred(func() (struct{}, error) {
		if err := s.fs.WriteText(path, text); err != nil {
			return struct{}{}, &IOError{Op: "write", Path: path, Err: err}
		}
		return struct{}{}, nil
	})
}
