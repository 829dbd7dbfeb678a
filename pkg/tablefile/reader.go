package tablefile

import "github.com/leapstack-labs/tablefile/pkg/table"

// Reader pairs a file path with the future-based parse variants. It is
// ephemeral: construct one with ReadFile, parse once, discard.
type Reader struct {
	fs     FileSystem
	path   string
	argErr error
}

// ParseCSV reads the file in the background and parses it as CSV under
// opts (nil means the default dialect). Argument failures fail the future
// immediately with no file-system access; read failures fail it with
// *IOError; malformed CSV fails it with the parser's own error.
func (r *Reader) ParseCSV(opts *table.CSVOptions) *Future[*table.Table] {
	if r.argErr != nil {
		return failed[*table.Table](r.argErr)
	}
	if err := checkOptions(opts); err != nil {
		return failed[*table.Table](err)
	}
	return deferred(func() (*table.Table, error) {
		return readParseCSV(r.fs, r.path, opts)
	})
}

// ParseJSON reads the file in the background and parses it as a JSON
// array of row objects.
func (r *Reader) ParseJSON() *Future[*table.Table] {
	if r.argErr != nil {
		return failed[*table.Table](r.argErr)
	}
	return deferred(func() (*table.Table, error) {
		return readParseJSON(r.fs, r.path)
	})
}

// SyncReader is the blocking variant of Reader, constructed with
// ReadFileSync.
type SyncReader struct {
	fs     FileSystem
	path   string
	argErr error
}

// ParseCSV reads the file and parses it as CSV under opts (nil means the
// default dialect), blocking until done.
func (r *SyncReader) ParseCSV(opts *table.CSVOptions) (*table.Table, error) {
	if r.argErr != nil {
		return nil, r.argErr
	}
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	return readParseCSV(r.fs, r.path, opts)
}

// ParseJSON reads the file and parses it as a JSON array of row objects,
// blocking until done.
func (r *SyncReader) ParseJSON() (*table.Table, error) {
	if r.argErr != nil {
		return nil, r.argErr
	}
	return readParseJSON(r.fs, r.path)
}

func readParseCSV(fs FileSystem, path string, opts *table.CSVOptions) (*table.Table, error) {
	text, err := fs.ReadText(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return table.ParseCSV(text, opts)
}

func readParseJSON(fs FileSystem, path string) (*table.Table, error) {
	text, err := fs.ReadText(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return table.ParseJSON(text)
}
