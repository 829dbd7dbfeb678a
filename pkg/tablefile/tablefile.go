package tablefile

import "github.com/leapstack-labs/tablefile/pkg/table"

// IO binds the facades to a FileSystem. The package-level entry points use
// the operating system's file system; New exists so callers (and tests)
// can substitute their own.
type IO struct {
	fs FileSystem
}

// New returns an IO backed by fs. A nil fs means OSFileSystem.
func New(fs FileSystem) *IO {
	if fs == nil {
		fs = OSFileSystem{}
	}
	return &IO{fs: fs}
}

var std = New(nil)

// AsCSV binds t to the CSV format for writing.
func (a *IO) AsCSV(t *table.Table) *Serializer {
	return &Serializer{fs: a.fs, tab: t, format: formatCSV}
}

// AsJSON binds t to the JSON format for writing.
func (a *IO) AsJSON(t *table.Table) *Serializer {
	return &Serializer{fs: a.fs, tab: t, format: formatJSON}
}

// ReadFile binds path for reading; parse calls run in the background and
// return futures.
func (a *IO) ReadFile(path string) *Reader {
	return &Reader{fs: a.fs, path: path, argErr: checkPath(path)}
}

// ReadFileSync binds path for blocking reads.
func (a *IO) ReadFileSync(path string) *SyncReader {
	return &SyncReader{fs: a.fs, path: path, argErr: checkPath(path)}
}

// AsCSV binds t to the CSV format for writing to the OS file system.
func AsCSV(t *table.Table) *Serializer { return std.AsCSV(t) }

// AsJSON binds t to the JSON format for writing to the OS file system.
func AsJSON(t *table.Table) *Serializer { return std.AsJSON(t) }

// ReadFile binds path for future-based reads from the OS file system.
func ReadFile(path string) *Reader { return std.ReadFile(path) }

// ReadFileSync binds path for blocking reads from the OS file system.
func ReadFileSync(path string) *SyncReader { return std.ReadFileSync(path) }

func checkPath(path string) error {
	if path == "" {
		return &InvalidArgumentError{Param: "path", Reason: "must be a non-empty string"}
	}
	return nil
}

func checkOptions(opts *table.CSVOptions) error {
	if opts == nil {
		return nil
	}
	if err := opts.Validate(); err != nil {
		return &InvalidArgumentError{Param: "options", Reason: err.Error()}
	}
	return nil
}
