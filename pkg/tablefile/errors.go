package tablefile

import "fmt"

// InvalidArgumentError reports a caller mistake caught before any I/O:
// an empty path or an unusable CSV dialect. It is never wrapped around
// another error and never retried.
type InvalidArgumentError struct {
	Param  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
}

// IOError reports a file-system failure. Err is the native error from the
// underlying primitive, unchanged; errors.Is/As see through to it.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
