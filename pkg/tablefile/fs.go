package tablefile

import "os"

// FileSystem abstracts the two file-system primitives this package needs.
// All text is UTF-8. Implementations make a single attempt per call; there
// is no retry, locking or partial-write recovery.
type FileSystem interface {
	ReadText(path string) (string, error)
	WriteText(path string, text string) error
}

// OSFileSystem implements FileSystem using the os package. WriteText
// creates the file if absent and truncates it if present.
type OSFileSystem struct{}

func (OSFileSystem) ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (OSFileSystem) WriteText(path string, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}
