package sim

import (
	"encoding/json"
	"os"
)

// FileWriter exports results as JSON files so runs can be replayed later.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates a FileWriter targeting the given path.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return &FileWriter{file: f, enc: enc}, nil
}

// WriteResult exports one result.
func (w *FileWriter) WriteResult(res *Result) error {
	return w.enc.Encode(res)
}

// Close closes the underlying file.
func (w *FileWriter) Close() error {
	return w.file.Close()
}
