// Writer implementation printing results as JSON
package sim

import (
	"encoding/json"
	"io"
	"os"
)

// JSONWriter prints a whole result as indented JSON.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter writing to os.Stdout.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{out: os.Stdout}
}

// WriteResult outputs the result in JSON format.
func (w *JSONWriter) WriteResult(res *Result) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
