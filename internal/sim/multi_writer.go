package sim

// MultiWriter fans a result out to multiple writers.
type MultiWriter struct {
	writers []ResultWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(writers ...ResultWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteResult sends the result to all writers, stopping at the first error.
func (mw *MultiWriter) WriteResult(res *Result) error {
	for _, w := range mw.writers {
		if err := w.WriteResult(res); err != nil {
			return err
		}
	}
	return nil
}
