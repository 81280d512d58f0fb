package sim

// ResultWriter is an interface to support different output renderings of a
// finished comparison.
type ResultWriter interface {
	WriteResult(*Result) error
}
