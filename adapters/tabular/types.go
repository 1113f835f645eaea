package tabular

// RawData holds file contents before column typing
type RawData struct {
	Headers []string
	Rows    [][]string
}
