package interactions

// FileLoader loads an interaction table from a CSV file on disk. It
// satisfies the interfaces.TableLoader contract.
type FileLoader struct {
	Path string
}

// Load reads the CSV file and builds a fully normalized table.
func (l FileLoader) Load() (*Table, error) {
	ds, err := LoadCSVFile(l.Path)
	if err != nil {
		return nil, err
	}
	return NewTable(ds)
}
