// Package interactions implements the drug-drug interaction lookup core:
// loading a tabular dataset, inferring which columns hold the two drug names
// and the severity level, normalizing drug-name text, and answering pairwise
// and single-drug queries.
package interactions

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Sentinel errors for table construction failures.
var (
	// ErrSourceNotFound signals that the underlying data source could not
	// be located.
	ErrSourceNotFound = errors.New("data source not found")
	// ErrDataLoad signals any other loading or parsing failure.
	ErrDataLoad = errors.New("data load failed")
)

// Dataset is the boundary to the pluggable loader: an ordered sequence of
// rows whose cells are addressed through the header list.
type Dataset interface {
	// Headers returns the column names in file order.
	Headers() []string
	// Rows returns the data rows, each aligned to Headers.
	Rows() [][]string
}

// FileDataset is a CSV-backed Dataset loaded fully into memory.
type FileDataset struct {
	headers []string
	rows    [][]string
}

// Headers returns the column names in file order.
func (d *FileDataset) Headers() []string { return d.headers }

// Rows returns the data rows, each aligned to Headers.
func (d *FileDataset) Rows() [][]string { return d.rows }

// LoadCSVFile reads a CSV file with a header row into a FileDataset.
// A missing file wraps ErrSourceNotFound; everything else wraps ErrDataLoad.
func LoadCSVFile(path string) (*FileDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataLoad, path, err)
	}

	ds, err := parseCSV(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrDataLoad, path, err)
	}
	return ds, nil
}

// parseCSV decodes raw CSV bytes, falling back to ISO-8859-1 when the
// content is not valid UTF-8. Exported datasets from older tooling still
// ship in that encoding.
func parseCSV(raw []byte) (*FileDataset, error) {
	var reader io.Reader
	if utf8.Valid(raw) {
		reader = bytes.NewReader(raw)
	} else {
		reader = charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw))
	}

	cr := csv.NewReader(reader)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty dataset: no header row")
	}

	return &FileDataset{
		headers: records[0],
		rows:    records[1:],
	}, nil
}
