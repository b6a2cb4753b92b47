package table

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Row is one record of a dataset keyed by column header. Cells are kept as
// text; numeric interpretation happens at each consumer's parse boundary.
type Row map[string]string

// Lookup finds a cell by case-insensitive column name.
func (r Row) Lookup(column string) (string, bool) {
	if v, ok := r[column]; ok {
		return v, true
	}
	for k, v := range r {
		if strings.EqualFold(k, column) {
			return v, true
		}
	}
	return "", false
}

// Dataset holds a parsed tabular source. Headers preserves column order;
// every Row carries the same key set.
type Dataset struct {
	Headers []string
	Rows    []Row
	Source  string
}

// Parse reads a CSV stream into a Dataset. The first record is the header.
// Short records are padded with empty cells and long records truncated, so
// every row shares the header key set.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	header := recs[0]
	d := &Dataset{Headers: header, Rows: make([]Row, 0, len(recs)-1)}
	for _, rec := range recs[1:] {
		row := make(Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}
