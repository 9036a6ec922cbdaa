package datatable

import (
	"encoding/csv"
	"fmt"
	"io"
)

// SourceFuncs adapts a pair of functions to [Source]. A nil function is a
// no-op.
type SourceFuncs struct {
	ColumnsFunc func(t *DataTable) error
	FillFunc    func(t *DataTable) error
}

// Columns implements [Source].
func (s SourceFuncs) Columns(t *DataTable) error {
	if s.ColumnsFunc == nil {
		return nil
	}
	return s.ColumnsFunc(t)
}

// Fill implements [Source].
func (s SourceFuncs) Fill(t *DataTable) error {
	if s.FillFunc == nil {
		return nil
	}
	return s.FillFunc(t)
}

// Records is a [Source] over text records. The first record is the header
// and supplies column labels; the rest become rows, parsed with
// [ParseValue] according to the column types.
type Records struct {
	// Data holds the header followed by the data records.
	Data [][]string

	// Types gives the type of each column. Columns beyond its length are
	// [String].
	Types []ColumnType

	// Labels overrides header labels. Empty entries keep the header label.
	Labels []string
}

func (r *Records) columnType(i int) ColumnType {
	if i < len(r.Types) && r.Types[i] != "" {
		return r.Types[i]
	}
	return String
}

// Columns implements [Source].
func (r *Records) Columns(t *DataTable) error {
	if len(r.Data) == 0 {
		return nil
	}
	for i, label := range r.Data[0] {
		if i < len(r.Labels) && r.Labels[i] != "" {
			label = r.Labels[i]
		}
		t.AddColumn(r.columnType(i), label)
	}
	return t.Err()
}

// Fill implements [Source].
func (r *Records) Fill(t *DataTable) error {
	if len(r.Data) < 2 {
		return nil
	}
	header := r.Data[0]
	for n, record := range r.Data[1:] {
		values := make([]any, len(record))
		for i, field := range record {
			v, err := ParseValue(r.columnType(i), field)
			if err != nil {
				name := fmt.Sprintf("#%d", i+1)
				if i < len(header) {
					name = fmt.Sprintf("%q", header[i])
				}
				return fmt.Errorf("record %d, column %s: %w", n+1, name, err)
			}
			values[i] = v
		}
		if err := t.AddRow(values...).Err(); err != nil {
			return fmt.Errorf("record %d: %w", n+1, err)
		}
	}
	return nil
}

// CSVSource reads delimited text whose first line is the header.
type CSVSource struct {
	r       io.Reader
	comma   rune
	records Records
}

// NewCSVSource returns a source reading r. Types gives the column types in
// header order.
func NewCSVSource(r io.Reader, types ...ColumnType) *CSVSource {
	return &CSVSource{r: r, comma: ',', records: Records{Types: types}}
}

// Comma sets the field delimiter. Default: comma.
func (s *CSVSource) Comma(c rune) *CSVSource {
	s.comma = c
	return s
}

// Labels overrides header labels.
func (s *CSVSource) Labels(labels ...string) *CSVSource {
	s.records.Labels = labels
	return s
}

// Columns implements [Source]. It reads the whole input.
func (s *CSVSource) Columns(t *DataTable) error {
	cr := csv.NewReader(s.r)
	cr.Comma = s.comma
	cr.FieldsPerRecord = -1
	data, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	s.records.Data = data
	return s.records.Columns(t)
}

// Fill implements [Source].
func (s *CSVSource) Fill(t *DataTable) error {
	return s.records.Fill(t)
}
