package datatable

import (
	"bytes"
	"fmt"
	"io"
)

// Encoding is a serialization of a table.
type Encoding string

const (
	JSON     Encoding = "json"
	YAML     Encoding = "yaml"
	CSV      Encoding = "csv"
	TSV      Encoding = "tsv"
	Table    Encoding = "table"
	Markdown Encoding = "markdown"
	HTML     Encoding = "html"
)

var encodings = []Encoding{JSON, YAML, CSV, TSV, Table, Markdown, HTML}

// String returns the encoding name.
func (e Encoding) String() string { return string(e) }

// Encodings returns all supported encodings.
func Encodings() []Encoding {
	out := make([]Encoding, len(encodings))
	copy(out, encodings)
	return out
}

// ParseEncoding parses an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	for _, e := range encodings {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}

// Write encodes the table and writes it to w.
//
// JSON and YAML encode the formatter [Output]. The text encodings (CSV, TSV,
// Table, Markdown and HTML) render the columns and rows directly, with the
// column labels as header and every cell shown by [Cell.Display].
func (t *DataTable) Write(w io.Writer, e Encoding) error {
	if t.err != nil {
		return t.err
	}
	switch e {
	case JSON, YAML:
		out, err := t.Output()
		if err != nil {
			return err
		}
		if e == JSON {
			return writeJSON(w, out)
		}
		return writeYAML(w, out)
	case CSV:
		return writeDelimited(w, t, ',')
	case TSV:
		return writeDelimited(w, t, '\t')
	case Table:
		return writeTable(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, e)
	}
}

// Marshal encodes the table and returns the bytes.
func (t *DataTable) Marshal(e Encoding) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// displayRows renders every cell of t with [Cell.Display].
func displayRows(t Tabular) (header []string, rows [][]string, types []ColumnType) {
	cols := t.Columns()
	header = make([]string, len(cols))
	types = make([]ColumnType, len(cols))
	for i, col := range cols {
		header[i] = col.Label
		types[i] = col.Type
	}
	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i, cell := range row {
			typ := String
			if i < len(types) {
				typ = types[i]
			}
			cells[i] = cell.Display(typ)
		}
		rows = append(rows, cells)
	}
	return header, rows, types
}
