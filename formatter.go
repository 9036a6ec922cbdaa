package datatable

import "fmt"

// Formatter converts a populated table into its output structure.
// Implementations read the table only through [Tabular].
type Formatter interface {
	Format(t Tabular) (Output, error)
}

// Output is the chart DataTable structure:
//
//	{"cols":[{"type":"number","label":"X"}],"rows":[{"c":[{"v":1}]}]}
type Output struct {
	Cols []OutputColumn `json:"cols" yaml:"cols"`
	Rows []OutputRow    `json:"rows" yaml:"rows"`
}

// OutputColumn is a column entry in [Output].
type OutputColumn struct {
	Type  ColumnType `json:"type" yaml:"type"`
	Label string     `json:"label" yaml:"label"`
}

// OutputRow is a row entry in [Output], holding one cell per column.
type OutputRow struct {
	C []OutputCell `json:"c" yaml:"c"`
}

// OutputCell is a cell entry in [Output]. V is the raw value, F the optional
// display string.
type OutputCell struct {
	V any    `json:"v" yaml:"v"`
	F string `json:"f,omitempty" yaml:"f,omitempty"`
}

// LineChart is the default formatter. Column types are kept as declared, so
// number, date and datetime domains render on a continuous axis.
type LineChart struct{}

// Format implements [Formatter].
func (LineChart) Format(t Tabular) (Output, error) {
	return format(t, false)
}

// BarChart renders the first column as a string column so the domain axis is
// discrete. Its values are replaced by their display strings; every other
// column is kept as declared.
type BarChart struct{}

// Format implements [Formatter].
func (BarChart) Format(t Tabular) (Output, error) {
	return format(t, true)
}

func format(t Tabular, discrete bool) (Output, error) {
	cols := t.Columns()
	rows := t.Rows()

	out := Output{
		Cols: make([]OutputColumn, len(cols)),
		Rows: make([]OutputRow, len(rows)),
	}
	for i, col := range cols {
		out.Cols[i] = OutputColumn{Type: col.Type, Label: col.Label}
	}
	if discrete && len(cols) > 0 {
		out.Cols[0].Type = String
	}

	for i, row := range rows {
		if len(row) != len(cols) {
			return Output{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRowLength, i, len(row), len(cols))
		}
		cells := make([]OutputCell, len(row))
		for j, cell := range row {
			if !finite(cell.Value) {
				return Output{}, fmt.Errorf("%w: row %d, column %q: %v", ErrInvalidValue, i, cols[j].Label, cell.Value)
			}
			typ := cols[j].Type
			v := encodeValue(typ, cell.Value)
			if discrete && j == 0 && cell.Value != nil {
				v = displayValue(typ, cell.Value)
			}
			cells[j] = OutputCell{V: v, F: cell.Formatted}
		}
		out.Rows[i] = OutputRow{C: cells}
	}
	return out, nil
}
