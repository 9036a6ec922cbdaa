package datatable

import "fmt"

// ColumnFactory builds validated columns.
type ColumnFactory interface {
	Create(typ ColumnType, label string) (Column, error)
}

// RowFactory builds validated rows for a table with columnCount columns.
type RowFactory interface {
	Create(values []any, columnCount int) (Row, error)
}

// DefaultColumnFactory accepts any label and the closed set of column types.
type DefaultColumnFactory struct{}

// Create returns a column, or [ErrInvalidColumnType] for an unknown type.
func (DefaultColumnFactory) Create(typ ColumnType, label string) (Column, error) {
	if !typ.Valid() {
		return Column{}, fmt.Errorf("%w: %q", ErrInvalidColumnType, typ)
	}
	return Column{Type: typ, Label: label}, nil
}

// DefaultRowFactory wraps values positionally and pads the row with nil
// cells up to columnCount. A [Cell] or *Cell value is used as-is.
type DefaultRowFactory struct{}

// Create returns a row of exactly columnCount cells, or [ErrTooManyValues]
// when there are more values than columns.
func (DefaultRowFactory) Create(values []any, columnCount int) (Row, error) {
	if len(values) > columnCount {
		return nil, fmt.Errorf("%w: got %d values for %d columns", ErrTooManyValues, len(values), columnCount)
	}
	row := make(Row, columnCount)
	for i, v := range values {
		switch c := v.(type) {
		case Cell:
			row[i] = c
		case *Cell:
			if c != nil {
				row[i] = *c
			}
		default:
			row[i] = Cell{Value: v}
		}
	}
	return row, nil
}
