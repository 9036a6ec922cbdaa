package datatable

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-json"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidColumnType   = errors.New("invalid column type")
	ErrTooManyValues       = errors.New("too many values")
	ErrRowLength           = errors.New("row length does not match columns")
	ErrInvalidValue        = errors.New("invalid value")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// ColumnType is the declared type of a column.
type ColumnType string

const (
	String   ColumnType = "string"
	Number   ColumnType = "number"
	Boolean  ColumnType = "boolean"
	Date     ColumnType = "date"
	DateTime ColumnType = "datetime"
)

var columnTypes = []ColumnType{String, Number, Boolean, Date, DateTime}

// String returns the column type name.
func (c ColumnType) String() string { return string(c) }

// Valid reports whether c is one of the supported column types.
func (c ColumnType) Valid() bool { return slices.Contains(columnTypes, c) }

// ColumnTypes returns all supported column types.
func ColumnTypes() []ColumnType {
	out := make([]ColumnType, len(columnTypes))
	copy(out, columnTypes)
	return out
}

// ParseColumnType parses a column type name.
func ParseColumnType(s string) (ColumnType, error) {
	if c := ColumnType(s); c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColumnType, s)
}

// Column describes a single typed, labeled field.
type Column struct {
	Type  ColumnType
	Label string
}

// Cell is one value in a row. Formatted, when set, is the display string
// shown in place of Value. An empty Formatted means no display string, so a
// cell cannot carry an explicitly empty one: it is omitted from the output.
type Cell struct {
	Value     any
	Formatted string
}

// Formatted returns a cell carrying both a raw value and its display string.
// Pass it to [DataTable.AddRow] like any other value.
func Formatted(v any, f string) Cell {
	return Cell{Value: v, Formatted: f}
}

// Row is an ordered sequence of cells, one per declared column.
type Row []Cell

// Tabular is the read-only view of a table that formatters and encoders see.
type Tabular interface {
	Columns() []Column
	Rows() []Row
}

// Source populates a table from some origin. Columns is always called before
// Fill, and both should mutate the table through its public builder methods.
type Source interface {
	Columns(t *DataTable) error
	Fill(t *DataTable) error
}

// Option configures a [DataTable].
type Option func(*DataTable)

// WithFormatter sets the formatter used by [DataTable.Output].
// Default: [LineChart].
func WithFormatter(f Formatter) Option {
	return func(t *DataTable) {
		if f != nil {
			t.formatter = f
		}
	}
}

// WithColumnFactory replaces the factory used by [DataTable.AddColumn].
func WithColumnFactory(f ColumnFactory) Option {
	return func(t *DataTable) {
		if f != nil {
			t.columnFactory = f
		}
	}
}

// WithRowFactory replaces the factory used by [DataTable.AddRow].
func WithRowFactory(f RowFactory) Option {
	return func(t *DataTable) {
		if f != nil {
			t.rowFactory = f
		}
	}
}

// DataTable is an ordered set of columns and rows built with chained calls.
//
// Errors are sticky: the first failing call is recorded and returned by
// [DataTable.Err], and every later mutating call becomes a no-op. A failing
// call never changes the columns or rows. A DataTable is not safe for
// concurrent use.
type DataTable struct {
	columns       []Column
	rows          []Row
	columnFactory ColumnFactory
	rowFactory    RowFactory
	formatter     Formatter
	err           error
}

// New returns an empty table.
func New(opts ...Option) *DataTable {
	t := &DataTable{
		columnFactory: DefaultColumnFactory{},
		rowFactory:    DefaultRowFactory{},
		formatter:     LineChart{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Err returns the first error recorded by a builder call, if any.
func (t *DataTable) Err() error { return t.err }

func (t *DataTable) fail(err error) *DataTable {
	if t.err == nil {
		t.err = err
	}
	return t
}

// AddColumn appends a column of the given type.
func (t *DataTable) AddColumn(typ ColumnType, label string) *DataTable {
	if t.err != nil {
		return t
	}
	col, err := t.columnFactory.Create(typ, label)
	if err != nil {
		return t.fail(err)
	}
	t.columns = append(t.columns, col)
	return t
}

// AddStringColumn appends a [String] column.
func (t *DataTable) AddStringColumn(label string) *DataTable {
	return t.AddColumn(String, label)
}

// AddNumberColumn appends a [Number] column.
func (t *DataTable) AddNumberColumn(label string) *DataTable {
	return t.AddColumn(Number, label)
}

// AddBooleanColumn appends a [Boolean] column.
func (t *DataTable) AddBooleanColumn(label string) *DataTable {
	return t.AddColumn(Boolean, label)
}

// AddDateColumn appends a [Date] column.
func (t *DataTable) AddDateColumn(label string) *DataTable {
	return t.AddColumn(Date, label)
}

// AddDateTimeColumn appends a [DateTime] column.
func (t *DataTable) AddDateTimeColumn(label string) *DataTable {
	return t.AddColumn(DateTime, label)
}

// AddRow appends a row. Values are validated against the columns declared so
// far, so columns must be added before the rows that use them. Missing
// trailing values are padded with nil cells.
func (t *DataTable) AddRow(values ...any) *DataTable {
	if t.err != nil {
		return t
	}
	row, err := t.rowFactory.Create(values, len(t.columns))
	if err != nil {
		return t.fail(err)
	}
	t.rows = append(t.rows, row)
	return t
}

// AddRows appends each element of rows as a row. Every row is validated
// before any is appended; on failure no row is added.
func (t *DataTable) AddRows(rows [][]any) *DataTable {
	if t.err != nil {
		return t
	}
	built := make([]Row, 0, len(rows))
	for i, values := range rows {
		row, err := t.rowFactory.Create(values, len(t.columns))
		if err != nil {
			return t.fail(fmt.Errorf("row %d: %w", i, err))
		}
		built = append(built, row)
	}
	t.rows = append(t.rows, built...)
	return t
}

// Source lets src declare columns and then fill rows.
func (t *DataTable) Source(src Source) *DataTable {
	if t.err != nil || src == nil {
		return t
	}
	if err := src.Columns(t); err != nil {
		return t.sourceFail("columns", err)
	}
	if t.err != nil {
		return t
	}
	if err := src.Fill(t); err != nil {
		return t.sourceFail("fill", err)
	}
	return t
}

// sourceFail records a source error. It replaces a builder error recorded
// during the same call, keeping it in the chain.
func (t *DataTable) sourceFail(stage string, err error) *DataTable {
	if t.err != nil && !errors.Is(err, t.err) {
		err = errors.Join(t.err, err)
	}
	t.err = fmt.Errorf("source %s: %w", stage, err)
	return t
}

// Formatter replaces the active formatter. A nil formatter is ignored.
func (t *DataTable) Formatter(f Formatter) *DataTable {
	if f != nil {
		t.formatter = f
	}
	return t
}

// Columns returns a copy of the columns in insertion order.
func (t *DataTable) Columns() []Column {
	return slices.Clone(t.columns)
}

// Rows returns a copy of the rows in insertion order.
func (t *DataTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Output runs the active formatter over the table. It returns the recorded
// builder error instead, if there is one.
func (t *DataTable) Output() (Output, error) {
	if t.err != nil {
		return Output{}, t.err
	}
	return t.formatter.Format(t)
}

// MarshalJSON encodes the formatter output.
func (t *DataTable) MarshalJSON() ([]byte, error) {
	out, err := t.Output()
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}
