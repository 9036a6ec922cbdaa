package datatable_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/datatable"
)

func TestCSVSource(t *testing.T) {
	t.Parallel()
	input := "Month,Sales,Active,Day\n" +
		"Jan,120,true,2024-01-31\n" +
		"Feb,,false,\n"
	src := datatable.NewCSVSource(strings.NewReader(input),
		datatable.String, datatable.Number, datatable.Boolean, datatable.Date)
	tbl := datatable.New().Source(src)
	require.NoError(t, tbl.Err())

	assert.Equal(t, []datatable.Column{
		{Type: datatable.String, Label: "Month"},
		{Type: datatable.Number, Label: "Sales"},
		{Type: datatable.Boolean, Label: "Active"},
		{Type: datatable.Date, Label: "Day"},
	}, tbl.Columns())
	assert.Equal(t, []datatable.Row{
		{{Value: "Jan"}, {Value: 120.0}, {Value: true}, {Value: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)}},
		{{Value: "Feb"}, {Value: nil}, {Value: false}, {Value: nil}},
	}, tbl.Rows())
}

func TestCSVSourceDefaults(t *testing.T) {
	t.Parallel()
	src := datatable.NewCSVSource(strings.NewReader("a;b\n1;2\n")).Comma(';').Labels("", "B")
	tbl := datatable.New().Source(src)
	require.NoError(t, tbl.Err())
	assert.Equal(t, []datatable.Column{
		{Type: datatable.String, Label: "a"},
		{Type: datatable.String, Label: "B"},
	}, tbl.Columns())
	assert.Equal(t, datatable.Row{{Value: "1"}, {Value: "2"}}, tbl.Rows()[0])
}

func TestCSVSourceEmpty(t *testing.T) {
	t.Parallel()
	tbl := datatable.New().Source(datatable.NewCSVSource(strings.NewReader("")))
	require.NoError(t, tbl.Err())
	assert.Empty(t, tbl.Columns())
	assert.Empty(t, tbl.Rows())
}

func TestCSVSourceErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		types   []datatable.ColumnType
		wantErr error
		wantMsg string
	}{
		"bad number": {
			input:   "n\nabc\n",
			types:   []datatable.ColumnType{datatable.Number},
			wantErr: datatable.ErrInvalidValue,
			wantMsg: `record 1, column "n"`,
		},
		"too many fields": {
			input:   "a\n1\n2,3\n",
			wantErr: datatable.ErrTooManyValues,
			wantMsg: "record 2",
		},
		"bad type": {
			input:   "a\n1\n",
			types:   []datatable.ColumnType{"money"},
			wantErr: datatable.ErrInvalidColumnType,
			wantMsg: "source columns",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := datatable.New().Source(datatable.NewCSVSource(strings.NewReader(tt.input), tt.types...))
			require.ErrorIs(t, tbl.Err(), tt.wantErr)
			assert.Contains(t, tbl.Err().Error(), tt.wantMsg)
		})
	}
}

func TestRecords(t *testing.T) {
	t.Parallel()
	src := &datatable.Records{
		Data:  [][]string{{"X", "Y"}, {"1", "a"}, {"2"}},
		Types: []datatable.ColumnType{datatable.Number},
	}
	b, err := datatable.New().Source(src).Marshal(datatable.JSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"cols": [{"type":"number","label":"X"},{"type":"string","label":"Y"}],
		"rows": [{"c":[{"v":1},{"v":"a"}]},{"c":[{"v":2},{"v":null}]}]
	}`, string(b))
}

func TestParseValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ     datatable.ColumnType
		input   string
		want    any
		wantErr error
	}{
		"string":           {typ: datatable.String, input: " a ", want: " a "},
		"empty string":     {typ: datatable.String, input: "", want: ""},
		"number":           {typ: datatable.Number, input: "1.5", want: 1.5},
		"blank number":     {typ: datatable.Number, input: "  ", want: nil},
		"bad number":       {typ: datatable.Number, input: "x", wantErr: datatable.ErrInvalidValue},
		"boolean":          {typ: datatable.Boolean, input: "TRUE", want: true},
		"bad boolean":      {typ: datatable.Boolean, input: "yes", wantErr: datatable.ErrInvalidValue},
		"date":             {typ: datatable.Date, input: "2024-02-29", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		"bad date":         {typ: datatable.Date, input: "29/02/2024", wantErr: datatable.ErrInvalidValue},
		"datetime":         {typ: datatable.DateTime, input: "2024-02-29 10:30:00", want: time.Date(2024, time.February, 29, 10, 30, 0, 0, time.UTC)},
		"datetime rfc3339": {typ: datatable.DateTime, input: "2024-02-29T10:30:00Z", want: time.Date(2024, time.February, 29, 10, 30, 0, 0, time.UTC)},
		"bad datetime":     {typ: datatable.DateTime, input: "noon", wantErr: datatable.ErrInvalidValue},
		"bad type":         {typ: "money", input: "1", wantErr: datatable.ErrInvalidColumnType},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := datatable.ParseValue(tt.typ, tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellDisplay(t *testing.T) {
	t.Parallel()
	moment := time.Date(2024, time.March, 5, 13, 4, 5, 0, time.UTC)
	tests := map[string]struct {
		cell datatable.Cell
		typ  datatable.ColumnType
		want string
	}{
		"formatted wins": {cell: datatable.Formatted(1, "one"), typ: datatable.Number, want: "one"},
		"nil":            {cell: datatable.Cell{}, typ: datatable.Number, want: ""},
		"float":          {cell: datatable.Cell{Value: 2.50}, typ: datatable.Number, want: "2.5"},
		"int":            {cell: datatable.Cell{Value: 7}, typ: datatable.Number, want: "7"},
		"bool":           {cell: datatable.Cell{Value: false}, typ: datatable.Boolean, want: "false"},
		"date":           {cell: datatable.Cell{Value: moment}, typ: datatable.Date, want: "2024-03-05"},
		"datetime":       {cell: datatable.Cell{Value: moment}, typ: datatable.DateTime, want: "2024-03-05 13:04:05"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cell.Display(tt.typ))
		})
	}
}
