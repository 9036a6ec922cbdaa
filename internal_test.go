package datatable

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEncodeValue(t *testing.T) {
	t.Parallel()
	moment := time.Date(2023, time.December, 1, 8, 0, 0, 0, time.UTC)
	var nilTime *time.Time
	var nilDec *decimal.Decimal
	tests := map[string]struct {
		typ  ColumnType
		v    any
		want any
	}{
		"nil":              {typ: Number, v: nil, want: nil},
		"passthrough":      {typ: Number, v: 3, want: 3},
		"date":             {typ: Date, v: moment, want: "Date(2023,11,1)"},
		"datetime":         {typ: DateTime, v: moment, want: "Date(2023,11,1,8,0,0,0)"},
		"time in string":   {typ: String, v: moment, want: "2023-12-01T08:00:00Z"},
		"nil time pointer": {typ: Date, v: nilTime, want: nil},
		"decimal":          {typ: Number, v: decimal.NewFromFloat(0.25), want: ExactNumber("0.25")},
		"nil decimal":      {typ: Number, v: nilDec, want: nil},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, encodeValue(tt.typ, tt.v))
		})
	}
}

func TestFinite(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    any
		want bool
	}{
		"float":       {v: 1.5, want: true},
		"nan":         {v: math.NaN(), want: false},
		"inf":         {v: math.Inf(1), want: false},
		"neg inf f32": {v: float32(math.Inf(-1)), want: false},
		"non float":   {v: "NaN", want: true},
		"nil":         {v: nil, want: true},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, finite(tt.v))
		})
	}
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, alignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, alignRight))
	assert.Equal(t, "abcdef", alignCell("abcdef", 4, alignRight))
}

func TestComputeWidthsWideChars(t *testing.T) {
	t.Parallel()
	// "你好" is two full-width characters, four columns.
	widths := computeWidths([]string{"a", "b"}, [][]string{{"你好", "x"}})
	assert.Equal(t, []int{4, 1}, widths)
}

func TestColumnAligns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []alignment{alignLeft, alignRight, alignLeft},
		columnAligns([]ColumnType{String, Number, Date}))
}
